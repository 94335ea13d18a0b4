// Profiling:
// go build ./profile/spawn
// go tool pprof -http=":8000" -nodefraction=0.001 ./spawn mem.pprof

package main

import (
	"github.com/edwinsyarief/hako"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := hako.NewWorld()
		batch := hako.NewBuilder[comp1](w)

		for range iters {
			for _, e := range batch.NewEntities(numEntities, comp1{V: 1}) {
				hako.Extend(w, e, comp2{V: 1, W: 1})
			}
		}
	}
}
