// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"os"

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
	cfg := hako.DefaultConfig()
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			panic(err)
		}
		cfg, err = hako.LoadConfig(f)
		f.Close()
		if err != nil {
			panic(err)
		}
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	count := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities, hako.WithConfig(cfg), hako.WithLogger(logger))
	p.Stop()
}

func run(rounds, iters, numEntities int, opts ...hako.Option) {
	for range rounds {
		w := hako.NewWorld(opts...)
		for _, e := range hako.NewBuilder[comp1](w).NewEntities(numEntities, comp1{V: 1}) {
			hako.Extend(w, e, comp2{V: 2, W: 2})
		}

		var sum int64
		for range iters {
			for _, c1 := range hako.Query[comp1](w) {
				sum += c1.V + c1.W
			}
			for _, c2 := range hako.Query[comp2](w) {
				sum += c2.V + c2.W
			}
		}
		_ = sum
	}
}
