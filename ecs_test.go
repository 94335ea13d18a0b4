package hako_test

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/hako"
)

// --- Test Components ---
type Health struct{ Value float32 }
type Stamina struct{ Value float32 }
type Transform struct{ X, Y float32 }

// go test -run ^TestScenario$ . -count 1
func TestScenario(t *testing.T) {
	world := hako.NewWorld()

	e := hako.Spawn(world, Health{200})
	if h := hako.GetComponent[Health](world, e); h == nil || *h != (Health{200}) {
		t.Fatalf("Expected Health{200}, got %v", h)
	}

	world = hako.NewWorld()
	hako.Spawn(world, Health{100})
	hako.Spawn(world, Stamina{300})
	hako.Spawn(world, Health{100})
	hako.Spawn(world, Stamina{300})
	if n := world.ArchetypeCount(); n != 2 {
		t.Fatalf("Expected 2 archetypes, got %d", n)
	}

	player1 := hako.Spawn(world, Transform{X: 1, Y: 199})
	hako.Extend(world, player1, Health{100})
	player2 := hako.Spawn(world, Health{100})
	hako.Extend(world, player2, Transform{X: 1, Y: 199})

	got1 := world.DescribeLayout(world.ArchetypeOf(player1).Layout())
	if got1 != "[hako_test.Transform hako_test.Health]" {
		t.Errorf("Unexpected layout for player1: %s", got1)
	}
	got2 := world.DescribeLayout(world.ArchetypeOf(player2).Layout())
	if got2 != "[hako_test.Health hako_test.Transform]" {
		t.Errorf("Unexpected layout for player2: %s", got2)
	}
	if world.ArchetypeOf(player1) == world.ArchetypeOf(player2) {
		t.Error("Expected insertion order to produce two archetypes")
	}
	if n := world.ComponentCount(); n != 3 {
		t.Errorf("Expected 3 component types, got %d", n)
	}
}

// go test -run ^TestEntryAccessors$ . -count 1
func TestEntryAccessors(t *testing.T) {
	world := hako.NewWorld()
	e := hako.Spawn(world, Transform{X: 3})

	entry := world.EntryMut(e)
	hako.AddComponent(entry, Stamina{50})

	if s := hako.Component[Stamina](entry.Entry); s == nil || s.Value != 50 {
		t.Fatalf("Expected Stamina{50}, got %v", s)
	}
	if tr := hako.Component[Transform](world.Entry(e)); tr == nil || tr.X != 3 {
		t.Fatalf("Expected Transform{X: 3}, got %v", tr)
	}
	if h := hako.Component[Health](world.Entry(e)); h != nil {
		t.Fatalf("Expected no Health, got %v", h)
	}
}

func Example() {
	world := hako.NewWorld()

	p1 := hako.Spawn(world, Transform{X: 1, Y: 199})
	hako.Extend(world, p1, Health{100})
	p2 := hako.Spawn(world, Transform{X: 23, Y: 100})
	hako.Extend(world, p2, Health{200})

	for _, tr := range hako.Query[Transform](world) {
		fmt.Printf("Transform: x=%v, y=%v\n", tr.X, tr.Y)
	}
	fmt.Println("archetypes:", world.ArchetypeCount())
	// Output:
	// Transform: x=1, y=199
	// Transform: x=23, y=100
	// archetypes: 2
}
