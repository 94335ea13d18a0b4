package hako

import "testing"

func BenchmarkEventBusPublishNoHandlers(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			for b.Loop() {
				for range size {
					Publish(bus, event)
				}
			}
		})
	}
}

func BenchmarkEventBusPublishOneHandler(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			bus := &EventBus{}
			Subscribe(bus, func(e TestEvent) {})
			event := TestEvent{Value: 42}
			b.ReportAllocs()
			for b.Loop() {
				for range size {
					Publish(bus, event)
				}
			}
		})
	}
}

// Spawning with a subscriber attached measures the cost the World pays for
// announcing every entity.
func BenchmarkSpawnWithSubscriber(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld()
				Subscribe(w.Events(), func(EntitySpawned) {})
				builder := NewBuilder[Position](w)
				b.StartTimer()
				builder.NewEntities(size, Position{})
			}
			b.ReportAllocs()
		})
	}
}
