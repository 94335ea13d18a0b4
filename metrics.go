package hako

import "github.com/prometheus/client_golang/prometheus"

// Metrics reports store activity to Prometheus. One Metrics value may be
// shared by several worlds; the series then aggregate across them.
//
// Metric updates are atomic, so the registry may be scraped from another
// goroutine while a World runs.
type Metrics struct {
	spawned    prometheus.Counter
	migrations prometheus.Counter
	archetypes prometheus.Gauge
	components *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hako",
			Name:      "entities_spawned_total",
			Help:      "Entities allocated by Spawn.",
		}),
		migrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hako",
			Name:      "migrations_total",
			Help:      "Entities moved to a new archetype by Extend.",
		}),
		archetypes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hako",
			Name:      "archetypes",
			Help:      "Archetypes currently held by the registry.",
		}),
		components: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hako",
			Name:      "components_stored_total",
			Help:      "Component values pushed into type storage.",
		}, []string{"component"}),
	}
	if reg != nil {
		reg.MustRegister(m.spawned, m.migrations, m.archetypes, m.components)
	}
	return m
}

func (m *Metrics) entitySpawned() {
	if m == nil {
		return
	}
	m.spawned.Inc()
}

func (m *Metrics) entityMigrated() {
	if m == nil {
		return
	}
	m.migrations.Inc()
}

func (m *Metrics) archetypeCreated() {
	if m == nil {
		return
	}
	m.archetypes.Inc()
}

func (m *Metrics) componentStored(name string) {
	if m == nil {
		return
	}
	m.components.WithLabelValues(name).Inc()
}
