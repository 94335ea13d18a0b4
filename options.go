package hako

import (
	"reflect"

	"go.uber.org/zap"
)

// Option configures a World at construction.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	metrics   *Metrics
	factories map[reflect.Type]storageFactory
	config    Config
}

func defaultOptions() options {
	return options{
		config:    DefaultConfig(),
		factories: make(map[reflect.Type]storageFactory),
	}
}

// WithConfig replaces the default Config.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithLogger sets the logger. The World logs archetype creation and
// migrations at debug level and every fatal fault at error level.
// It takes precedence over Config.LogLevel.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics reports World activity to m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithStorage binds component type T to the storage built by newStorage.
// Types without a binding use VecStorage.
//
// Example:
//
//	w := hako.NewWorld(hako.WithStorage(func() hako.Storage[Health] {
//	    return hako.NewVecStorage[Health]()
//	}))
func WithStorage[T any](newStorage func() Storage[T]) Option {
	return func(o *options) {
		o.factories[reflect.TypeFor[T]()] = newFactory(newStorage)
	}
}
