package main

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"kitchensage"
)

// lazySetup builds the app on first use. A failed attempt is not cached, so
// the next invocation on a warm container tries again.
type lazySetup struct {
	init func(context.Context) (*kitchensage.App, trace.Tracer, error)

	mu     sync.Mutex
	app    *kitchensage.App
	tracer trace.Tracer
}

func (l *lazySetup) get(ctx context.Context) (*kitchensage.App, trace.Tracer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.app != nil {
		return l.app, l.tracer, nil
	}
	app, tracer, err := l.init(ctx)
	if err != nil {
		return nil, nil, err
	}
	l.app, l.tracer = app, tracer
	return app, tracer, nil
}
