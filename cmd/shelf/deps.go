package main

import (
	"sync"

	"github.com/cristianoliveira/shelf/internal/app"
)

// runtimeClient hands commands the configured catalog runtime.
type runtimeClient interface {
	Runtime() (*app.Runtime, error)
}

// lazyRuntime opens the runtime on first use so that commands which do
// not touch the catalog (help, version, settings) never open the store.
type lazyRuntime struct {
	open func() (*app.Runtime, error)

	mu  sync.Mutex
	rt  *app.Runtime
	err error
}

func newLazyRuntime(open func() (*app.Runtime, error)) *lazyRuntime {
	return &lazyRuntime{open: open}
}

// Runtime opens the runtime once and returns the cached result after.
func (l *lazyRuntime) Runtime() (*app.Runtime, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rt == nil && l.err == nil {
		l.rt, l.err = l.open()
	}
	return l.rt, l.err
}

// Close releases the runtime if it was opened.
func (l *lazyRuntime) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rt := l.rt
	l.rt = nil
	return rt.Close()
}

var catalogRuntime = newLazyRuntime(app.Open)

// useAPI resolves the data source for a command run.
func useAPI(rt *app.Runtime, offline bool) bool {
	return rt.UseAPI && !offline
}
