// FILE: lixenwraith/daylog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/daylog"
)

// Builder creates adapters for gnet, fasthttp and Fiber sharing one writer.
// It can use an existing writer or create a *daylog.Writer from a *daylog.Config.
type Builder struct {
	writer LineWriter
	owned  *daylog.Writer // Created by the builder, shut down by Shutdown
	cfg    *daylog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithWriter specifies an existing writer to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithWriter(w LineWriter) *Builder {
	if w == nil {
		b.err = fmt.Errorf("daylog/compat: provided writer cannot be nil")
		return b
	}
	b.writer = w
	return b
}

// WithConfig provides a configuration for a new writer instance.
// If neither WithWriter nor WithConfig is used, a default writer is created.
func (b *Builder) WithConfig(cfg *daylog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getWriter resolves the writer to be used, creating one if necessary
func (b *Builder) getWriter() (LineWriter, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.writer != nil {
		return b.writer, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = daylog.DefaultConfig()
	}

	w, err := daylog.NewWriterFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created writer for subsequent builds with this builder
	b.writer = w
	b.owned = w
	return w, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(w, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(w, opts...), nil
}

// BuildFiber creates a Fiber v2.54.x adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(w, opts...), nil
}

// GetWriter returns the underlying writer, creating it if needed
func (b *Builder) GetWriter() (LineWriter, error) {
	return b.getWriter()
}

// Shutdown shuts down a writer the builder created; a writer passed to
// WithWriter is left to its owner.
func (b *Builder) Shutdown() error {
	if b.owned == nil {
		return nil
	}
	return b.owned.Shutdown()
}

// --- Example Usage ---
//
//	// 1. Create the application's writer
//	w, err := daylog.NewWriter("/var/log/app", "net")
//	if err != nil {
//		panic(fmt.Sprintf("failed to create writer: %v", err))
//	}
//	defer w.Shutdown()
//
//	// 2. Build the required adapters around it
//	builder := compat.NewBuilder().WithWriter(w)
//	gnetLogger, _ := builder.BuildGnet()
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//
//	// 3. Hand them to the servers
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
