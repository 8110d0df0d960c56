package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// ErrNoRouter is returned by Build when the router was explicitly cleared.
var ErrNoRouter = errors.New("logger: no router configured")

// Config for constructing a Root (Factory data structure).
type Config struct {
	// Level seeds the global level. Unknown or empty names mean "all".
	Level     string
	Router    Router
	Observers []Observer
	Clock     xclock.Clock // optional; defaults to the xclock process default
}

// Builder separates construction from representation (Builder pattern).
// Roots built here are independent of the process-wide Default root.
type Builder struct {
	cfg Config
}

// NewBuilder starts from level "all" and the process stdout/stderr streams.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		Level:  LevelAll.Name,
		Router: NewWriterRouter(os.Stdout, os.Stderr),
	}}
}

// WithLevel seeds the global level. Unlike SetLevel, an unknown name does not
// fail; it falls back to "all".
func (b *Builder) WithLevel(name string) *Builder {
	b.cfg.Level = name
	return b
}

func (b *Builder) WithRouter(r Router) *Builder {
	b.cfg.Router = r
	return b
}

// WithWriters routes debug/info to normal and warning/error to errw.
func (b *Builder) WithWriters(normal, errw io.Writer) *Builder {
	b.cfg.Router = NewWriterRouter(normal, errw)
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Root (Factory + Builder).
func (b *Builder) Build() (*Root, error) {
	if b.cfg.Router == nil {
		return nil, errors.WithStack(ErrNoRouter)
	}
	return newRoot(b.cfg), nil
}
