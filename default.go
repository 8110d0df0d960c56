package logger

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/yucom-util/logger/config"
	"github.com/yucom-util/logger/internal/registry"
)

// instanceKey names the registry slot of the process root. It must never
// change between releases, or two copies would stop sharing one root.
const instanceKey = "io.yucom.log.instance"

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// cached short-circuits the registry once this package has seen the root.
var cached atomic.Pointer[Root]

// Default returns the process-wide root logger (Singleton).
//
// The first access builds it, seeding the global level from config.Load and
// falling back to "all" when the configuration is missing, unreadable or names
// an unknown level. Later accesses return the same instance.
func Default() *Root {
	if r := cached.Load(); r != nil {
		return r
	}
	v, created := registry.LoadOrCreate(instanceKey, func() any {
		return newDefaultRoot()
	})
	r := v.(*Root)
	cached.CompareAndSwap(nil, r)
	if created {
		r.Debug("new instance created")
	} else {
		r.Debug("instance already exists")
	}
	return r
}

// L is shorthand for Default.
func L() *Root { return Default() }

func newDefaultRoot() *Root {
	cfg, _ := config.Load()
	return newRoot(Config{
		Level:  cfg.Level,
		Router: NewWriterRouter(outStdout, outStderr),
	})
}
