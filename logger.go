package logger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/yucom-util/logger/ambient"
)

// core is the state shared by a root and every logger it creates.
type core struct {
	global atomic.Pointer[Level]
	router Router
	clock  xclock.Clock // nil uses the xclock process default

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

func newCore(cfg Config) *core {
	c := &core{
		router: cfg.Router,
		clock:  cfg.Clock,
	}
	seed := levelOrAll(cfg.Level)
	c.global.Store(&seed)
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		c.observers.Store(obs)
	} else {
		c.observers.Store(([]Observer)(nil))
	}
	return c
}

func (c *core) now() time.Time {
	if c.clock != nil {
		return c.clock.Now()
	}
	return xclock.Now()
}

func (c *core) globalLevel() Level { return *c.global.Load() }

func (c *core) setGlobal(l Level) {
	old := c.global.Swap(&l)
	for _, o := range c.snapshotObservers() {
		o.OnLevel(LevelChange{Old: *old, New: l})
	}
}

func (c *core) snapshotObservers() []Observer {
	v := c.observers.Load()
	if v == nil {
		return nil
	}
	return v.([]Observer)
}

func (c *core) addObserver(o Observer) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	cur := c.snapshotObservers()
	next := make([]Observer, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, o)
	c.observers.Store(next)
}

// resolver decides which level a logger filters with and where SetLevel
// writes to.
type resolver interface {
	effective() Level
	set(l Level)
}

// globalResolver always reads and writes the shared global cell.
type globalResolver struct{ c *core }

func (r globalResolver) effective() Level { return r.c.globalLevel() }
func (r globalResolver) set(l Level)      { r.c.setGlobal(l) }

// overrideResolver uses its own level once set and the live global level
// until then.
type overrideResolver struct {
	c   *core
	own atomic.Pointer[Level]
}

func (r *overrideResolver) effective() Level {
	if l := r.own.Load(); l != nil {
		return *l
	}
	return r.c.globalLevel()
}

func (r *overrideResolver) set(l Level) { r.own.Store(&l) }

// Logger is a labeled, leveled logger. The zero value is not usable; obtain
// one from Default, a Root's Create, or a Builder.
type Logger struct {
	label string
	res   resolver
	core  *core
	ctx   context.Context
}

// Label returns the label given at creation.
func (l *Logger) Label() string { return l.label }

// Level returns the name of the level currently used for filtering.
func (l *Logger) Level() string { return l.res.effective().Name }

// SetLevel changes the level by name, ignoring case. On a root it changes the
// global level. An unknown name returns ErrInvalidLevel and changes nothing.
func (l *Logger) SetLevel(name string) (*Logger, error) {
	lvl, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	l.res.set(lvl)
	return l, nil
}

// Enabled reports whether a message of the given severity would be emitted.
func (l *Logger) Enabled(sev Severity) bool {
	return l.res.effective().Number >= sev.Number
}

// WithContext returns a view of l that reads ambient values such as the
// transaction id from ctx. The view shares label and level state with l.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	view := *l
	view.ctx = ctx
	return &view
}

func (l *Logger) Debug(values ...any) *Logger   { return l.Log(SeverityDebug, values...) }
func (l *Logger) Info(values ...any) *Logger    { return l.Log(SeverityInfo, values...) }
func (l *Logger) Warning(values ...any) *Logger { return l.Log(SeverityWarning, values...) }
func (l *Logger) Error(values ...any) *Logger   { return l.Log(SeverityError, values...) }

// Log emits values at sev when the effective level allows it. It always
// returns l so calls can be chained.
func (l *Logger) Log(sev Severity, values ...any) *Logger {
	if !l.Enabled(sev) {
		return l
	}
	ln := line{
		at:       l.core.now(),
		label:    l.label,
		txid:     l.txid(),
		severity: sev,
		values:   values,
	}

	buf := getBuf()
	start := appendLine(buf, ln)
	l.core.router.Route(sev, buf.b)

	if obs := l.core.snapshotObservers(); len(obs) > 0 {
		e := Entry{
			At:       ln.at,
			Label:    ln.label,
			TxID:     ln.txid,
			Severity: sev,
			Text:     string(buf.b[start : len(buf.b)-1]),
		}
		for _, o := range obs {
			o.OnLog(e)
		}
	}
	putBuf(buf)
	return l
}

func (l *Logger) txid() string {
	if l.ctx == nil {
		return ""
	}
	v, ok := ambient.Get(l.ctx, ambient.TxIDKey)
	if !ok || v == nil {
		return ""
	}
	return stringify(v)
}
