package logger

// Root is the unlabeled logger that owns the global level. Its own filtering
// always follows the global level, and it creates child loggers.
type Root struct {
	Logger
}

func newRoot(cfg Config) *Root {
	c := newCore(cfg)
	return &Root{Logger: Logger{res: globalResolver{c: c}, core: c}}
}

// Create returns a child logger with the given label. Without a level the
// child follows the global level as it changes; with a non-empty level the
// child keeps that level. An invalid level fails the whole call.
func (r *Root) Create(label string, level ...string) (*Logger, error) {
	child := &Logger{
		label: label,
		res:   &overrideResolver{c: r.core},
		core:  r.core,
	}
	if len(level) > 0 && level[0] != "" {
		if _, err := child.SetLevel(level[0]); err != nil {
			return nil, err
		}
	}
	return child, nil
}

// AddObserver registers o for lines emitted by this root and all of its
// children, and for global level changes.
func (r *Root) AddObserver(o Observer) {
	r.core.addObserver(o)
}
