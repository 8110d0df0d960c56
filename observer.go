package logger

import (
	"time"
)

// Observer pattern

// Entry is a read-only snapshot of an emitted line.
type Entry struct {
	At       time.Time
	Label    string
	TxID     string
	Severity Severity
	Text     string // joined values, without prefix or newline
}

// LevelChange is reported whenever the global level is set.
type LevelChange struct {
	Old Level
	New Level
}

// Observer receives notifications for emitted lines and global level changes.
// Implementations MUST be concurrency-safe and must not log through the
// logger that notifies them.
type Observer interface {
	OnLog(e Entry)
	OnLevel(c LevelChange)
}

// ObserverFunc adapts a function to an Observer that ignores level changes.
type ObserverFunc func(e Entry)

func (f ObserverFunc) OnLog(e Entry)         { f(e) }
func (f ObserverFunc) OnLevel(c LevelChange) {}
