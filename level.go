package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is a named verbosity threshold. Higher numbers let more messages through.
type Level struct {
	Number int
	Name   string
}

var (
	LevelAll     = Level{Number: 100, Name: "all"}
	LevelDebug   = Level{Number: 7, Name: "debug"}
	LevelInfo    = Level{Number: 6, Name: "info"}
	LevelWarning = Level{Number: 4, Name: "warning"}
	LevelError   = Level{Number: 3, Name: "error"}
	LevelNone    = Level{Number: -1, Name: "none"}
)

func (l Level) String() string { return l.Name }

// Sink identifies one of the two output streams.
type Sink uint8

const (
	SinkNormal Sink = iota
	SinkError
)

func (s Sink) String() string {
	if s == SinkError {
		return "error"
	}
	return "normal"
}

// Severity classifies a single message. Its number lines up with the Level of
// the same name; Sink is fixed per severity.
type Severity struct {
	Number  int
	Name    string
	Sink    Sink
	display string
}

var (
	SeverityDebug   = Severity{Number: 7, Name: "debug", Sink: SinkNormal, display: "DEBUG"}
	SeverityInfo    = Severity{Number: 6, Name: "info", Sink: SinkNormal, display: "INFO"}
	SeverityWarning = Severity{Number: 4, Name: "warning", Sink: SinkError, display: "WARNING"}
	SeverityError   = Severity{Number: 3, Name: "error", Sink: SinkError, display: "ERROR"}
)

// String returns the uppercase name used in formatted lines.
func (s Severity) String() string {
	if s.display == "" {
		return strings.ToUpper(s.Name)
	}
	return s.display
}

var levels = map[string]Level{
	LevelAll.Name:     LevelAll,
	LevelDebug.Name:   LevelDebug,
	LevelInfo.Name:    LevelInfo,
	LevelWarning.Name: LevelWarning,
	LevelError.Name:   LevelError,
	LevelNone.Name:    LevelNone,
}

var severities = map[string]Severity{
	SeverityDebug.Name:   SeverityDebug,
	SeverityInfo.Name:    SeverityInfo,
	SeverityWarning.Name: SeverityWarning,
	SeverityError.Name:   SeverityError,
}

// ErrInvalidLevel is matched (errors.Is) by every failure to resolve a level
// or severity name.
var ErrInvalidLevel = errors.New("invalid level name")

// InvalidLevelError carries the rejected name.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return ErrInvalidLevel.Error() + ": " + e.Name
}

func (e *InvalidLevelError) Is(target error) bool { return target == ErrInvalidLevel }

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseLevel resolves a level name, ignoring case.
func ParseLevel(name string) (Level, error) {
	if l, ok := levels[canonical(name)]; ok {
		return l, nil
	}
	return Level{}, errors.WithStack(&InvalidLevelError{Name: name})
}

// ParseSeverity resolves a severity name, ignoring case.
func ParseSeverity(name string) (Severity, error) {
	if s, ok := severities[canonical(name)]; ok {
		return s, nil
	}
	return Severity{}, errors.WithStack(&InvalidLevelError{Name: name})
}

// levelOrAll is the lenient lookup used when seeding from configuration:
// anything unrecognised, including the empty string, means all.
func levelOrAll(name string) Level {
	if l, ok := levels[canonical(name)]; ok {
		return l
	}
	return LevelAll
}
