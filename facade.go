package logger

// Facade helpers using the process-wide root.
// Usage: logger.Info("listening on", addr)

func Debug(values ...any) *Logger   { return L().Debug(values...) }
func Info(values ...any) *Logger    { return L().Info(values...) }
func Warning(values ...any) *Logger { return L().Warning(values...) }
func Error(values ...any) *Logger   { return L().Error(values...) }

// SetLevel sets the global level by name.
func SetLevel(name string) error {
	_, err := L().SetLevel(name)
	return err
}

// Create returns a child of the process-wide root.
func Create(label string, level ...string) (*Logger, error) {
	return L().Create(label, level...)
}
