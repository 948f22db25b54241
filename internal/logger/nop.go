package logger

// NopLogger discards everything. Use in tests or when logging is
// disabled.
type NopLogger struct{}

// NewNop creates a no-op logger.
func NewNop() Logger { return &NopLogger{} }

func (l *NopLogger) Debug(msg string, fields ...Field) {}
func (l *NopLogger) Info(msg string, fields ...Field)  {}
func (l *NopLogger) Warn(msg string, fields ...Field)  {}
func (l *NopLogger) Error(msg string, fields ...Field) {}

// Fatal does nothing and does not exit in no-op mode.
func (l *NopLogger) Fatal(msg string, fields ...Field) {}

func (l *NopLogger) With(fields ...Field) Logger { return l }

func (l *NopLogger) Sync() error { return nil }
