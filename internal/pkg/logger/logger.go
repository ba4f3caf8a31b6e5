package logger

// Logger defines the logging interface.
// Messages take slog style key/value pairs, e.g. log.Info("equipment created", "jft_no", no).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
	Panic(msg string, args ...interface{})
	With(args ...interface{}) Logger
}
