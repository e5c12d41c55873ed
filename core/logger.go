package core

// Logger logs messages at increasing levels of severity.
// args may carry extra context to attach to the entry: errors, maps or any
// other values the backing implementation knows how to render.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
