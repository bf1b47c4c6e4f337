package core

// Logger reports messages to the console and the error tracker.
// `args` may hold errors, extra data maps and an Identity for the acting user.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Identity is the authenticated principal of a request.
type Identity struct {
	ID       int
	Username string
	Role     string
}
