package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes fn and turns any panic into an error log with the stack
// attached, so one bad request never takes the process down.
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", "safe.Run"),
				slog.String("stack", GetStack()),
			)
		}
	}()

	fn()
}

// GetStack returns the current goroutine's stack trace as a string.
func GetStack() string {
	return string(debug.Stack())
}
