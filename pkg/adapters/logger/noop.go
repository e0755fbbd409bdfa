package logger

import "github.com/user/shotframe/pkg/ports"

// NoopLogger discards everything. The CLI uses it for --quiet and the
// library entry points use it when the caller passes no logger.
type NoopLogger struct{}

// NewNoop returns a NoopLogger.
func NewNoop() *NoopLogger { return &NoopLogger{} }

func (*NoopLogger) Debug(string, ...interface{}) {}
func (*NoopLogger) Info(string, ...interface{})  {}
func (*NoopLogger) Warn(string, ...interface{})  {}
func (*NoopLogger) Error(string, ...interface{}) {}

// WithComponent returns l unchanged.
func (l *NoopLogger) WithComponent(string) ports.Logger { return l }

var (
	_ ports.Logger = (*NoopLogger)(nil)
	_ ports.Logger = (*ConsoleLogger)(nil)
)
