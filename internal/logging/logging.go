package logging

// Logger is the reporting interface injected into every pipeline
// component. Library code never configures process-wide logging; the
// caller decides where output goes. *logrus.Logger satisfies this
// interface directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Nop discards all log output. Used when no logger is injected.
type Nop struct{}

func (Nop) Debugf(string, ...interface{}) {}
func (Nop) Infof(string, ...interface{})  {}
func (Nop) Warnf(string, ...interface{})  {}
func (Nop) Errorf(string, ...interface{}) {}
