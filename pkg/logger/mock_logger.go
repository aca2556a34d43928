package logger

import "fmt"

var _ LoggerWithLoader = &MockLogger{}

// MockLogger records messages so tests can assert on them.
type MockLogger struct {
	Entries []string
}

func (l *MockLogger) record(prefix, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.Entries = append(l.Entries, prefix+msg)
}

func (l *MockLogger) Log(msg string, args ...interface{}) {
	l.record("", msg, args...)
}

func (l *MockLogger) Debug(msg string, args ...interface{}) {
	l.record("[debug] ", msg, args...)
}

func (l *MockLogger) Warning(msg string, args ...interface{}) {
	l.record("[warning] ", msg, args...)
}

func (l *MockLogger) Error(msg string, args ...interface{}) {
	l.record("Error: ", msg, args...)
}

func (l *MockLogger) Step(msg string, args ...interface{}) {
	l.record("- ", msg, args...)
}

func (l *MockLogger) StopLoader() bool {
	return false
}

func (l *MockLogger) StartLoader() {
}
