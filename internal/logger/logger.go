package logger

import "go.uber.org/zap"

type Logger struct {
	l *zap.SugaredLogger
}

func New(l *zap.Logger) *Logger {
	return &Logger{l: l.Sugar()}
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *Logger {
	return &Logger{l: zap.NewNop().Sugar()}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Errorf(format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Infof(format, v...)
}
