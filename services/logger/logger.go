package logger

import "log"

// Level là ngưỡng log: message dưới ngưỡng bị bỏ qua
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

func (l Level) prefix() string {
	switch l {
	case DebugLevel:
		return "[DEBUG] "
	case ErrorLevel:
		return "[ERROR] "
	default:
		return "[INFO] "
	}
}

// Logger là interface log dùng chung cho các service; quy trình thanh
// toán nhận Logger qua options nên test cắm logger riêng được.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi ra stdlib log với prefix theo mức
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo logger với ngưỡng cho trước
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) write(at Level, format string, v ...interface{}) {
	if l.level <= at {
		log.Printf(at.prefix()+format, v...)
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.write(InfoLevel, format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.write(ErrorLevel, format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.write(DebugLevel, format, v...)
}
