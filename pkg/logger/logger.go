package logger

// Field пара ключ-значение для структурированного лога.
type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger интерфейс логгера компонентов, его же реализуют моки handlerLogger.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}
