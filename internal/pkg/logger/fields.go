package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field
type Field = zap.Field

// String logs a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err logs an error under the "error" key
func Err(err error) Field {
	return zap.Error(err)
}

// Int logs an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Uint32 logs a uint32 value
func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

// Any logs an arbitrary value using reflection
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration logs a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
