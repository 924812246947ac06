package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func captureLogger(buf *bytes.Buffer) *ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return NewFromZap(zap.New(core))
}

func TestGlobalLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	prev := GetGlobalLogger()
	SetGlobalLogger(captureLogger(&buf))
	defer SetGlobalLogger(prev)

	ctx := WithRequestID(context.Background(), "req-42")
	WarnCtx(ctx, "cache unavailable", String("stop_id", "S2"))

	out := buf.String()
	assert.Contains(t, out, "cache unavailable")
	assert.Contains(t, out, "req-42")
	assert.Contains(t, out, "S2")
}

func TestRequestIDFrom_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: 200, level: `"level":"info"`},
		{name: "client error", status: 404, level: `"level":"warn"`},
		{name: "server error", status: 500, level: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := captureLogger(&buf)
			l.LogHTTPRequest("POST", "/trackBus", "127.0.0.1", "req-1", tt.status, 0, nil)
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "/trackBus")
		})
	}
}
