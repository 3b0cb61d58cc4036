package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToLogLevel_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid level name")
		}
	}()
	ToLogLevel("verbose")
}

func TestErrFmtHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.WithStack(errors.New("solve failed"))
	logger.Error("fit aborted", ErrAttr(err))

	var record map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}
	if _, ok := record[StacktraceAttrKey]; !ok {
		t.Errorf("Expected %q attribute in log output: %s", StacktraceAttrKey, buf.String())
	}
}

func TestErrFmtHandler_NoStacktraceWithoutError(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Info("fit complete", slog.Float64("alpha", 1.0))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}
	if _, ok := record[StacktraceAttrKey]; ok {
		t.Errorf("Unexpected %q attribute: %s", StacktraceAttrKey, buf.String())
	}
}

func TestErrFmtHandler_Enabled(t *testing.T) {
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug must be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error must be enabled at warn level")
	}
}
