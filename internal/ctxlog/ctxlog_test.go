package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("stored")

	if !strings.Contains(buf.String(), "msg=stored") {
		t.Errorf("logger from context did not write to buffer: %q", buf.String())
	}
}

func TestFromContextDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Errorf("FromContext() = %v, want slog.Default()", got)
	}
	if got := FromContext(WithLogger(context.Background(), nil)); got != slog.Default() {
		t.Errorf("FromContext(nil logger) = %v, want slog.Default()", got)
	}
}
