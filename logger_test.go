package glsprite_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/db47h/glsprite"
)

func TestSetLogger(t *testing.T) {
	def := glsprite.Logger()
	if def.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	buf := captureLog(t)
	glsprite.Logger().Info("hello")
	if buf.Len() == 0 {
		t.Error("custom logger not used")
	}
	glsprite.SetLogger(nil)
	if glsprite.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
