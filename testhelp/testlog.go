package testhelp

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Pix4D/kconfig-lang/kconfiglang"
)

// MakeTestLog returns a *slog.Logger adapted for tests: it never reports the
// timestamp and by default it discards all the output. If the tests are invoked in
// verbose mode (go test -v), the output goes to t.Log.
func MakeTestLog(t *testing.T) *slog.Logger {
	var out io.Writer = io.Discard
	if testing.Verbose() {
		out = testWriter{t}
	}
	return slog.New(slog.NewTextHandler(
		out,
		&slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: kconfiglang.RemoveTime,
		}))
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
