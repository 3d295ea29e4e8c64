package makesdf

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/makesdf/distfield"
)

// nopHandler drops every record and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read by Bake workers while SetLogger may replace it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes bake diagnostics to l. The same logger is handed to
// distfield, so hierarchy and sampling timings appear alongside the bake
// summary. Nil silences both packages again, which is also the state a
// program starts in.
//
// Records emitted:
//   - debug: "distfield: hierarchy built", "distfield: field sampled"
//   - info: "makesdf: baked", "makesdf: saved"
//   - warn: output width raised to one pixel
//
// The CLI installs a text or JSON handler here depending on whether stderr
// is a terminal:
//
//	makesdf.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	distfield.SetLogger(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
