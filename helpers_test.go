// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import (
	"context"
	"log/slog"
	"testing"

	"gioui.org/glbuf/driver/drivertest"
)

// recorder is a slog.Handler keeping every record.
type recorder struct {
	records []slog.Record
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.records = append(r.records, rec.Clone())
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func (r *recorder) warnings() []slog.Record {
	var w []slog.Record
	for _, rec := range r.records {
		if rec.Level == slog.LevelWarn {
			w = append(w, rec)
		}
	}
	return w
}

// newTestDevice returns a fake device and installs a fresh registry
// and a recording logger for the duration of the test.
func newTestDevice(t *testing.T) (*drivertest.Device, *recorder) {
	t.Helper()
	rec := new(recorder)
	prevLogger := Logger()
	SetLogger(slog.New(rec))
	prevObserver := SetObserver(NewRegistry())
	t.Cleanup(func() {
		SetLogger(prevLogger)
		SetObserver(prevObserver)
	})
	return drivertest.New(), rec
}

func bytesOf(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
