// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync/atomic"
)

// Violation is the panic value raised on a contract violation.
// Err is one of the contract sentinels (ErrInvalidState, ErrWrongVariant,
// ErrOutOfRange, ErrLengthMismatch, ErrEmpty, ErrPoolMismatch), so a
// recovered Violation can be classified with errors.Is.
//
// File and Line locate the first caller outside this package.
type Violation struct {
	Err  error
	Msg  string
	File string
	Line int
}

func (v *Violation) Error() string {
	if v.File == "" {
		return fmt.Sprintf("%v: %s", v.Err, v.Msg)
	}
	return fmt.Sprintf("%v: %s (%s:%d)", v.Err, v.Msg, v.File, v.Line)
}

func (v *Violation) Unwrap() error { return v.Err }

var faultLogger atomic.Pointer[slog.Logger]

// SetFaultLogger installs l to record every contract violation at Error
// level before the panic is raised. A nil logger disables recording,
// which is the default.
func SetFaultLogger(l *slog.Logger) {
	faultLogger.Store(l)
}

const pkgPrefix = "code.hybscloud.com/own."

// violate raises a *Violation. It never returns.
func violate(err error, format string, args ...any) {
	v := &Violation{Err: err, Msg: fmt.Sprintf(format, args...)}
	v.File, v.Line = callSite()
	if l := faultLogger.Load(); l != nil {
		l.LogAttrs(context.Background(), slog.LevelError, "contract violation",
			slog.String("err", err.Error()),
			slog.String("detail", v.Msg),
			slog.String("file", v.File),
			slog.Int("line", v.Line),
		)
	}
	panic(v)
}

// callSite returns the first frame outside this package.
func callSite() (string, int) {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, pkgPrefix) {
			return f.File, f.Line
		}
		if !more {
			return "", 0
		}
	}
}
