package errors

import (
	"errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*GlowError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *GlowError) {
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *PanicError) {
	h.panics = append(h.panics, err)
}

func TestGlowError_Error(t *testing.T) {
	err := &GlowError{
		Op:   "input.HandleEvent",
		Kind: KindDispatch,
		Err:  errors.New("boom"),
	}
	got := err.Error()
	if !strings.Contains(got, "input.HandleEvent") || !strings.Contains(got, "dispatch") || !strings.Contains(got, "boom") {
		t.Errorf("unexpected message: %q", got)
	}

	err.Widget = "ButtonWidget"
	if got := err.Error(); !strings.Contains(got, "widget=ButtonWidget") {
		t.Errorf("widget missing from message: %q", got)
	}
}

func TestGlowError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &GlowError{Op: "core.BeginWidget", Kind: KindReconcile, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through GlowError")
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:   "unknown",
		KindReconcile: "reconcile",
		KindDispatch:  "dispatch",
		KindUpdate:    "update",
		KindPaint:     "paint",
		KindPanic:     "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestReport_SetsTimestampAndDelivers(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&GlowError{Op: "op", Kind: KindUpdate, Err: errors.New("x")})

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report must stamp the error")
	}

	Report(nil)
	if len(h.errs) != 1 {
		t.Error("nil errors must not be delivered")
	}
}

func TestRethrow_ReportsThenPanics(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	defer func() {
		r := recover()
		if r != "original value" {
			t.Errorf("recovered %v, want the original panic value", r)
		}
		if len(h.panics) != 1 {
			t.Fatalf("handler received %d panics, want 1", len(h.panics))
		}
		p := h.panics[0]
		if p.Op != "test.op" || p.Widget != "fooWidget" || p.Value != "original value" {
			t.Errorf("panic report = %+v", p)
		}
		if p.StackTrace == "" {
			t.Error("panic report should carry a stack trace")
		}
	}()
	Rethrow("test.op", "fooWidget", "original value")
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("nil should restore the log handler, got %T", getHandler())
	}
}

func TestCaptureStack_NamesCaller(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "TestCaptureStack_NamesCaller") {
		t.Errorf("stack should include the calling test:\n%s", stack)
	}
}

func TestPanicError_Error(t *testing.T) {
	withOp := &PanicError{Op: "core.Finish", Value: "bad"}
	if got := withOp.Error(); !strings.Contains(got, "core.Finish") || !strings.Contains(got, "bad") {
		t.Errorf("unexpected message: %q", got)
	}

	bare := &PanicError{Value: 42}
	if got := bare.Error(); !strings.Contains(got, "42") {
		t.Errorf("unexpected message: %q", got)
	}
}
