package gbaderr_test

import (
	"errors"
	"testing"

	"github.com/anomgraph/gbad/gbaderr"
)

func TestParseError_UnwrapsCause(t *testing.T) {
	cause := errors.New("unexpected token")
	err := &gbaderr.ParseError{Line: 3, Message: "bad vertex line", Cause: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the wrapped cause")
	}
	if err.Error() == "" {
		t.Fatalf("expected non-empty error message")
	}
}

func TestOptionError_AsRecoversKind(t *testing.T) {
	var err error = gbaderr.NewOptionError("-minsize", "must be <= -maxsize")
	var oe *gbaderr.OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("expected errors.As to recover *OptionError")
	}
	if oe.Option != "-minsize" {
		t.Fatalf("expected Option to be preserved, got %q", oe.Option)
	}
}

func TestCheckInvariant_NoopInReleaseBuild(t *testing.T) {
	// Without the gbaddebug build tag, this must never panic.
	gbaderr.CheckInvariant(false, "adjacency", "should not panic here")
}
