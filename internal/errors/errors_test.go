package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/signalnine/solvecmp/internal/errors"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, errors.ExitSuccess},
		{"plain error", fmt.Errorf("boom"), errors.ExitRuntimeError},
		{"config", errors.Config("no sources defined"), errors.ExitConfigError},
		{"io", errors.IO("missing.txt", os.ErrNotExist), errors.ExitIOError},
		{"wrapped io", fmt.Errorf("loading sources: %w", errors.IO("a.txt", os.ErrNotExist)), errors.ExitIOError},
		{"runtime wrap", errors.Wrap(fmt.Errorf("x"), "analysing"), errors.ExitRuntimeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIOErrorMessage(t *testing.T) {
	err := errors.IO("results.txt", os.ErrNotExist)
	want := "reading results.txt: file does not exist"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("expected cause to unwrap to os.ErrNotExist")
	}
	if !errors.Is(fmt.Errorf("ctx: %w", err), errors.KindIO) {
		t.Error("expected Is to find KindIO through wrapping")
	}
}
