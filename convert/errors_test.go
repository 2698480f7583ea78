package convert

import (
	"strings"
	"testing"
)

func TestIncompatibleLengthError(t *testing.T) {
	err := &IncompatibleLengthError{Length: 10, PageSize: 3}

	msg := err.Error()
	for _, want := range []string{"10", "page size 3", "not a multiple"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q does not contain %q", msg, want)
		}
	}
}

func TestShortReadError(t *testing.T) {
	err := &ShortReadError{Input: 2, Got: 100}

	msg := err.Error()
	for _, want := range []string{"input 2", "100", "512"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q does not contain %q", msg, want)
		}
	}
}
