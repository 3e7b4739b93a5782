package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := insertFailed("answer insertion failed", cause)

	if got := err.Error(); got != "INSERT_FAILED: answer insertion failed: disk I/O error" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestError_PredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("seed user ada: %w", duplicate("user already exists", nil))

	if !IsDuplicate(err) {
		t.Error("IsDuplicate() = false through wrapping, want true")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound() = true for duplicate error")
	}
}

func TestError_CodesAreDistinct(t *testing.T) {
	if IsInvalidArgument(notFound("wrong id provided")) {
		t.Error("not-found classified as invalid argument")
	}
	if IsNotFound(invalidArgument("invalid count", nil)) {
		t.Error("invalid argument classified as not found")
	}
}
