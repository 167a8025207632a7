package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromError(t *testing.T) {
	boom := errors.New("disk on fire")
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("recipe abc: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"validation", fmt.Errorf("%w: title is required", ErrValidation), http.StatusBadRequest, "BAD_REQUEST"},
		{"storage", boom, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"already http", NewBadRequest("bad date"), http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := FromError(tt.err)
			if he.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", he.Status, tt.wantStatus)
			}
			if he.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", he.Code, tt.wantCode)
			}
		})
	}

	t.Run("internal message hidden", func(t *testing.T) {
		he := FromError(boom)
		if he.Message == boom.Error() {
			t.Error("internal error text leaked into message")
		}
		if !errors.Is(he, boom) {
			t.Error("expected underlying error to stay reachable via errors.Is")
		}
	})

	t.Run("nil", func(t *testing.T) {
		if FromError(nil) != nil {
			t.Error("expected nil for nil error")
		}
	})
}
