package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("principal must be positive"), KindValidation},
		{"invalid state", InvalidState("lock is not locked"), KindInvalidState},
		{"not found", NotFound("no such lock"), KindNotFound},
		{"conflict", Conflict("pending request exists"), KindConflict},
		{"plain error", errors.New("boom"), 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("transfer failed: %w", ValidationField("shares", "insufficient shares"))
	if !IsValidation(err) {
		t.Fatalf("wrapped validation error not detected")
	}
	if IsInvalidState(err) {
		t.Fatalf("wrong kind detected")
	}
}

func TestErrorMessageIncludesField(t *testing.T) {
	err := ValidationField("principal", "must be greater than zero")
	if got := err.Error(); got != "principal: must be greater than zero" {
		t.Fatalf("Error() = %q", got)
	}
}
