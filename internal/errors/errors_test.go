package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cause := stderrors.New("unexpected token")
	err := New(InvalidScannerOutput, "scanner output is not a module list", cause)

	if err.Code != InvalidScannerOutput {
		t.Errorf("Code = %v, want %v", err.Code, InvalidScannerOutput)
	}
	if len(err.SuggestedFixes) != 1 {
		t.Errorf("len(SuggestedFixes) = %d, want 1", len(err.SuggestedFixes))
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestDepError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      InvalidScannerOutput,
			message:   "decode scanner output",
			cause:     stderrors.New("invalid character"),
			wantParts: []string{"INVALID_SCANNER_OUTPUT", "decode scanner output", "invalid character"},
		},
		{
			name:      "without cause",
			code:      UnresolvedSeed,
			message:   "no node matches 'foo'",
			wantParts: []string{"UNRESOLVED_SEED", "no node matches 'foo'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.code, tt.message, tt.cause).Error()
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	base := Newf(UnresolvedSeed, "no match for %q", "x")
	wrapped := fmt.Errorf("impact: %w", base)

	if got := CodeOf(wrapped); got != UnresolvedSeed {
		t.Errorf("CodeOf(wrapped) = %q, want %q", got, UnresolvedSeed)
	}
	if !Is(wrapped, UnresolvedSeed) {
		t.Error("Is(wrapped, UnresolvedSeed) = false, want true")
	}
	if Is(stderrors.New("plain"), UnresolvedSeed) {
		t.Error("Is(plain) = true, want false")
	}
	if CodeOf(nil) != "" {
		t.Error("CodeOf(nil) should be empty")
	}
}

func TestWithDetails(t *testing.T) {
	err := Newf(ConfigInvalid, "bad cap").WithDetails(map[string]int{"resultCap": -1})
	if err.Details == nil {
		t.Fatal("Details should be set")
	}
	if len(err.SuggestedFixes) != 1 || err.SuggestedFixes[0].Type != OpenDocs {
		t.Errorf("SuggestedFixes = %+v", err.SuggestedFixes)
	}
}

func TestGetSuggestedFixes(t *testing.T) {
	if fixes := GetSuggestedFixes(InternalError); fixes != nil {
		t.Errorf("InternalError should have no fixes, got %v", fixes)
	}
	if fixes := GetSuggestedFixes(UnresolvedSeed); len(fixes) != 2 {
		t.Errorf("UnresolvedSeed fixes = %d, want 2", len(fixes))
	}
	for _, code := range []ErrorCode{MalformedInput, UnknownNode} {
		if fixes := GetSuggestedFixes(code); len(fixes) != 1 {
			t.Errorf("%s fixes = %d, want 1", code, len(fixes))
		}
	}
}
