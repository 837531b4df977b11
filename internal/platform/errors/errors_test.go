package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeEntryMissing, "no entry for key 5", map[string]string{"key": "5"})
	wrapped := fmt.Errorf("resolve primary: %w", err)

	if !errors.Is(wrapped, New(CodeEntryMissing, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, New(CodeDatasetInvalid, "")) {
		t.Fatal("expected different code not to match")
	}
	if got := GetMetadata(wrapped)["key"]; got != "5" {
		t.Fatalf("metadata key = %q, want 5", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("open iching.json: no such file")
	err := Wrap(CodeDatasetMissing, "read dataset", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "read dataset: open iching.json: no such file" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode = %s, want %s", got, CodeUnknown)
	}
	if IsCode(nil, CodeEntryMissing) {
		t.Fatal("nil error must not carry a code")
	}
}

func TestCodeClass(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{CodeDatasetMissing, ClassConfiguration},
		{CodeDatasetMalformed, ClassConfiguration},
		{CodeDatasetInvalid, ClassConfiguration},
		{CodeStorageUnavailable, ClassConfiguration},
		{CodeEntryMissing, ClassIntegrity},
		{CodeKeyOutOfRange, ClassInput},
		{CodeUnknownTrigram, ClassInput},
		{CodeUnknown, ClassInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Class(); got != tt.want {
			t.Errorf("%s.Class() = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestClassHelpers(t *testing.T) {
	cfgErr := fmt.Errorf("startup: %w", New(CodeDatasetInvalid, "bad dataset"))
	if !IsConfiguration(cfgErr) || IsIntegrity(cfgErr) {
		t.Fatal("expected configuration class")
	}
	intErr := New(CodeEntryMissing, "missing")
	if !IsIntegrity(intErr) || IsConfiguration(intErr) {
		t.Fatal("expected integrity class")
	}
}

func TestMetadataIsCopied(t *testing.T) {
	md := map[string]string{"path": "a.json"}
	err := WithMetadata(CodeDatasetMissing, "missing dataset", md)
	md["path"] = "b.json"

	if got := GetMetadata(err)["path"]; got != "a.json" {
		t.Fatalf("metadata path = %q, want a.json", got)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeKeyOutOfRange, "key %d outside [0,63]", 70)
	if err.Error() != "key 70 outside [0,63]" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Class() != ClassInput {
		t.Fatalf("class = %s, want %s", err.Class(), ClassInput)
	}
}
