package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidScene, "unknown node kind: %s", "blob"),
			want: "INVALID_SCENE: unknown node kind: blob",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeEncode, fmt.Errorf("disk full"), "failed to serialize %s", "out.svg"),
			want: "ENCODE_ERROR: failed to serialize out.svg: disk full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedMIME, "cannot embed image type %q", "image/tiff")

	if !Is(err, ErrCodeUnsupportedMIME) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a non-structured error")
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	inner := New(ErrCodeUnsupportedImage, "image has no encoded data")
	outer := fmt.Errorf("compile: %w", inner)

	if !Is(outer, ErrCodeUnsupportedImage) {
		t.Error("Is should unwrap wrapped errors")
	}
	if GetCode(outer) != ErrCodeUnsupportedImage {
		t.Errorf("GetCode = %q, want %q", GetCode(outer), ErrCodeUnsupportedImage)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Structured",
			err:  New(ErrCodeInvalidSize, "width must be positive"),
			want: "width must be positive",
		},
		{
			name: "Plain",
			err:  errors.New("something broke"),
			want: "something broke",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetCodeNonStructured(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}
