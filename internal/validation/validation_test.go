package validation

import (
	"errors"
	"testing"
)

type createPayload struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"omitempty,email"`
	Logo  string `json:"logo" validate:"omitempty,url"`
}

type patchPayload struct {
	Name        *string `json:"name" validate:"omitnil,notblank"`
	Description *string `json:"description"`
}

func TestStructValid(t *testing.T) {
	v := New()
	err := v.Struct(createPayload{Name: "Diabetes Care", Email: "jane@x.com", Logo: "https://cdn.example.com/logo.png"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStructMissingRequiredField(t *testing.T) {
	v := New()
	err := v.Struct(createPayload{Email: "jane@x.com"})

	var validationError *Error
	if !errors.As(err, &validationError) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if validationError.Fields["name"] != "is required" {
		t.Fatalf("expected name message, got %q", validationError.Fields["name"])
	}
}

func TestStructBadEmailAndURL(t *testing.T) {
	v := New()
	err := v.Struct(createPayload{Name: "x", Email: "not-an-email", Logo: "not a url"})

	var validationError *Error
	if !errors.As(err, &validationError) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(validationError.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(validationError.Fields))
	}
	if validationError.Fields["email"] != "must be a valid email address" {
		t.Fatalf("unexpected email message %q", validationError.Fields["email"])
	}
	if validationError.Fields["logo"] != "must be a valid URL" {
		t.Fatalf("unexpected logo message %q", validationError.Fields["logo"])
	}
}

func TestStructWhitespaceOnlyRejected(t *testing.T) {
	v := New()
	err := v.Struct(createPayload{Name: "   "})

	var validationError *Error
	if !errors.As(err, &validationError) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if validationError.Fields["name"] != "must not be blank" {
		t.Fatalf("expected notblank message, got %q", validationError.Fields["name"])
	}
}

func TestStructAbsentPointerSkipped(t *testing.T) {
	v := New()
	if err := v.Struct(patchPayload{}); err != nil {
		t.Fatalf("expected absent fields to pass, got %v", err)
	}
}

func TestStructPresentEmptyPointerRejected(t *testing.T) {
	v := New()
	empty := ""
	err := v.Struct(patchPayload{Name: &empty})

	var validationError *Error
	if !errors.As(err, &validationError) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if _, ok := validationError.Fields["name"]; !ok {
		t.Fatalf("expected name field error, got %v", validationError.Fields)
	}
}

func TestErrorMessageListsFields(t *testing.T) {
	err := &Error{Fields: map[string]string{"name": "is required", "logo": "must be a valid URL"}}
	want := "validation failed: logo must be a valid URL; name is required"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
