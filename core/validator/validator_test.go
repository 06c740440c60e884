package validator

import (
	"strings"
	"testing"
)

type sampleForm struct {
	Name  string `form:"name" validate:"notblank"`
	Email string `form:"email" validate:"required,email"`
	Phone string `form:"phone" validate:"phone"`
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"1234567890", "0000000000"}
	invalid := []string{"12345", "12345678901", "123456789a", "", "123 456 78", "+123456789"}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = false", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = true", p)
		}
	}
}

func TestValidateUsesFormFieldNames(t *testing.T) {
	res := Validate(&sampleForm{Name: "  ", Email: "nope", Phone: "12345"})
	if !res.HasError() {
		t.Fatal("expected errors")
	}
	msgs := res.Messages()
	if msgs["name"] != ErrFieldRequired {
		t.Errorf("name: %q", msgs["name"])
	}
	if msgs["email"] != ErrInvalidEmail {
		t.Errorf("email: %q", msgs["email"])
	}
	if msgs["phone"] != ErrInvalidPhone {
		t.Errorf("phone: %q", msgs["phone"])
	}
}

func TestValidateAcceptsGoodInput(t *testing.T) {
	res := Validate(&sampleForm{Name: "Ann", Email: "a@x.com", Phone: "1234567890"})
	if res.HasError() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
}

type secretForm struct {
	Password string `form:"password" validate:"maxbytes=72"`
}

func TestMaxBytesCountsBytes(t *testing.T) {
	if res := Validate(&secretForm{Password: strings.Repeat("a", 72)}); res.HasError() {
		t.Errorf("72 bytes rejected: %+v", res.Errors)
	}
	if msgs := Validate(&secretForm{Password: strings.Repeat("a", 73)}).Messages(); msgs["password"] != ErrTooLong {
		t.Errorf("73 bytes: %q", msgs["password"])
	}
	// 30 runes, 90 bytes.
	if msgs := Validate(&secretForm{Password: strings.Repeat("é€", 15)}).Messages(); msgs["password"] != ErrTooLong {
		t.Errorf("multi-byte: %q", msgs["password"])
	}
}
