package validate_test

import (
	"testing"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/validate"
)

type checkoutInput struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
	Role  string  `json:"role"  validate:"nullable,in=user,admin"`
	Note  string  `json:"note"  validate:"nullable,max=10"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "a@b.com", Price: 19.99, Role: "admin"})
	if validate.HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRequiredAndEmail(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "", Price: 5})
	if errs["email"] == "" {
		t.Error("expected required error for email")
	}

	errs = validate.Struct(&checkoutInput{Email: "not-an-email", Price: 5})
	if errs["email"] == "" {
		t.Error("expected email format error")
	}
}

func TestGreaterThan(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "a@b.com", Price: 0})
	if errs["price"] == "" {
		t.Error("expected gt=0 failure for zero price")
	}
}

func TestInRuleKeepsCommaParams(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "a@b.com", Price: 1, Role: "superuser"})
	if errs["role"] == "" {
		t.Error("expected in= failure for unknown role")
	}

	errs = validate.Struct(&checkoutInput{Email: "a@b.com", Price: 1, Role: "user"})
	if errs["role"] != "" {
		t.Errorf("unexpected role error: %s", errs["role"])
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "a@b.com", Price: 1})
	if errs["role"] != "" || errs["note"] != "" {
		t.Errorf("nullable fields should be skipped when empty: %v", errs)
	}
}

func TestMaxLength(t *testing.T) {
	errs := validate.Struct(&checkoutInput{Email: "a@b.com", Price: 1, Note: "this note is too long"})
	if errs["note"] == "" {
		t.Error("expected max length failure")
	}
}
