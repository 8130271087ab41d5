package utils

import (
	"errors"
	"testing"

	"FoodShare-Server/domain"
)

func TestDecodeStrictAllowedBody(t *testing.T) {
	body := []byte(`{"food_name":"Bread","email":"a@x.com","available_status":true,"food_quantity":2,"pickup_location":"Main St","expire_date":"2025-01-01"}`)

	var req domain.AddFoodRequest
	if err := DecodeStrict(body, &req); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if req.FoodName != "Bread" {
		t.Errorf("food_name = %q, want %q", req.FoodName, "Bread")
	}
	if req.Email != "a@x.com" {
		t.Errorf("email = %q, want %q", req.Email, "a@x.com")
	}
	if !req.AvailableStatus {
		t.Error("available_status should be true")
	}
	if req.FoodQuantity != 2 {
		t.Errorf("food_quantity = %d, want 2", req.FoodQuantity)
	}
}

func TestDecodeStrictDisallowedField(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		schema    interface{}
		wantField string
	}{
		{
			name:      "extra field on food create",
			body:      `{"food_name":"Bread","foo":"bar"}`,
			schema:    &domain.AddFoodRequest{},
			wantField: "foo",
		},
		{
			name:      "immutable owner field on food update",
			body:      `{"food_name":"Rice","email":"a@x.com"}`,
			schema:    &domain.UpdateFoodRequest{},
			wantField: "email",
		},
		{
			name:      "first offending field wins",
			body:      `{"bogus":1,"also_bogus":2}`,
			schema:    &domain.AddFoodRequest{},
			wantField: "bogus",
		},
		{
			name:      "extra field on request create",
			body:      `{"reason":"hungry","admin":true}`,
			schema:    &domain.AddFoodRequestRequest{},
			wantField: "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodeStrict([]byte(tt.body), tt.schema)
			var disallowed *domain.DisallowedFieldError
			if !errors.As(err, &disallowed) {
				t.Fatalf("expected DisallowedFieldError, got %v", err)
			}
			if disallowed.Field != tt.wantField {
				t.Errorf("field = %q, want %q", disallowed.Field, tt.wantField)
			}
		})
	}
}

func TestDisallowedFieldErrorMessage(t *testing.T) {
	err := &domain.DisallowedFieldError{Field: "foo"}
	if got, want := err.Error(), `Field "foo" not allowed`; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestDecodeStrictMapSkipsNestedValues(t *testing.T) {
	// Keys inside a nested value belong to that value, not to the top-level
	// schema; only top-level keys are whitelisted.
	body := []byte(`{"notes":[1,{"not_a_field":true}],"food_quantity":3}`)

	fields, err := DecodeStrictMap(body, &domain.UpdateFoodRequest{})
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 provided fields, got %d", len(fields))
	}
	if _, ok := fields["food_quantity"]; !ok {
		t.Error("food_quantity missing from provided fields")
	}
}

func TestDecodeStrictMapPartialFields(t *testing.T) {
	fields, err := DecodeStrictMap([]byte(`{"food_quantity":3}`), &domain.UpdateFoodRequest{})
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected only the provided field, got %d", len(fields))
	}
}

func TestDecodeStrictInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not an object", body: `[1,2]`},
		{name: "empty body", body: ``},
		{name: "truncated object", body: `{"food_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodeStrict([]byte(tt.body), &domain.AddFoodRequest{})
			if err == nil {
				t.Fatal("expected error")
			}
			var disallowed *domain.DisallowedFieldError
			if errors.As(err, &disallowed) {
				t.Fatalf("expected a generic parse error, got DisallowedFieldError for %q", disallowed.Field)
			}
		})
	}
}
