package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"telegram-relay-service/pkg/xerrors"
)

func TestValidate(t *testing.T) {
	valid := &Submission{
		Type: TypeContact,
		User: &User{Name: "Ali", Whatsapp: "+966501234567"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid submission: %v", err)
	}

	missing := []*Submission{
		{User: &User{Name: "Ali", Whatsapp: "1"}},
		{Type: TypeBooking},
		{Type: TypeBooking, User: &User{Whatsapp: "1"}},
		{Type: TypeBooking, User: &User{Name: "Ali"}},
	}
	for i, sub := range missing {
		if err := sub.Validate(); !errors.Is(err, xerrors.ErrMissingFields) {
			t.Fatalf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}

	unknown := &Submission{Type: "refund", User: &User{Name: "Ali", Whatsapp: "1"}}
	if err := unknown.Validate(); !errors.Is(err, xerrors.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestFlexStringUnmarshal(t *testing.T) {
	var p Product

	if err := json.Unmarshal([]byte(`{"price":"49.99"}`), &p); err != nil {
		t.Fatalf("string price: %v", err)
	}
	if p.Price != "49.99" {
		t.Fatalf("unexpected price: %q", p.Price)
	}

	if err := json.Unmarshal([]byte(`{"price":120}`), &p); err != nil {
		t.Fatalf("numeric price: %v", err)
	}
	if p.Price != "120" {
		t.Fatalf("unexpected price: %q", p.Price)
	}

	p.Price = ""
	if err := json.Unmarshal([]byte(`{"price":null}`), &p); err != nil {
		t.Fatalf("null price: %v", err)
	}
	if p.Price != "" {
		t.Fatalf("null must leave price empty, got %q", p.Price)
	}
}

func TestSubmissionDecode(t *testing.T) {
	raw := `{"type":"contact","user":{"name":"Ali","whatsapp":"+966 50 123 4567"},"message":"Hi"}`
	var sub Submission
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Type != TypeContact || sub.User.Name != "Ali" || sub.Message != "Hi" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
}
