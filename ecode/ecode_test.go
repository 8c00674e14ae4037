package ecode

import (
	"net/http"
	"testing"
)

func TestTextKnownCode(t *testing.T) {
	if got := Text(NothingFound); got != "resource not found" {
		t.Fatalf("unexpected message for NothingFound: %q", got)
	}
}

func TestTextUnknownCodeFallsBackToServerErr(t *testing.T) {
	if got := Text(-99999); got != Text(ServerErr) {
		t.Fatalf("expected server error message for unknown code, got %q", got)
	}
}

func TestRegisterCustomCode(t *testing.T) {
	const orderExpired = -1002
	Register(orderExpired, "order has expired")
	if got := Text(orderExpired); got != "order has expired" {
		t.Fatalf("expected registered message, got %q", got)
	}
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[int]int{
		OK:           http.StatusOK,
		RequestErr:   http.StatusBadRequest,
		ParamErr:     http.StatusBadRequest,
		NoLogin:      http.StatusUnauthorized,
		AccessDenied: http.StatusForbidden,
		NothingFound: http.StatusNotFound,
		Conflict:     http.StatusConflict,
		ServerErr:    http.StatusInternalServerError,
		-77777:       http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := ToHTTPStatus(code); got != want {
			t.Errorf("ToHTTPStatus(%d) = %d, want %d", code, got, want)
		}
	}
}

func TestFieldMessages(t *testing.T) {
	if got := FieldIsRequired("email"); got != "email required" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := FieldIsInvalid(); got != "invalid" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := AlreadyExist("user"); got != "user already exists" {
		t.Errorf("unexpected message: %q", got)
	}
}
