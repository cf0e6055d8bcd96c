package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestReady_LoginNeedsUsernameAndPassword(t *testing.T) {
	f := Form{Username: "freddy"}
	if f.Ready() {
		t.Fatal("missing password should disable login")
	}
	f.Password = "secret"
	if !f.Ready() {
		t.Fatal("username+password should enable login")
	}
}

func TestReady_WhitespaceIsEmpty(t *testing.T) {
	f := Form{Username: "   ", Password: "x"}
	if f.Ready() {
		t.Fatal("whitespace username should count as empty")
	}
}

func TestReady_RegisterNeedsEmail(t *testing.T) {
	f := Form{Mode: ModeRegister, Username: "freddy", Password: "secret"}
	if f.Ready() {
		t.Fatal("registration without email should be disabled")
	}
	f.Email = "f@example.com"
	if !f.Ready() {
		t.Fatal("complete registration should be enabled")
	}
}

func TestSubmit_Incomplete(t *testing.T) {
	f := Form{}
	if _, err := f.Submit(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestSubmit_CreatesAccount(t *testing.T) {
	f := Form{Mode: ModeRegister, Username: " freddy ", Email: "f@example.com", Password: "secret"}
	acct, err := f.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if acct.ID == uuid.Nil {
		t.Fatal("account should get an id")
	}
	if acct.Username != "freddy" || acct.Email != "f@example.com" {
		t.Fatalf("unexpected account %+v", acct)
	}
	if f.Password != "" {
		t.Fatal("password should be cleared after submit")
	}
}

func TestSubmit_LoginDropsEmail(t *testing.T) {
	f := Form{Username: "freddy", Email: "stale@example.com", Password: "x"}
	acct, err := f.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if acct.Email != "" {
		t.Fatalf("login should not carry an email, got %q", acct.Email)
	}
}

func TestToggleMode_KeepsValues(t *testing.T) {
	f := Form{Username: "freddy"}
	f.ToggleMode()
	if f.Mode != ModeRegister || f.Username != "freddy" {
		t.Fatalf("unexpected form after toggle: %+v", f)
	}
	if len(f.Fields()) != 3 {
		t.Fatalf("register mode shows 3 fields, got %d", len(f.Fields()))
	}
	f.ToggleMode()
	if f.Mode != ModeLogin || len(f.Fields()) != 2 {
		t.Fatal("second toggle should return to login")
	}
}

func TestValue_PointsAtField(t *testing.T) {
	f := Form{}
	*f.Value(FieldEmail) = "a@b.c"
	*f.Value(FieldPassword) = "pw"
	*f.Value(FieldUsername) = "u"
	if f.Email != "a@b.c" || f.Password != "pw" || f.Username != "u" {
		t.Fatalf("Value should write through: %+v", f)
	}
}
