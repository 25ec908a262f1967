package session

import (
	"errors"
	"path/filepath"
	"testing"

	"ludo/internal/domain"
	"ludo/internal/log"
	"ludo/internal/store"
)

func memManager(t *testing.T) *Manager {
	t.Helper()
	db, err := store.Open("")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewManager(NewLocalProvider(db), db, log.NullLogger())
}

func TestSignUpOpensSession(t *testing.T) {
	m := memManager(t)

	user, err := m.SignUp("alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Errorf("user = %+v", user)
	}

	current, ok := m.Current()
	if !ok {
		t.Fatal("no current user after SignUp")
	}
	if current.Username != "alice" {
		t.Errorf("current = %+v", current)
	}
}

func TestSignUpExistingUsername(t *testing.T) {
	m := memManager(t)

	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, err := m.SignUp("alice", "", "other")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}

	// Usernames are case-insensitive
	_, err = m.SignUp("ALICE", "", "other")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("err = %v for case variant, want ErrUserExists", err)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	m := memManager(t)

	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	m.SignOut()
	if _, ok := m.Current(); ok {
		t.Fatal("still signed in after SignOut")
	}

	user, err := m.SignIn("alice", "hunter22")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("user = %+v", user)
	}
}

func TestSignInBadCredentials(t *testing.T) {
	m := memManager(t)

	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	m.SignOut()

	_, err := m.SignIn("alice", "wrong")
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Errorf("err = %v for wrong password, want ErrBadCredentials", err)
	}

	_, err = m.SignIn("nobody", "hunter22")
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Errorf("err = %v for unknown user, want ErrBadCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	m := memManager(t)

	if _, err := m.SignUp("", "", "pw"); err == nil {
		t.Error("empty username accepted")
	}
	if _, err := m.SignUp("bob", "", ""); err == nil {
		t.Error("empty password accepted")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ludo.db")

	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	m := NewManager(NewLocalProvider(db), db, log.NullLogger())
	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	db.Close()

	db, err = store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	restored := NewManager(NewLocalProvider(db), db, log.NullLogger())
	current, ok := restored.Current()
	if !ok {
		t.Fatal("session not restored after restart")
	}
	if current.Username != "alice" {
		t.Errorf("restored user = %+v", current)
	}
}

func TestSignOutClearsPersistedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ludo.db")

	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	m := NewManager(NewLocalProvider(db), db, log.NullLogger())
	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	m.SignOut()
	db.Close()

	db, err = store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	restored := NewManager(NewLocalProvider(db), db, log.NullLogger())
	if _, ok := restored.Current(); ok {
		t.Error("signed-out session restored after restart")
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	m := memManager(t)
	if _, err := m.SignUp("alice", "", "hunter22"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	user, _ := m.Current()
	user.Username = "mutated"

	fresh, _ := m.Current()
	if fresh.Username != "alice" {
		t.Error("manager state mutated through Current() result")
	}
}
