package store

import (
	"path/filepath"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestPutGetDelete(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	want := record{Name: "portal", Count: 2}
	if err := db.Put("games", "portal-2", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got record
	if !db.Get("games", "portal-2", &got) {
		t.Fatal("Get returned false for existing key")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if err := db.Delete("games", "portal-2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if db.Get("games", "portal-2", &got) {
		t.Error("Get returned true after Delete")
	}
}

func TestGetAbsentKey(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var got record
	if db.Get("missing-bucket", "missing-key", &got) {
		t.Error("Get returned true for absent bucket")
	}

	if err := db.Delete("missing-bucket", "missing-key"); err != nil {
		t.Errorf("Delete on absent bucket: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Put("settings", "theme", "dark"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	var theme string
	if !db.Get("settings", "theme", &theme) {
		t.Fatal("value lost across reopen")
	}
	if theme != "dark" {
		t.Errorf("theme = %q, want dark", theme)
	}
}

func TestMemoryOnlyMode(t *testing.T) {
	db, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	defer db.Close()

	if err := db.Put("b", "k", record{Name: "x"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got record
	if !db.Get("b", "k", &got) {
		t.Fatal("Get returned false in memory mode")
	}
	if got.Name != "x" {
		t.Errorf("got %+v", got)
	}

	if err := db.Delete("b", "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if db.Get("b", "k", &got) {
		t.Error("Get returned true after Delete in memory mode")
	}
}
