package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE descriptions (
		id TEXT PRIMARY KEY,
		label TEXT,
		kind TEXT,
		sdp TEXT NOT NULL,
		capturedAt REAL NOT NULL
	);
`

// createTestDB creates an in-memory SQLite database with the capture schema.
func createTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return db
}

func insert(t *testing.T, db *sql.DB, id, label, kind, sdp string, at float64) {
	t.Helper()
	var l, k any
	if label != "" {
		l = label
	}
	if kind != "" {
		k = kind
	}
	if _, err := db.Exec(`INSERT INTO descriptions (id, label, kind, sdp, capturedAt)
		VALUES (?, ?, ?, ?, ?)`, id, l, k, sdp, at); err != nil {
		t.Fatalf("insert %s: %v", id, err)
	}
}

func TestList(t *testing.T) {
	rawDB := createTestDB(t)
	defer rawDB.Close()

	now := float64(time.Now().Unix())
	insert(t, rawDB, "d-old", "first call", "offer", "v=0\r\n", now-100)
	insert(t, rawDB, "d-new", "", "answer", "v=0\r\n", now)
	insert(t, rawDB, "d-mid", "retry", "", "v=0\r\n", now-50)

	store := &Store{db: rawDB}

	got, err := store.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d descriptions, want 3", len(got))
	}
	wantIDs := []string{"d-new", "d-mid", "d-old"}
	for i, d := range got {
		if d.ID != wantIDs[i] {
			t.Errorf("got[%d].ID = %q, want %q", i, d.ID, wantIDs[i])
		}
		if d.SDP != "" {
			t.Errorf("got[%d].SDP = %q, want empty", i, d.SDP)
		}
	}
	if got[0].Label != "" || got[0].Kind != "answer" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Kind != "" || got[1].Label != "retry" {
		t.Errorf("got[1] = %+v", got[1])
	}

	limited, err := store.List(1)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "d-new" {
		t.Errorf("List(1) = %+v", limited)
	}
}

func TestListEmpty(t *testing.T) {
	rawDB := createTestDB(t)
	defer rawDB.Close()

	store := &Store{db: rawDB}

	got, err := store.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d descriptions, want 0", len(got))
	}
}

func TestGet(t *testing.T) {
	rawDB := createTestDB(t)
	defer rawDB.Close()

	at := 1700000000.5
	insert(t, rawDB, "d-1", "call", "offer", "v=0\r\ns=-\r\n", at)

	store := &Store{db: rawDB}

	d, err := store.Get("d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.SDP != "v=0\r\ns=-\r\n" {
		t.Errorf("SDP = %q", d.SDP)
	}
	if d.Kind != "offer" || d.Label != "call" {
		t.Errorf("d = %+v", d)
	}
	if want := time.Unix(1700000000, 5e8); !d.CapturedAt.Equal(want) {
		t.Errorf("CapturedAt = %v, want %v", d.CapturedAt, want)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
}

func TestLatest(t *testing.T) {
	rawDB := createTestDB(t)
	defer rawDB.Close()

	store := &Store{db: rawDB}
	if _, err := store.Latest(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest on empty db err = %v, want ErrNotFound", err)
	}

	now := float64(time.Now().Unix())
	insert(t, rawDB, "d-old", "", "", "v=0\r\n", now-200)
	insert(t, rawDB, "d-new", "", "", "v=0\r\ns=new\r\n", now-10)

	d, err := store.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if d.ID != "d-new" {
		t.Errorf("ID = %q, want d-new", d.ID)
	}
}

func TestOpenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captures.db")
	rw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open rw: %v", err)
	}
	if _, err := rw.Exec(schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	insert(t, rw, "d-1", "", "offer", "v=0\r\n", 1)
	rw.Close()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("d-1"); err != nil {
		t.Errorf("Get: %v", err)
	}
	if _, err := store.db.Exec(`DELETE FROM descriptions`); err == nil {
		t.Error("write succeeded on read-only store")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("Open succeeded on missing database")
	}
}
