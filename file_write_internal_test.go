package mp3tag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chetankittur/mp3tag/internal/types"
)

func TestLockCurrent_ReplacedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	tag := []byte{
		'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x11,
		'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00,
		0x00, 'H', 'i', '!', 0x00, 0x00, 0x00,
	}
	if err := os.WriteFile(path, tag, 0o644); err != nil {
		t.Fatal(err)
	}

	// Opened before an append edit swaps the file out.
	stale, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer stale.Close()

	res, err := Edit(path, FieldArtist, "Muse")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if res.Outcome != OutcomeAppended {
		t.Fatalf("Outcome = %v, want appended", res.Outcome)
	}

	if _, err := lockCurrent(stale, path); err == nil {
		t.Fatal("locked a file that no longer lives at its path")
	} else {
		var locked *types.LockedError
		if !errors.As(err, &locked) {
			t.Fatalf("expected *LockedError, got %T: %v", err, err)
		}
	}

	// The lock was dropped, and the file now at path locks normally.
	current, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer current.Close()

	l, err := lockCurrent(current, path)
	if err != nil {
		t.Fatalf("lockCurrent on the current file failed: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("Release failed: %v", err)
	}
}
