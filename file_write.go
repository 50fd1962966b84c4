package mp3tag

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/id3v2"
	"github.com/chetankittur/mp3tag/internal/lock"
	"github.com/chetankittur/mp3tag/internal/types"
)

// Outcome is an alias to id3v2.Outcome.
type Outcome = id3v2.Outcome

// Re-export outcome constants.
const (
	OutcomeUpdated  = id3v2.OutcomeUpdated
	OutcomeAppended = id3v2.OutcomeAppended
)

// EditResult describes a completed edit.
type EditResult struct {
	Field   Field
	FrameID string
	Value   string
	Outcome Outcome

	// Offset of the frame header that was rewritten or inserted
	Offset int64

	OldTagSize uint32
	NewTagSize uint32
}

// Edit stores value in field of the file's ID3v2 tag.
//
// If the tag already has a frame for the field, its payload is overwritten
// in place: the value must fit the existing frame size or
// *ValueTooLongError is returned. The header and file length do not change.
//
// Otherwise a new frame is appended after the last frame and the tag size in
// the header grows by the frame length. Because this shifts everything
// after the tag, the file is rewritten atomically: a temporary file is
// written, synced and renamed over the original.
//
// Every check happens before the first write, so a failed edit leaves the
// file byte-identical. Symlinks are followed: the link stays a link and its
// target is edited.
//
// Example:
//
//	res, err := mp3tag.Edit("song.mp3", mp3tag.FieldTitle, "Uprising")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s %s successfully: %s\n", res.FrameID, res.Outcome, res.Value)
func Edit(path string, field Field, value string, opts ...EditOption) (*EditResult, error) {
	return EditContext(context.Background(), path, field, value, opts...)
}

// EditContext is Edit with a context checked before the file is opened and
// again before the first write.
func EditContext(ctx context.Context, path string, field Field, value string, opts ...EditOption) (*EditResult, error) { //nolint:gocyclo // Edit steps are sequential
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := defaultEditOptions()
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger

	if !HasMP3Extension(path) {
		return nil, &types.NotMP3Error{Path: path}
	}

	// The append path renames over the file, so it must act on the link target.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "resolve"}
	}

	f, err := os.OpenFile(target, os.O_RDWR, 0)
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "open"}
	}
	defer f.Close()

	if options.lock {
		l, err := lockCurrent(f, target)
		if err != nil {
			return nil, err
		}
		defer l.Release() //nolint:errcheck // Closing the file drops the lock anyway
	}

	info, err := f.Stat()
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "stat"}
	}

	sr := binutil.NewSafeReader(f, info.Size(), path)
	plan, err := id3v2.PlanEdit(sr, field, value)
	if err != nil {
		return nil, err
	}
	logger.Printf("%s: %s frame %s at offset %d, tag size %d -> %d",
		path, plan.Outcome, plan.FrameID, plan.Offset, plan.OldTagSize, plan.NewTagSize)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch plan.Outcome {
	case id3v2.OutcomeUpdated:
		if err := id3v2.ApplyInPlace(f, plan); err != nil {
			return nil, &types.IOError{Err: err, Path: path, Op: "write frame"}
		}
		if err := f.Sync(); err != nil {
			return nil, &types.IOError{Err: err, Path: path, Op: "sync"}
		}
		if options.preserveModTime {
			_ = os.Chtimes(target, info.ModTime(), info.ModTime()) //nolint:errcheck // Non-fatal: frame was written successfully
		}
	case id3v2.OutcomeAppended:
		if err := rewriteWithFrame(f, info, target, plan, options); err != nil {
			return nil, err
		}
	}

	if options.validate {
		if err := validateEdit(path, field, value); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	return &EditResult{
		Field:      plan.Field,
		FrameID:    plan.FrameID,
		Value:      value,
		Outcome:    plan.Outcome,
		Offset:     plan.Offset,
		OldTagSize: plan.OldTagSize,
		NewTagSize: plan.NewTagSize,
	}, nil
}

// lockCurrent locks f and checks that path still names the locked file. An
// append edit elsewhere replaces the file by rename, leaving f on the old copy.
func lockCurrent(f *os.File, path string) (*lock.Lock, error) {
	l, err := lock.Acquire(f)
	if errors.Is(err, lock.ErrLocked) {
		return nil, &types.LockedError{Path: path}
	}
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "lock"}
	}

	held, err := f.Stat()
	if err != nil {
		_ = l.Release() //nolint:errcheck // Best effort cleanup
		return nil, &types.IOError{Err: err, Path: path, Op: "stat"}
	}
	current, err := os.Stat(path)
	if err != nil {
		_ = l.Release() //nolint:errcheck // Best effort cleanup
		return nil, &types.IOError{Err: err, Path: path, Op: "stat"}
	}
	if !os.SameFile(held, current) {
		_ = l.Release() //nolint:errcheck // Best effort cleanup
		return nil, &types.LockedError{Path: path}
	}

	return l, nil
}

// rewriteWithFrame writes a copy of src with the planned frame inserted to a
// temporary file next to path, then renames it over path.
func rewriteWithFrame(src *os.File, info os.FileInfo, path string, plan *id3v2.Plan, options *editOptions) error { //nolint:gocyclo // Atomic file operations require sequential steps
	logger := options.logger

	// Create temp file in same directory as output (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".mp3tag-*.tmp")
	if err != nil {
		return &types.IOError{Err: err, Path: path, Op: "create temp file"}
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := id3v2.WriteAppended(tempFile, src, info.Size(), plan); err != nil {
		return &types.IOError{Err: err, Path: tempPath, Op: "write"}
	}

	if err := tempFile.Chmod(info.Mode().Perm()); err != nil {
		return &types.IOError{Err: err, Path: tempPath, Op: "chmod"}
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return &types.IOError{Err: err, Path: tempPath, Op: "sync"}
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return &types.IOError{Err: err, Path: tempPath, Op: "close"}
	}

	if options.backupSuffix != "" {
		backupPath := path + options.backupSuffix
		if err := os.Rename(path, backupPath); err != nil {
			return &types.IOError{Err: err, Path: backupPath, Op: "create backup"}
		}
		logger.Printf("%s: original kept as %s", path, backupPath)
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, path); err != nil {
		return &types.IOError{Err: err, Path: path, Op: "rename temp file"}
	}

	success = true
	logger.Printf("%s: rewrote %d bytes with %s inserted", path, info.Size()+id3v2.HeaderSize+int64(len(plan.Payload)), plan.FrameID)

	if options.preserveModTime {
		_ = os.Chtimes(path, info.ModTime(), info.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	return nil
}

// validateEdit re-reads the tag and compares the edited field.
func validateEdit(path string, field Field, value string) error {
	written, err := View(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	var want TagInfo
	want.Set(field, value)
	if got := written.Tags.Get(field); got != want.Get(field) {
		return fmt.Errorf("%s mismatch: got %q, want %q", field, got, want.Get(field))
	}

	return nil
}
