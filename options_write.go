package mp3tag

import (
	"io"
	"log"
)

// EditOption configures behavior when editing a tag.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	res, err := mp3tag.Edit("song.mp3", mp3tag.FieldTitle, "Uprising",
//	    mp3tag.WithBackup(".bak"),
//	    mp3tag.WithValidation(),
//	)
type EditOption func(*editOptions)

// editOptions holds configuration for editing files.
type editOptions struct {
	backupSuffix    string      // Suffix for backup file (e.g., ".bak")
	validate        bool        // Re-read after write to verify
	preserveModTime bool        // Keep original modification time
	lock            bool        // Take an advisory lock while editing
	logger          *log.Logger // Debug output, never nil
}

// defaultEditOptions returns the default configuration for editing.
func defaultEditOptions() *editOptions {
	return &editOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
		lock:            true,
		logger:          log.New(io.Discard, "", 0),
	}
}

// WithBackup keeps a copy of the original file when an edit has to rewrite
// it.
//
// Appending a frame grows the tag, so the file is rewritten through a
// temporary file. With this option the original is first renamed to the
// path with suffix appended, so WithBackup(".bak") leaves "song.mp3.bak"
// next to the edited "song.mp3". An existing backup is overwritten.
//
// In-place updates change only the frame payload and never create a backup.
//
// Example:
//
//	res, err := mp3tag.Edit(path, mp3tag.FieldGenre, "Rock", mp3tag.WithBackup(".bak"))
func WithBackup(suffix string) EditOption {
	return func(o *editOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify the new value.
//
// After the edit, the tag is decoded again and the edited field is compared
// with the value that was written. This adds overhead but provides
// confidence that the edit succeeded.
func WithValidation() EditOption {
	return func(o *editOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, editing updates the file's modification time to the current
// time. This option restores the original modification time afterwards.
func WithPreserveModTime() EditOption {
	return func(o *editOptions) {
		o.preserveModTime = true
	}
}

// WithoutLock skips the advisory lock Edit normally takes on the file.
//
// By default, Edit fails with *LockedError when another editor holds the
// lock. The lock only serializes cooperating editors.
func WithoutLock() EditOption {
	return func(o *editOptions) {
		o.lock = false
	}
}

// WithLogger sends debug output about the edit (chosen frame, offsets, tag
// sizes) to l. A nil logger disables output.
//
// Example:
//
//	debugLog := log.New(os.Stderr, "DEBUG: ", log.Ltime)
//	res, err := mp3tag.Edit(path, mp3tag.FieldYear, "2009", mp3tag.WithLogger(debugLog))
func WithLogger(l *log.Logger) EditOption {
	return func(o *editOptions) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		o.logger = l
	}
}
