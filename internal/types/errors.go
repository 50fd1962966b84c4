package types

import "fmt"

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// NotMP3Error is returned when the path does not carry the .mp3 extension.
type NotMP3Error struct {
	Path string
}

func (e *NotMP3Error) Error() string {
	return fmt.Sprintf("%s is not an MP3 file", e.Path)
}

// NoHeaderError is returned when the file does not start with a complete
// ID3v2 header.
type NoHeaderError struct {
	Path   string
	Reason string
}

func (e *NoHeaderError) Error() string {
	return fmt.Sprintf("%s: no ID3v2 tag found: %s", e.Path, e.Reason)
}

// TruncatedFrameError is returned when a frame does not fit in what is left
// of the tag region, or the file ends before the frame does.
type TruncatedFrameError struct {
	Path      string
	FrameID   string
	Offset    int64  // Offset of the frame header
	Size      uint32 // Declared payload size (0 if the header itself was cut)
	Remaining int64  // Bytes left in the tag region at Offset
}

func (e *TruncatedFrameError) Error() string {
	if e.FrameID == "" {
		return fmt.Sprintf("%s: truncated frame header at offset %d (%d bytes left in tag)",
			e.Path, e.Offset, e.Remaining)
	}
	return fmt.Sprintf("%s: frame %s at offset %d declares %d bytes but only %d bytes are left in tag",
		e.Path, e.FrameID, e.Offset, e.Size, e.Remaining)
}

// ValueTooLongError is returned when a new value does not fit in the payload
// of the existing frame.
type ValueTooLongError struct {
	Path     string
	FrameID  string
	Length   int    // Bytes needed for the new payload
	Capacity uint32 // Payload size of the existing frame
}

func (e *ValueTooLongError) Error() string {
	return fmt.Sprintf("%s: new value too long for frame %s: needs %d bytes, frame holds %d",
		e.Path, e.FrameID, e.Length, e.Capacity)
}

// TagSizeOverflowError is returned when an append would grow the tag region
// beyond what a synchsafe size can express.
type TagSizeOverflowError struct {
	Path string
	Size uint64
}

func (e *TagSizeOverflowError) Error() string {
	return fmt.Sprintf("%s: tag size %d exceeds synchsafe limit %d", e.Path, e.Size, 1<<28-1)
}

// CorruptedFrameError is returned in strict mode when a recognized frame has
// a payload that cannot be decoded.
type CorruptedFrameError struct {
	Path    string
	FrameID string
	Reason  string
	Offset  int64
}

func (e *CorruptedFrameError) Error() string {
	return fmt.Sprintf("%s: corrupted frame %s at offset %d: %s", e.Path, e.FrameID, e.Offset, e.Reason)
}

// IOError wraps a failure at the storage boundary (open, read, write, sync).
type IOError struct {
	Err  error
	Path string
	Op   string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LockedError is returned when another editor holds the file lock.
type LockedError struct {
	Path string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s: file is locked by another editor", e.Path)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A comment frame without a descriptor terminator
//   - A value cut to its field's maximum length
//
// Warnings are collected in File.Warnings during decoding.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "metadata", "header"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
