package mp3tag

import (
	"github.com/chetankittur/mp3tag/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// NotMP3Error is an alias to types.NotMP3Error.
type NotMP3Error = types.NotMP3Error

// NoHeaderError is an alias to types.NoHeaderError.
type NoHeaderError = types.NoHeaderError

// TruncatedFrameError is an alias to types.TruncatedFrameError.
type TruncatedFrameError = types.TruncatedFrameError

// ValueTooLongError is an alias to types.ValueTooLongError.
type ValueTooLongError = types.ValueTooLongError

// TagSizeOverflowError is an alias to types.TagSizeOverflowError.
type TagSizeOverflowError = types.TagSizeOverflowError

// CorruptedFrameError is an alias to types.CorruptedFrameError.
type CorruptedFrameError = types.CorruptedFrameError

// IOError is an alias to types.IOError.
type IOError = types.IOError

// LockedError is an alias to types.LockedError.
type LockedError = types.LockedError

// Warning is an alias to types.Warning.
type Warning = types.Warning
