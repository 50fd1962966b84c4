package id3v2

import (
	"bytes"
	"errors"
	"fmt"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/types"
)

// FrameInfo describes a scanned frame without its payload.
type FrameInfo struct {
	ID     string
	Size   uint32
	Offset int64
}

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// Strict turns undecodable recognized frames into errors instead of
	// warnings.
	Strict bool
}

// Result is the outcome of decoding one tag.
type Result struct {
	Header   Header
	Tags     types.TagInfo
	Frames   []FrameInfo
	Warnings []types.Warning
}

// Decode reads the header and every frame, mapping TIT2, TPE1, TALB,
// TYER/TDRC, COMM and TCON into a TagInfo. Unknown frames are skipped.
// When a field appears more than once the last frame in file order wins.
func Decode(sr *binutil.SafeReader, opts DecodeOptions) (*Result, error) {
	header, err := ReadHeader(sr)
	if err != nil {
		return nil, err
	}

	res := &Result{Header: header}
	scanner := NewScanner(sr, header)

	for frame, err := range scanner.All() {
		if err != nil {
			return nil, err
		}

		res.Frames = append(res.Frames, FrameInfo{ID: frame.ID, Size: frame.Size, Offset: frame.Offset})

		field, ok := types.FieldForFrame(frame.ID)
		if !ok {
			continue
		}

		var text []byte
		if field == types.FieldComment {
			text, err = commentText(frame.Data)
			if err != nil {
				if opts.Strict {
					return nil, &types.CorruptedFrameError{
						Path:    sr.Path(),
						FrameID: frame.ID,
						Offset:  frame.Offset,
						Reason:  err.Error(),
					}
				}
				res.Tags.Set(field, "")
				res.warn(frame.Offset, "frame %s: %v", frame.ID, err)
				continue
			}
		} else {
			text = frame.Data[1:]
		}

		if res.Tags.Set(field, cString(text)) {
			res.warn(frame.Offset, "%s cut to %d bytes", field, field.MaxLen())
		}
	}

	return res, nil
}

func (r *Result) warn(offset int64, format string, args ...any) {
	r.Warnings = append(r.Warnings, types.Warning{
		Stage:   "metadata",
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	})
}

// commentText returns the comment text of a COMM payload.
// Format: [encoding][language(3)][short description\0][text]
func commentText(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("comment payload of %d bytes has no room for a language code", len(data))
	}

	desc := data[4:]
	nullIdx := bytes.IndexByte(desc, 0)
	if nullIdx < 0 {
		return nil, errors.New("comment descriptor is not terminated")
	}

	return desc[nullIdx+1:], nil
}

// cString returns b up to its first NUL byte.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
