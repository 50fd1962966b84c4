package id3v2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/types"
)

// Outcome is the kind of change an edit makes.
type Outcome int

const (
	// OutcomeUpdated rewrites the payload of an existing frame in place.
	OutcomeUpdated Outcome = iota + 1
	// OutcomeAppended inserts a new frame after the last one and grows the tag.
	OutcomeAppended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeAppended:
		return "added"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// DefaultLanguage is the language code of newly appended comment frames.
const DefaultLanguage = "eng"

// Plan is a fully validated edit. Nothing has been written when a Plan
// exists; applying it cannot fail on capacity or size limits.
type Plan struct {
	Field   types.Field
	FrameID string
	Outcome Outcome

	// Offset of the frame header: the matched frame for OutcomeUpdated,
	// the insertion point for OutcomeAppended.
	Offset int64

	// Payload bytes to write. For OutcomeUpdated it is zero-padded to the
	// existing frame size.
	Payload []byte

	OldTagSize uint32
	NewTagSize uint32
}

// PlanEdit scans the tag and decides how to store value in field.
//
// If a frame with the field's id exists, the new payload must fit its
// current size or *types.ValueTooLongError is returned. Otherwise a new frame
// is planned after the last frame, failing with *types.TagSizeOverflowError
// if the grown tag no longer fits a synchsafe size.
//
// Text payloads need len(value)+1 bytes. Comment payloads need len(value)+5:
// encoding, language and an empty descriptor come before the text.
func PlanEdit(sr *binutil.SafeReader, field types.Field, value string) (*Plan, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("unknown field %v", field)
	}
	if bytes.IndexByte([]byte(value), 0) >= 0 {
		return nil, errors.New("value contains a NUL byte")
	}

	header, err := ReadHeader(sr)
	if err != nil {
		return nil, err
	}

	id := field.FrameID()
	scanner := NewScanner(sr, header)

	for frame, err := range scanner.All() {
		if err != nil {
			return nil, err
		}
		if frame.ID != id {
			continue
		}

		var buf bytes.Buffer
		sw := binutil.NewSafeWriter(&buf)
		if err := encodePayload(sw, field, value, frame.Data); err != nil {
			return nil, err
		}
		if sw.Offset() > int64(frame.Size) {
			return nil, &types.ValueTooLongError{
				Path:     sr.Path(),
				FrameID:  id,
				Length:   int(sw.Offset()),
				Capacity: frame.Size,
			}
		}
		if err := sw.WriteZeros(int(int64(frame.Size) - sw.Offset())); err != nil {
			return nil, err
		}

		return &Plan{
			Field:      field,
			FrameID:    id,
			Outcome:    OutcomeUpdated,
			Offset:     frame.Offset,
			Payload:    buf.Bytes(),
			OldTagSize: header.Size,
			NewTagSize: header.Size,
		}, nil
	}

	var buf bytes.Buffer
	if err := encodePayload(binutil.NewSafeWriter(&buf), field, value, nil); err != nil {
		return nil, err
	}
	payload := buf.Bytes()
	newSize := uint64(header.Size) + HeaderSize + uint64(len(payload))
	if newSize > MaxSynchsafe {
		return nil, &types.TagSizeOverflowError{Path: sr.Path(), Size: newSize}
	}

	return &Plan{
		Field:      field,
		FrameID:    id,
		Outcome:    OutcomeAppended,
		Offset:     scanner.End(),
		Payload:    payload,
		OldTagSize: header.Size,
		NewTagSize: uint32(newSize),
	}, nil
}

// encodePayload writes value for field to sw. Text frames get a leading
// encoding byte; comment frames also carry a language code and an empty
// descriptor. existing is the payload of the frame being replaced, if any.
func encodePayload(sw *binutil.SafeWriter, field types.Field, value string, existing []byte) error {
	if err := binutil.Write[uint8](sw, 0); err != nil { // ISO-8859-1
		return err
	}
	if field == types.FieldComment {
		lang := DefaultLanguage
		if len(existing) >= 4 {
			lang = string(existing[1:4])
		}
		if err := sw.WriteString(lang); err != nil {
			return err
		}
		if err := binutil.Write[uint8](sw, 0); err != nil { // empty descriptor
			return err
		}
	}
	return sw.WriteString(value)
}

// EncodeFrame returns the 10-byte frame header followed by payload.
func EncodeFrame(id string, payload []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, id...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, 0, 0) // flags
	return append(out, payload...)
}

// ApplyInPlace overwrites the payload of the frame an OutcomeUpdated plan
// matched. The header and file length are unchanged.
func ApplyInPlace(w io.WriterAt, p *Plan) error {
	if p.Outcome != OutcomeUpdated {
		return fmt.Errorf("plan for %s is %s, not an in-place update", p.FrameID, p.Outcome)
	}
	n, err := w.WriteAt(p.Payload, p.Offset+HeaderSize)
	if err == nil && n < len(p.Payload) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteAppended writes a copy of src to w with the planned frame inserted at
// the plan offset and the header size field rewritten. Everything after the
// insertion point (padding, audio) follows the new frame unchanged.
func WriteAppended(w io.Writer, src io.ReaderAt, srcSize int64, p *Plan) error {
	if p.Outcome != OutcomeAppended {
		return fmt.Errorf("plan for %s is %s, not an append", p.FrameID, p.Outcome)
	}
	if p.Offset < HeaderSize || p.Offset > srcSize {
		return fmt.Errorf("insertion offset %d outside file of %d bytes", p.Offset, srcSize)
	}

	sw := binutil.NewSafeWriter(w)

	copySection := func(from, to int64) error {
		_, err := io.Copy(w, io.NewSectionReader(src, from, to-from))
		return err
	}

	if err := copySection(0, SizeOffset); err != nil {
		return fmt.Errorf("copy header: %w", err)
	}
	size := EncodeSynchsafe(p.NewTagSize)
	if err := sw.WriteBytes(size[:]); err != nil {
		return fmt.Errorf("write tag size: %w", err)
	}
	if err := copySection(HeaderSize, p.Offset); err != nil {
		return fmt.Errorf("copy frames: %w", err)
	}
	if err := sw.WriteBytes(EncodeFrame(p.FrameID, p.Payload)); err != nil {
		return fmt.Errorf("write frame %s: %w", p.FrameID, err)
	}
	if err := copySection(p.Offset, srcSize); err != nil {
		return fmt.Errorf("copy remainder: %w", err)
	}

	return nil
}
