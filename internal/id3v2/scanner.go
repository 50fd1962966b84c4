package id3v2

import (
	"errors"
	"fmt"
	"iter"
	"math"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/types"
)

// Frame represents a single ID3v2 frame
type Frame struct {
	ID     string // 4-character frame ID (e.g., "TIT2", "COMM")
	Size   uint32 // Payload size (excluding the 10-byte frame header)
	Flags  uint16 // Ignored
	Offset int64  // File offset of the frame header
	Data   []byte // Payload, allocated for this frame only
}

// PayloadOffset returns the file offset of the first payload byte.
func (f Frame) PayloadOffset() int64 {
	return f.Offset + HeaderSize
}

// Scanner walks the frames of one tag region.
type Scanner struct {
	sr     *binutil.SafeReader
	header Header
	end    int64
}

// NewScanner creates a scanner over the region declared by header.
func NewScanner(sr *binutil.SafeReader, header Header) *Scanner {
	return &Scanner{
		sr:     sr,
		header: header,
		end:    HeaderSize,
	}
}

// End returns the offset just past the last frame yielded so far.
// After a complete scan this is where a new frame is appended.
func (s *Scanner) End() int64 {
	return s.end
}

// All returns the frames of the tag region in file order.
//
// The sequence ends without error at padding (a zero id byte), at a frame
// with size zero, or when the region is exhausted. A frame whose header or
// payload would cross the region end, or that the file ends inside, yields a
// *types.TruncatedFrameError and ends the sequence.
//
// Example:
//
//	for frame, err := range scanner.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(frame.ID, frame.Size)
//	}
func (s *Scanner) All() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		regionEnd := s.header.RegionEnd()
		offset := int64(HeaderSize)
		s.end = offset

		for offset < regionEnd {
			frame, done, err := s.next(offset, regionEnd)
			if err != nil {
				yield(Frame{}, err)
				return
			}
			if done {
				return
			}

			offset += HeaderSize + int64(frame.Size)
			s.end = offset

			if !yield(frame, nil) {
				return
			}
		}
	}
}

// next reads the frame at offset. done reports a normal end of frames.
func (s *Scanner) next(offset, regionEnd int64) (frame Frame, done bool, err error) {
	remaining := regionEnd - offset
	if remaining < 4 {
		return Frame{}, true, nil
	}

	first, err := binutil.Read[uint8](s.sr, offset, "frame id")
	if err != nil {
		return Frame{}, false, s.truncated(err, "", offset, 0, remaining)
	}
	if first == 0 {
		return Frame{}, true, nil
	}

	if remaining < HeaderSize {
		return Frame{}, false, &types.TruncatedFrameError{
			Path:      s.sr.Path(),
			Offset:    offset,
			Remaining: remaining,
		}
	}

	cr := binutil.NewChainReader(binutil.NewReader(s.sr, offset))
	id := cr.String(4, "frame id")
	size := binutil.ReadChained[uint32](cr, "frame size")
	flags := binutil.ReadChained[uint16](cr, "frame flags")
	if err := cr.Error(); err != nil {
		return Frame{}, false, s.truncated(err, "", offset, 0, remaining)
	}

	if size == 0 || size > math.MaxInt32 {
		return Frame{}, true, nil
	}

	if HeaderSize+int64(size) > remaining {
		return Frame{}, false, &types.TruncatedFrameError{
			Path:      s.sr.Path(),
			FrameID:   id,
			Offset:    offset,
			Size:      size,
			Remaining: remaining,
		}
	}

	data, err := cr.ReadBytes(int(size), fmt.Sprintf("frame %s data", id))
	if err != nil {
		return Frame{}, false, s.truncated(err, id, offset, size, remaining)
	}

	return Frame{
		ID:     id,
		Size:   size,
		Flags:  flags,
		Offset: offset,
		Data:   data,
	}, false, nil
}

// truncated converts a read past the end of the file into a
// *types.TruncatedFrameError. Other errors pass through.
func (s *Scanner) truncated(err error, id string, offset int64, size uint32, remaining int64) error {
	var oob *types.OutOfBoundsError
	if !errors.As(err, &oob) {
		return err
	}
	if left := max(s.sr.Size()-offset, 0); left < remaining {
		remaining = left
	}
	return &types.TruncatedFrameError{
		Path:      s.sr.Path(),
		FrameID:   id,
		Offset:    offset,
		Size:      size,
		Remaining: remaining,
	}
}
