// Package id3v2 implements the ID3v2 tag codec: header validation, frame
// scanning, decoding of the six common text fields, and in-place or append
// edits that keep the header size consistent.
package id3v2

import (
	"errors"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/types"
)

const (
	// Magic is the tag signature at offset 0.
	Magic = "ID3"

	// HeaderSize is the size of the tag header and of every frame header.
	HeaderSize = 10

	// SizeOffset is the offset of the synchsafe tag size in the header.
	SizeOffset = 6
)

// Header represents an ID3v2 tag header
type Header struct {
	Version  byte // Major version, not validated
	Revision byte // Minor version
	Flags    byte // Ignored
	Size     uint32
}

// RegionEnd returns the file offset just past the tag region.
func (h Header) RegionEnd() int64 {
	return HeaderSize + int64(h.Size)
}

// ReadHeader reads and validates the 10-byte header at offset 0.
//
// A file shorter than the header or without the "ID3" signature fails with
// *types.NoHeaderError. I/O failures are returned as *types.IOError.
func ReadHeader(sr *binutil.SafeReader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if err := sr.ReadAt(buf, 0, "ID3v2 header"); err != nil {
		var oob *types.OutOfBoundsError
		if errors.As(err, &oob) {
			return Header{}, &types.NoHeaderError{
				Path:   sr.Path(),
				Reason: "file shorter than the 10-byte header",
			}
		}
		return Header{}, err
	}

	if string(buf[0:3]) != Magic {
		return Header{}, &types.NoHeaderError{
			Path:   sr.Path(),
			Reason: "missing ID3 signature",
		}
	}

	return Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     DecodeSynchsafe(buf[SizeOffset:HeaderSize]),
	}, nil
}
