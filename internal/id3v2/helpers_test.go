package id3v2

import (
	"bytes"
	"encoding/binary"
	"testing"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
)

// testFrame is one frame of a fixture tag.
type testFrame struct {
	id      string
	payload []byte
}

// text builds a text frame payload: encoding byte 0 followed by s.
func text(s string) []byte {
	return append([]byte{0x00}, s...)
}

// comment builds a COMM payload with language and descriptor.
func comment(lang, desc, s string) []byte {
	p := []byte{0x00}
	p = append(p, lang...)
	p = append(p, desc...)
	p = append(p, 0x00)
	return append(p, s...)
}

// buildTag creates a tag with the given frames followed by padding zero
// bytes. The header size covers frames and padding.
func buildTag(padding int, frames ...testFrame) []byte {
	body := &bytes.Buffer{}
	for _, f := range frames {
		body.WriteString(f.id)
		binary.Write(body, binary.BigEndian, uint32(len(f.payload)))
		body.Write([]byte{0x00, 0x00})
		body.Write(f.payload)
	}
	body.Write(make([]byte, padding))

	size := EncodeSynchsafe(uint32(body.Len()))
	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00}
	data = append(data, size[:]...)
	return append(data, body.Bytes()...)
}

// extendRegion appends raw bytes to a tag built by buildTag and grows the
// header size to cover them.
func extendRegion(tag []byte, extra ...byte) []byte {
	tag = append(tag, extra...)
	size := EncodeSynchsafe(uint32(len(tag) - HeaderSize))
	copy(tag[SizeOffset:], size[:])
	return tag
}

// withAudio appends fake audio bytes after the tag.
func withAudio(tag []byte) []byte {
	return append(tag, 0xFF, 0xFB, 0x90, 0x64, 0x01, 0x02, 0x03, 0x04)
}

func safeReader(data []byte) *binutil.SafeReader {
	return binutil.NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")
}

// memFile is an in-memory io.WriterAt.
type memFile struct {
	data []byte
}

func (m *memFile) WriteAt(p []byte, off int64) (int, error) {
	if end := int(off) + len(p); end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	return copy(m.data[off:], p), nil
}

func mustDecode(t *testing.T, data []byte) *Result {
	t.Helper()
	res, err := Decode(safeReader(data), DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return res
}
