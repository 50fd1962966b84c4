package binary

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chetankittur/mp3tag/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// failingReader returns err for every read.
type failingReader struct {
	err error
}

func (f *failingReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, f.err
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{'I', 'D', '3', 0x03}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	buf := make([]byte, 3)
	if err := sr.ReadAt(buf, 0, "signature"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(buf) != "ID3" {
		t.Errorf("expected ID3, got %q", buf)
	}
	if sr.Size() != 4 || sr.Path() != "test.mp3" {
		t.Errorf("unexpected size/path: %d %s", sr.Size(), sr.Path())
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	tests := []struct {
		name   string
		offset int64
		length int
	}{
		{"beyond end", 10, 2},
		{"negative offset", -1, 1},
		{"crosses end", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.length), tt.offset, "frame header")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var oob *types.OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %T", err)
			}

			msg := err.Error()
			if !strings.Contains(msg, "test.mp3") {
				t.Errorf("error should contain filename: %v", msg)
			}
			if !strings.Contains(msg, "frame header") {
				t.Errorf("error should contain context: %v", msg)
			}
		})
	}
}

func TestSafeReader_ReadAt_ShortSource(t *testing.T) {
	// Declared size is larger than what the source actually holds.
	data := []byte{0x01, 0x02}
	sr := NewSafeReader(&mockReader{data: data}, 10, "short.mp3")

	err := sr.ReadAt(make([]byte, 4), 0, "payload")
	var oob *types.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *OutOfBoundsError for short source, got %v", err)
	}
}

func TestSafeReader_ReadAt_IOError(t *testing.T) {
	cause := errors.New("disk on fire")
	sr := NewSafeReader(&failingReader{err: cause}, 100, "broken.mp3")

	err := sr.ReadAt(make([]byte, 4), 0, "header")

	var ioErr *types.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Error("IOError should wrap the underlying error")
	}
}

func TestRead_Values(t *testing.T) {
	data := []byte{0x42, 0x12, 0x34, 0x00, 0x00, 0x00, 0x06}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	u8, err := Read[uint8](sr, 0, "uint8")
	if err != nil || u8 != 0x42 {
		t.Errorf("Read[uint8] = 0x%02x, %v", u8, err)
	}

	u16, err := Read[uint16](sr, 1, "uint16")
	if err != nil || u16 != 0x1234 {
		t.Errorf("Read[uint16] = 0x%04x, %v", u16, err)
	}

	u32, err := Read[uint32](sr, 3, "frame size")
	if err != nil || u32 != 6 {
		t.Errorf("Read[uint32] = %d, %v", u32, err)
	}

	if _, err := Read[uint32](sr, 5, "frame size"); err == nil {
		t.Error("expected error reading uint32 past end")
	}
}

func TestReader_Sequential(t *testing.T) {
	data := []byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 'H', 'i'}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")
	r := NewReader(sr, 0)

	id, err := r.ReadString(4, "frame id")
	if err != nil || id != "TIT2" {
		t.Fatalf("ReadString = %q, %v", id, err)
	}

	size, err := ReadValue[uint32](r, "frame size")
	if err != nil || size != 6 {
		t.Fatalf("ReadValue[uint32] = %d, %v", size, err)
	}

	flags, err := ReadValue[uint16](r, "frame flags")
	if err != nil || flags != 0 {
		t.Fatalf("ReadValue[uint16] = %d, %v", flags, err)
	}

	payload, err := r.ReadBytes(3, "payload")
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(payload) != "\x00Hi" {
		t.Errorf("payload = %q", payload)
	}

	if _, err := r.ReadBytes(1, "beyond"); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestChainReader_FrameHeader(t *testing.T) {
	data := []byte{'T', 'P', 'E', '1', 0x00, 0x00, 0x00, 0x0A, 0x40, 0x00}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")
	cr := NewChainReader(NewReader(sr, 0))

	id := cr.String(4, "frame id")
	size := ReadChained[uint32](cr, "frame size")
	flags := ReadChained[uint16](cr, "frame flags")

	if err := cr.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "TPE1" || size != 10 || flags != 0x4000 {
		t.Errorf("unexpected values: %q %d 0x%04x", id, size, flags)
	}
}

func TestChainReader_ErrorAccumulation(t *testing.T) {
	data := []byte{'T', 'C', 'O', 'N', 0x00, 0x00}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")
	cr := NewChainReader(NewReader(sr, 0))

	_ = cr.String(4, "frame id")
	_ = ReadChained[uint32](cr, "frame size") // out of bounds

	if cr.Error() == nil {
		t.Fatal("expected error, got nil")
	}
	first := cr.Error()

	// Once an error occurs, subsequent reads do not execute.
	if v := ReadChained[uint8](cr, "next"); v != 0 {
		t.Errorf("expected zero value after error, got %d", v)
	}
	if s := cr.String(1, "next"); s != "" {
		t.Errorf("expected empty string after error, got %q", s)
	}
	if cr.Error() != first {
		t.Error("first error should persist")
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1024*1024)
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(data[i:], uint32(i))
	}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "bench.mp3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := int64((i % (len(data) / 4)) * 4)
		_, _ = Read[uint32](sr, offset, "benchmark")
	}
}
