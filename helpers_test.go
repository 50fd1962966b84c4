package mp3tag_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/wader/osleaktest"
)

// leakChecks checks for leaked goroutines and file descriptors. Create temp
// dirs and fixtures before calling it.
func leakChecks(t *testing.T) func() {
	leakFn := leaktest.Check(t)
	osLeakFn := osleaktest.Check(t)

	return func() {
		leakFn()
		osLeakFn()
	}
}

type frame struct {
	id      string
	payload []byte
}

func text(s string) []byte {
	return append([]byte{0x00}, s...)
}

func comment(lang, s string) []byte {
	p := append([]byte{0x00}, lang...)
	p = append(p, 0x00)
	return append(p, s...)
}

func synchsafe(v int) []byte {
	return []byte{byte(v >> 21 & 0x7F), byte(v >> 14 & 0x7F), byte(v >> 7 & 0x7F), byte(v & 0x7F)}
}

// buildTag creates an ID3v2.3 tag holding frames followed by padding.
func buildTag(padding int, frames ...frame) []byte {
	body := &bytes.Buffer{}
	for _, f := range frames {
		body.WriteString(f.id)
		binary.Write(body, binary.BigEndian, uint32(len(f.payload)))
		body.Write([]byte{0x00, 0x00})
		body.Write(f.payload)
	}
	body.Write(make([]byte, padding))

	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00}
	data = append(data, synchsafe(body.Len())...)
	return append(data, body.Bytes()...)
}

// fakeAudio stands in for MPEG frames after the tag.
var fakeAudio = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x0F, 0xF0, 0x00, 0x01, 0x02, 0x03, 0x04}

func withAudio(tag []byte) []byte {
	data := make([]byte, 0, len(tag)+len(fakeAudio))
	data = append(data, tag...)
	return append(data, fakeAudio...)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
