package mp3tag

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/id3v2"
	"github.com/chetankittur/mp3tag/internal/types"
)

// Header is an alias to id3v2.Header.
type Header = id3v2.Header

// Extension is the file extension every path must carry.
const Extension = ".mp3"

// HasMP3Extension reports whether path ends in ".mp3", ignoring case.
func HasMP3Extension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// CheckPath verifies that path names an MP3 file that starts with an ID3v2
// tag header, without decoding any frames.
//
// Returns *NotMP3Error for a wrong extension, *NoHeaderError when the file
// is shorter than a header or lacks the "ID3" signature, and *IOError when
// the file cannot be read.
func CheckPath(path string) (Header, error) {
	return checkPath(context.Background(), path)
}

func checkPath(ctx context.Context, path string) (Header, error) {
	if err := ctx.Err(); err != nil {
		return Header{}, err
	}
	if !HasMP3Extension(path) {
		return Header{}, &types.NotMP3Error{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return Header{}, &types.IOError{Err: err, Path: path, Op: "open"}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return Header{}, &types.IOError{Err: err, Path: path, Op: "stat"}
	}

	return id3v2.ReadHeader(binutil.NewSafeReader(f, stat.Size(), path))
}
