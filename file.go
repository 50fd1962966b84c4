package mp3tag

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	binutil "github.com/chetankittur/mp3tag/internal/binary"
	"github.com/chetankittur/mp3tag/internal/id3v2"
	"github.com/chetankittur/mp3tag/internal/types"
)

// FrameInfo is an alias to id3v2.FrameInfo.
type FrameInfo = id3v2.FrameInfo

// File is the decoded tag of one MP3 file.
//
// A File is a snapshot: it holds no file handle and stays valid after the
// file changes or disappears.
type File struct {
	// Path to the MP3 file
	Path string

	// File size in bytes
	Size int64

	// Tag header as read from the first 10 bytes
	Header Header

	// Decoded text values
	Tags TagInfo

	// Every scanned frame in file order, recognized or not
	Frames []FrameInfo

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning
}

// View reads the ID3v2 tag of an MP3 file.
//
// The path must end in ".mp3" (any case) and the file must start with an
// ID3v2 header. Every frame in the tag region is scanned; TIT2, TPE1, TALB,
// TYER (or TDRC), COMM and TCON fill the matching Tags field and everything
// else is skipped.
//
// A comment frame that cannot be decoded, or a value longer than its field
// allows, is reported in File.Warnings rather than failing the call.
//
// Example:
//
//	file, err := mp3tag.View("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
func View(path string, opts ...Option) (*File, error) {
	return ViewContext(context.Background(), path, opts...)
}

// ViewContext is View with a context checked before the file is opened.
func ViewContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if !HasMP3Extension(path) {
		return nil, &types.NotMP3Error{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "open"}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &types.IOError{Err: err, Path: path, Op: "stat"}
	}

	sr := binutil.NewSafeReader(f, stat.Size(), path)
	res, err := id3v2.Decode(sr, id3v2.DecodeOptions{Strict: options.strictParsing})
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(res.Warnings) > 0 {
		return nil, fmt.Errorf("%s: strict parsing failed: %s", path, res.Warnings[0].Message)
	}

	file := &File{
		Path:     path,
		Size:     stat.Size(),
		Header:   res.Header,
		Tags:     res.Tags,
		Frames:   res.Frames,
		Warnings: res.Warnings,
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// ViewMany reads the tags of several files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := mp3tag.ViewMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s - %s\n", f.Path, f.Tags.Artist, f.Tags.Title)
//	}
func ViewMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := ViewContext(ctx, path)
			if err != nil {
				return err
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
