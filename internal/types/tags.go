// Package types provides the data structures shared by the ID3v2 codec and
// the public API: decoded tag values, fields, errors and warnings.
package types

import (
	"fmt"
	"iter"
	"strings"
)

// Field identifies one of the six tag values the codec understands.
type Field int

const (
	// FieldTitle is the song title (TIT2).
	FieldTitle Field = iota
	// FieldArtist is the lead performer (TPE1).
	FieldArtist
	// FieldAlbum is the album name (TALB).
	FieldAlbum
	// FieldYear is the release year (TYER, or TDRC when reading).
	FieldYear
	// FieldComment is the comment text (COMM).
	FieldComment
	// FieldGenre is the content type (TCON).
	FieldGenre
)

// Fields lists every field in display order.
var Fields = []Field{FieldTitle, FieldArtist, FieldAlbum, FieldYear, FieldGenre, FieldComment}

type fieldSpec struct {
	name     string
	frameID  string
	selector string
	maxLen   int
}

var fieldSpecs = map[Field]fieldSpec{
	FieldTitle:   {"Title", "TIT2", "t", 99},
	FieldArtist:  {"Artist", "TPE1", "a", 99},
	FieldAlbum:   {"Album", "TALB", "l", 99},
	FieldYear:    {"Year", "TYER", "y", 9},
	FieldComment: {"Comment", "COMM", "c", 199},
	FieldGenre:   {"Genre", "TCON", "g", 49},
}

// String returns the display name of the field.
func (f Field) String() string {
	if s, ok := fieldSpecs[f]; ok {
		return s.name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// FrameID returns the frame identifier written when editing this field.
func (f Field) FrameID() string {
	return fieldSpecs[f].frameID
}

// Selector returns the single-letter command-line selector for the field.
func (f Field) Selector() string {
	return fieldSpecs[f].selector
}

// MaxLen returns the maximum number of bytes kept when decoding the field.
func (f Field) MaxLen() int {
	return fieldSpecs[f].maxLen
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// ParseSelector maps a selector such as "t" or "-t" (any case) to a field.
func ParseSelector(s string) (Field, error) {
	key := strings.ToLower(strings.TrimPrefix(s, "-"))
	for f, spec := range fieldSpecs {
		if spec.selector == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("invalid tag option %q", s)
}

// FieldForFrame returns the field a frame id decodes into.
// TDRC (ID3v2.4 recording time) decodes into FieldYear alongside TYER.
func FieldForFrame(id string) (Field, bool) {
	if id == "TDRC" {
		return FieldYear, true
	}
	for f, spec := range fieldSpecs {
		if spec.frameID == id {
			return f, true
		}
	}
	return 0, false
}

// TagInfo is the decoded view of a tag: six bounded raw-text fields.
//
// TagInfo owns its data and stays valid after the source file is closed.
// Fields not present in the tag are empty.
type TagInfo struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	Genre   string
}

// Get returns the value of a field.
func (t *TagInfo) Get(f Field) string {
	if p := t.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set stores value into a field, cutting it to the field's maximum length.
// It reports whether the value was cut.
func (t *TagInfo) Set(f Field, value string) (truncated bool) {
	p := t.ptr(f)
	if p == nil {
		return false
	}
	if limit := f.MaxLen(); len(value) > limit {
		value = value[:limit]
		truncated = true
	}
	*p = value
	return truncated
}

// All returns an iterator over every field and its value in display order.
//
// Example:
//
//	for field, value := range file.Tags.All() {
//		fmt.Printf("%-9s : %s\n", field, value)
//	}
func (t *TagInfo) All() iter.Seq2[Field, string] {
	return func(yield func(Field, string) bool) {
		for _, f := range Fields {
			if !yield(f, t.Get(f)) {
				return
			}
		}
	}
}

// IsEmpty reports whether no field carries a value.
func (t *TagInfo) IsEmpty() bool {
	for _, v := range t.All() {
		if v != "" {
			return false
		}
	}
	return true
}

func (t *TagInfo) ptr(f Field) *string {
	switch f {
	case FieldTitle:
		return &t.Title
	case FieldArtist:
		return &t.Artist
	case FieldAlbum:
		return &t.Album
	case FieldYear:
		return &t.Year
	case FieldComment:
		return &t.Comment
	case FieldGenre:
		return &t.Genre
	}
	return nil
}
