package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/chetankittur/mp3tag"
)

const rule = "------------------------------------------------------------"

// labels for the view, in display order.
var labels = []struct {
	field mp3tag.Field
	label string
}{
	{mp3tag.FieldTitle, "Title"},
	{mp3tag.FieldArtist, "Artist"},
	{mp3tag.FieldAlbum, "Album"},
	{mp3tag.FieldYear, "Year"},
	{mp3tag.FieldGenre, "Music"},
	{mp3tag.FieldComment, "Comment"},
}

func printTags(w io.Writer, f *mp3tag.File) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "           MP3 Tag Reader and Editor for ID3v2")
	fmt.Fprintln(w, rule)
	for _, l := range labels {
		fmt.Fprintf(w, "%-10s: %s\n", l.label, displayText(f.Tags.Get(l.field)))
	}
	fmt.Fprintln(w, rule)
}

// displayText converts a raw frame value to UTF-8. Text frames written with
// encoding byte 0 are ISO-8859-1; values that are already valid UTF-8 are
// printed as they are.
func displayText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "?")
	}
	return out
}
