package mp3tag

import (
	"slices"

	"github.com/chetankittur/mp3tag/internal/types"
)

// TagInfo is an alias to types.TagInfo.
// Re-exporting from internal/types to maintain public API.
type TagInfo = types.TagInfo

// Field is an alias to types.Field.
type Field = types.Field

// Re-export all field constants.
const (
	FieldTitle   = types.FieldTitle
	FieldArtist  = types.FieldArtist
	FieldAlbum   = types.FieldAlbum
	FieldYear    = types.FieldYear
	FieldComment = types.FieldComment
	FieldGenre   = types.FieldGenre
)

// ParseSelector maps a command selector ("t", "-a", "C", ...) to its field.
func ParseSelector(s string) (Field, error) {
	return types.ParseSelector(s)
}

// FieldForFrame returns the field a frame id decodes into.
func FieldForFrame(id string) (Field, bool) {
	return types.FieldForFrame(id)
}

// Fields returns every field in display order.
func Fields() []Field {
	return slices.Clone(types.Fields)
}
