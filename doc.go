// Package mp3tag reads and edits the ID3v2 tag at the start of MP3 files.
//
// It understands six text values: title (TIT2), artist (TPE1), album
// (TALB), year (TYER, or TDRC when reading), comment (COMM) and genre
// (TCON). Every other frame is scanned past and left untouched.
//
// # Quick Start
//
// Reading a tag:
//
//	file, err := mp3tag.View("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
//
// Changing a value:
//
//	res, err := mp3tag.Edit("song.mp3", mp3tag.FieldGenre, "Rock")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.FrameID, res.Outcome)
//
// # Editing
//
// An existing frame is rewritten in place and its size never changes, so a
// new value must fit the old frame (*ValueTooLongError otherwise). A missing
// frame is appended after the last frame and the tag size in the header
// grows by exactly the frame length; the file is then rewritten through a
// temporary file and renamed into place. All checks run before anything is
// written, so a failed edit leaves the file as it was.
//
// Edit holds an advisory lock on the file while it works. Two cooperating
// editors on the same file get *LockedError rather than interleaving writes.
//
// # Error Handling
//
// Fatal problems are typed errors matched with errors.As:
//
//   - *NotMP3Error: the path does not end in ".mp3"
//   - *NoHeaderError: no "ID3" header at the start of the file
//   - *TruncatedFrameError: a frame claims more bytes than the tag holds
//   - *ValueTooLongError: an in-place value does not fit the frame
//   - *TagSizeOverflowError: the grown tag no longer fits the header size field
//   - *IOError: the file could not be accessed
//
// Non-fatal problems, such as an undecodable comment frame or a value cut
// to its field's maximum length, are collected in File.Warnings:
//
//	for _, w := range file.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// Many files can be read concurrently with ViewMany.
package mp3tag
