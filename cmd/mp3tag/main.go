// Command mp3tag views and edits the ID3v2 tag of MP3 files.
//
//	mp3tag -v <file.mp3>...
//	mp3tag -e -t|-a|-l|-y|-c|-g <value> <file.mp3>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chetankittur/mp3tag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// selection records the field chosen by an edit selector flag.
type selection struct {
	field mp3tag.Field
	value string
	count int
}

// selectorFlag is the flag.Value behind -t, -a, -l, -y, -c and -g.
type selectorFlag struct {
	sel   *selection
	field mp3tag.Field
}

func (f selectorFlag) String() string { return "" }

func (f selectorFlag) Set(s string) error {
	f.sel.field = f.field
	f.sel.value = s
	f.sel.count++
	return nil
}

var errUsage = errors.New("usage")

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "View : %s [flags] -v <file.mp3>...\n", name)
	fmt.Fprintf(w, "Edit : %s [flags] -e -t|-a|-l|-y|-c|-g <new_value> <file.mp3>\n", name)
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("mp3tag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		usage(stderr, fs.Name())
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}

	var view, edit bool
	for _, name := range []string{"v", "V"} {
		fs.BoolVar(&view, name, false, "View tags")
	}
	for _, name := range []string{"e", "E"} {
		fs.BoolVar(&edit, name, false, "Edit one tag")
	}

	var sel selection
	for _, field := range mp3tag.Fields() {
		s := field.Selector()
		fs.Var(selectorFlag{sel: &sel, field: field}, s, "New "+strings.ToLower(field.String())+" ("+field.FrameID()+")")
		fs.Var(selectorFlag{sel: &sel, field: field}, strings.ToUpper(s), "")
	}

	versionFlag := fs.Bool("version", false, "Print version")
	debugFlag := fs.Bool("debug", false, "Debug output (also enabled by DEBUG)")
	strictFlag := fs.Bool("strict", false, "Fail on any decode warning")
	backupFlag := fs.String("backup", "", "Keep the original as <file><suffix> when an edit rewrites the file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *versionFlag {
		fmt.Fprintln(stdout, mp3tag.GetVersionInfo())
		return 0
	}
	if getenv("DEBUG") != "" {
		*debugFlag = true
	}

	var debugLog *log.Logger
	if *debugFlag {
		debugLog = log.New(stderr, "DEBUG: ", log.Ltime)
	}

	c := &command{
		stdout:   stdout,
		debugLog: debugLog,
		strict:   *strictFlag,
		backup:   *backupFlag,
	}

	var err error
	switch {
	case view && !edit && sel.count == 0:
		err = c.view(fs.Args())
	case edit && !view && sel.count == 1:
		err = c.edit(sel, fs.Args())
	case edit && !view && sel.count == 0:
		fmt.Fprintf(stderr, "Invalid tag option!\n")
		err = errUsage
	default:
		err = errUsage
	}

	if errors.Is(err, errUsage) {
		usage(stderr, fs.Name())
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type command struct {
	stdout   io.Writer
	debugLog *log.Logger
	strict   bool
	backup   string
}

func (c *command) view(paths []string) error {
	if len(paths) == 0 {
		return errUsage
	}

	files, err := mp3tag.ViewMany(context.Background(), paths...)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := c.checkWarnings(f); err != nil {
			return err
		}
	}
	for _, f := range files {
		printTags(c.stdout, f)
	}
	return nil
}

func (c *command) edit(sel selection, paths []string) error {
	if len(paths) != 1 {
		return errUsage
	}
	path := paths[0]

	opts := []mp3tag.EditOption{mp3tag.WithLogger(c.debugLog)}
	if c.backup != "" {
		opts = append(opts, mp3tag.WithBackup(c.backup))
	}

	res, err := mp3tag.Edit(path, sel.field, sel.value, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "%s %s successfully: %s\n", res.FrameID, res.Outcome, res.Value)

	f, err := mp3tag.View(path)
	if err != nil {
		return err
	}
	if err := c.checkWarnings(f); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "\nUpdated Details:\n")
	printTags(c.stdout, f)
	return nil
}

// checkWarnings logs decode warnings, failing on the first one in strict mode.
func (c *command) checkWarnings(f *mp3tag.File) error {
	for _, w := range f.Warnings {
		if c.strict {
			return fmt.Errorf("%s: %s", f.Path, w)
		}
		if c.debugLog != nil {
			c.debugLog.Printf("%s: %s", f.Path, w)
		}
	}
	return nil
}
