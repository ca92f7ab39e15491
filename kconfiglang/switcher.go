// Package kconfiglang selects the language variant of a Kconfig file, overwriting the
// target file of the project with the content of the chosen variant.
package kconfiglang

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"unicode/utf8"
)

// ErrNotUTF8 is returned by Switch when the selected variant is not valid UTF-8.
var ErrNotUTF8 = errors.New("not valid UTF-8")

// Outcome is the result of a Switch that did not fail unexpectedly.
type Outcome int

const (
	// Aborted means that Switch returned an error before touching the target file;
	// see the error for details.
	Aborted Outcome = iota
	// Switched means that the target file has been overwritten. It can come with an
	// error if the confirmation message could not be printed.
	Switched
	// InvalidLanguage means that the requested language is not one of Languages.
	InvalidLanguage
	// SourceNotFound means that the variant file of the requested language is missing.
	SourceNotFound
)

// OK returns true only if the target file has been written.
func (oc Outcome) OK() bool {
	return oc == Switched
}

func (oc Outcome) String() string {
	switch oc {
	case Aborted:
		return "aborted"
	case Switched:
		return "switched"
	case InvalidLanguage:
		return "invalid-language"
	case SourceNotFound:
		return "source-not-found"
	default:
		return fmt.Sprintf("outcome(%d)", int(oc))
	}
}

// Switcher copies a language variant of the Kconfig file over the target file.
//
// The target file is not locked: concurrent switches on the same project race and
// the last writer wins.
type Switcher struct {
	root    string
	layout  Layout
	console *Console
	log     *slog.Logger
}

// NewSwitcher returns a Switcher operating on the project at root. User-visible
// messages go to out.
func NewSwitcher(root string, layout Layout, out io.Writer, log *slog.Logger) *Switcher {
	return &Switcher{
		root:    root,
		layout:  layout,
		console: NewConsole(out),
		log:     log.With("system", "switcher"),
	}
}

// Switch overwrites the target file with the variant of language, matched
// case-insensitively.
//
// An invalid language or a missing variant file are reported to the user and to the
// caller via the Outcome, with a nil error; in both cases no file is touched.
// A non-nil error means an unexpected failure (permissions, I/O, encoding). The
// Outcome is Aborted, unless the target was written and only the final message
// failed, in which case it is Switched.
func (sw *Switcher) Switch(language string) (Outcome, error) {
	lang, err := ParseLanguage(language)
	if err != nil {
		sw.log.Debug("rejected", "language", language)
		if err := sw.console.Failure("Invalid language. Use %s.", usageHint()); err != nil {
			return Aborted, fmt.Errorf("switch: %w", err)
		}
		return InvalidLanguage, nil
	}

	src := sw.layout.SourcePath(sw.root, lang)
	dst := sw.layout.TargetPath(sw.root)
	sw.log.Debug("resolved", "language", lang, "source", src, "target", dst)

	if _, err := os.Stat(src); err != nil {
		if !isNotExist(err) {
			return Aborted, fmt.Errorf("switch: %w", err)
		}
		sw.log.Debug("variant missing", "source", src)
		if err := sw.console.Failure("%s version (%s) not found.",
			lang.Name(), sw.layout.SourceName(lang)); err != nil {
			return Aborted, fmt.Errorf("switch: %w", err)
		}
		return SourceNotFound, nil
	}

	if err := copyText(dst, src); err != nil {
		return Aborted, fmt.Errorf("switch: %w", err)
	}
	sw.log.Info("switched", "language", lang, "target", dst)

	if err := sw.console.Success("Switched to %s %s.", lang.Name(), sw.layout.Target); err != nil {
		return Switched, fmt.Errorf("switch: %w", err)
	}
	return Switched, nil
}

// isNotExist reports whether err means that a path does not exist, including the
// cases where a path component is a regular file or a symlink loop.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}

// copyText replaces the content of dstPath with the content of srcPath, which must
// be UTF-8 text. If dstPath exists, its permissions are kept.
func copyText(dstPath string, srcPath string) error {
	buf, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading variant: %w", err)
	}
	if !utf8.Valid(buf) {
		return fmt.Errorf("reading variant %s: %w", srcPath, ErrNotUTF8)
	}
	if err := os.WriteFile(dstPath, buf, 0666); err != nil {
		return fmt.Errorf("writing target: %w", err)
	}
	return nil
}
