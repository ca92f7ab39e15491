package kconfiglang

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/sasbury/mini"
)

// ErrRootNotFound is returned by FindRoot when no directory in the hierarchy contains
// a language variant file.
var ErrRootNotFound = errors.New("project root not found")

// Layout describes where, relative to the project root, the Kconfig target file and
// its language variants live.
//
// For the default layout:
//
//	<root>/main/Kconfig.projbuild       <= target, overwritten
//	<root>/main/Kconfig.projbuild.zh    <= Chinese variant
//	<root>/main/Kconfig.projbuild.en    <= English variant
type Layout struct {
	Dir    string // Directory containing target and variants, relative to the root.
	Target string // File name of the target; variants append ".<language>".
}

// DefaultLayout returns the layout of an ESP-IDF project.
func DefaultLayout() Layout {
	return Layout{Dir: "main", Target: "Kconfig.projbuild"}
}

// TargetPath returns the path of the target file below root.
func (lo Layout) TargetPath(root string) string {
	return filepath.Join(root, lo.Dir, lo.Target)
}

// SourceName returns the file name of the variant for lang, for example
// "Kconfig.projbuild.zh".
func (lo Layout) SourceName(lang Language) string {
	return lo.Target + "." + string(lang)
}

// SourcePath returns the path of the variant for lang below root.
func (lo Layout) SourcePath(root string, lang Language) string {
	return filepath.Join(root, lo.Dir, lo.SourceName(lang))
}

// String renders Layout.
func (lo Layout) String() string {
	return fmt.Sprintf("dir: %s, target: %s", lo.Dir, lo.Target)
}

// Validate verifies that lo stays below the project root.
func (lo Layout) Validate() error {
	var problems []string
	if lo.Dir == "" {
		problems = append(problems, "dir: empty")
	} else if !filepath.IsLocal(lo.Dir) {
		problems = append(problems, fmt.Sprintf("dir: %q escapes the project root", lo.Dir))
	}
	if lo.Target == "" {
		problems = append(problems, "target: empty")
	} else if lo.Target != filepath.Base(lo.Target) || !filepath.IsLocal(lo.Target) {
		problems = append(problems, fmt.Sprintf("target: %q is not a file name", lo.Target))
	}
	if len(problems) > 0 {
		return fmt.Errorf("layout: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LoadLayout reads an INI file overriding the default layout. The file looks like:
//
//	[layout]
//	dir = main
//	target = Kconfig.projbuild
//
// Missing keys keep the value of DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	cfg, err := mini.LoadConfiguration(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: parsing %s: %w", path, err)
	}

	const section = "layout"
	override := Layout{
		Dir:    strings.TrimSpace(cfg.StringFromSection(section, "dir", "")),
		Target: strings.TrimSpace(cfg.StringFromSection(section, "target", "")),
	}

	layout := DefaultLayout()
	if err := mergo.Merge(&layout, override, mergo.WithOverride); err != nil {
		return Layout{}, fmt.Errorf("layout: merging %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// FindRoot returns the first directory, starting from start and going up, that
// contains at least one language variant file according to lo.
func FindRoot(start string, lo Layout) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("find root: %w", err)
	}
	for {
		for _, lang := range Languages() {
			if fi, err := os.Stat(lo.SourcePath(dir, lang)); err == nil && !fi.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s.{%s} below %s or any parent directory",
				ErrRootNotFound, filepath.Join(lo.Dir, lo.Target), joinCodes(","), start)
		}
		dir = parent
	}
}
