package testhelp

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"text/template"

	"dario.cat/mergo"
	"gotest.tools/v3/assert"
)

// TemplateData is passed to template.Execute() by CopyDir.
type TemplateData map[string]string

// CopyDir copies the contents of the src directory into the dst directory, which must
// exist. Files ending in ".template" are rendered with data and lose the suffix; the
// other files are copied verbatim.
//
// For example, if src directory is `esp-project`:
//
//	esp-project
//	└── main
//	    ├── Kconfig.projbuild.en.template
//	    └── Kconfig.projbuild.zh
//
// dst will contain:
//
//	main
//	├── Kconfig.projbuild.en    <= rendered
//	└── Kconfig.projbuild.zh
func CopyDir(dst string, src string, data TemplateData) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		tgt := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(tgt, 0770)
		}
		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading src file: %w", err)
		}
		if strings.HasSuffix(tgt, ".template") {
			tgt = strings.TrimSuffix(tgt, ".template")
			if buf, err = render(path, buf, data); err != nil {
				return err
			}
		}
		// We want an error if the file already exists.
		dstFile, err := os.OpenFile(tgt, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0660)
		if err != nil {
			return fmt.Errorf("creating dst file: %w", err)
		}
		defer dstFile.Close()
		_, err = dstFile.Write(buf)
		return err
	})
}

func render(name string, text []byte, data TemplateData) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(name)).Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parsing template %v: %w", name, err)
	}
	tmpl.Option("missingkey=error")
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("executing template %v with data %v: %w", name, data, err)
	}
	return out.Bytes(), nil
}

// MakeProjectFromTestdata creates a temporary project root by rendering the contents
// of testdataDir with data and returns its path. The directory is removed when the
// test ends. If any operation fails, the test is terminated with t.Fatal.
func MakeProjectFromTestdata(t *testing.T, testdataDir string, data TemplateData) string {
	t.Helper()
	root := t.TempDir()
	if err := CopyDir(root, testdataDir, data); err != nil {
		t.Fatal("CopyDir:", err)
	}
	return root
}

// MakeProject creates a temporary project root containing files, a map from slash
// separated relative path to content, and returns its path.
func MakeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0770))
		assert.NilError(t, os.WriteFile(path, []byte(content), 0660))
	}
	return root
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	buf, err := os.ReadFile(path)
	assert.NilError(t, err)
	return string(buf)
}

// AssertNotExist fails the test if path exists. A path below a regular file does
// not exist.
func AssertNotExist(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.Assert(t, errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR),
		"stat %s: %v", path, err)
}

// MergeStructs merges b into a and returns the merged copy.
// Said in another way, a is the default and b is the override.
// Used to express succinctly the delta in the test cases.
// Since it is a test helper, it will panic in case of error.
func MergeStructs[T any](a, b T) T {
	if err := mergo.Merge(&a, b, mergo.WithOverride); err != nil {
		panic(err)
	}
	return a
}

// FailingWriter is an io.Writer that always returns an error.
type FailingWriter struct{}

func (t *FailingWriter) Write([]byte) (n int, err error) {
	return 0, errors.New("test write error")
}
