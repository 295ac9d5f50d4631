package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Load reads a table file from fsys. A nil fsys reads the embedded tables.
func Load(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		fsys = FS
	}
	return fs.ReadFile(fsys, cleanPrefabPath(name))
}

func LoadScript(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		fsys = FS
	}
	return fs.ReadFile(fsys, cleanScriptPath(name))
}

// Overlay returns a filesystem that serves files from dir when present and
// falls back to the embedded tables otherwise.
func Overlay(dir string) fs.FS {
	return overlayFS{disk: os.DirFS(dir), base: FS}
}

type overlayFS struct {
	disk fs.FS
	base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.disk.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.Open(name)
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}

	s := filepath.ToSlash(p)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	if path.Ext(s) == "" {
		s += ".tengo"
	}

	return fmt.Sprintf("scripts/%s", s)
}
