// Package libreta provides embedded runtime resources (the console message
// catalog) and an overlay filesystem that checks local disk first, falling
// back to embedded.
package libreta

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed messages/*.yaml
var rawMessages embed.FS

// Messages is the embedded message catalog filesystem with the "messages/"
// prefix stripped.
var Messages = mustSub(rawMessages, "messages")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
// An empty localDir disables the local layer.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
		if err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
