// Package discover finds documentation files below a root directory using
// the semantics of a recursive "**/*.rst" glob.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Extension is the documentation file extension that is searched for.
const Extension = ".rst"

// Find walks root and returns every file whose name ends in Extension.
// Paths are returned as root + separator + relative path, so a root of "."
// yields "./doc/a.rst". Entries whose name starts with a dot are skipped,
// directories included. Order is lexical within each directory, which
// keeps repeated runs byte-identical.
//
// Symlinked directories are followed unless they point back at a
// directory already on the current path. A subdirectory that cannot be
// listed is skipped and logged; only an unreadable root is an error. A nil
// logger disables logging.
func Find(root string, logger *log.Logger) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("discovering %s files under %s: %w", Extension, root, err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("discovering %s files under %s: %w", Extension, root, err)
	}

	w := &walker{root: root, logger: logger}
	w.walk("", entries, []os.FileInfo{info})
	return w.out, nil
}

type walker struct {
	root   string
	logger *log.Logger
	out    []string
}

// walk visits entries of the directory at rel. ancestors holds the
// directories from the root down to rel and is used to stop symlink cycles.
func (w *walker) walk(rel string, entries []fs.DirEntry, ancestors []os.FileInfo) {
	for _, e := range entries {
		name := e.Name()
		if isHidden(name) {
			continue
		}
		childRel := filepath.Join(rel, name)
		path := filepath.Join(w.root, childRel)

		isDir := e.IsDir()
		var dirInfo os.FileInfo
		if e.Type()&fs.ModeSymlink != 0 {
			// Broken links fall through as files and fail when read.
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				isDir = true
				dirInfo = target
			}
		}

		if !isDir {
			if strings.HasSuffix(name, Extension) {
				w.out = append(w.out, display(w.root, childRel))
			}
			continue
		}

		if dirInfo == nil {
			info, err := e.Info()
			if err != nil {
				w.skip(path, err)
				continue
			}
			dirInfo = info
		}
		if onPath(dirInfo, ancestors) {
			w.debug("skipping symlink cycle", "dir", path)
			continue
		}
		children, err := os.ReadDir(path)
		if err != nil {
			w.skip(path, err)
			continue
		}
		w.walk(childRel, children, append(ancestors[:len(ancestors):len(ancestors)], dirInfo))
	}
}

func (w *walker) skip(path string, err error) {
	w.debug("skipping unreadable directory", "dir", path, "err", err)
}

func (w *walker) debug(msg string, keyvals ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, keyvals...)
	}
}

func onPath(dir os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(dir, a) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func display(root, rel string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(root, sep) {
		return root + rel
	}
	return root + sep + rel
}
