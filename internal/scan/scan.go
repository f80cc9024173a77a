// Package scan runs the term rules over documentation files.
//
// The loop order is rule, then variant, then file, then line, so findings
// for a single file are interleaved with other files rather than grouped.
// File discovery happens once per run and file contents are read on first
// use, so a file that cannot be read fails at the same point in the output
// as it would if every pass re-read it.
package scan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/termcheck/internal/discover"
	"github.com/dshills/termcheck/internal/doc"
	"github.com/dshills/termcheck/internal/schema"
	"github.com/dshills/termcheck/internal/terms"
)

// EmitFunc receives each finding as soon as it is produced. Returning an
// error stops the scan.
type EmitFunc func(schema.Finding) error

// EmitError reports that an EmitFunc rejected a finding, as opposed to a
// failure reading a documentation file.
type EmitError struct {
	Finding schema.Finding
	Err     error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emitting finding for %s:%d: %v", e.Finding.Path, e.Finding.Line, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

// Checker scans documentation files for wrong term variants.
type Checker struct {
	rules  []terms.Rule
	logger *log.Logger
	cache  map[string]*doc.Doc
}

// New returns a Checker for the given rules. A nil logger disables logging.
func New(rules []terms.Rule, logger *log.Logger) *Checker {
	return &Checker{
		rules:  rules,
		logger: logger,
		cache:  make(map[string]*doc.Doc),
	}
}

// Check discovers documentation files under root and scans them. It
// returns the discovered files.
func (c *Checker) Check(root string, emit EmitFunc) ([]string, error) {
	files, err := discover.Find(root, c.logger)
	if err != nil {
		return nil, err
	}
	c.debug("discovered files", "root", root, "count", len(files))
	return files, c.Run(files, emit)
}

// Run scans files in the given order. The first read or emit error aborts
// the run; findings already emitted stay emitted.
func (c *Checker) Run(files []string, emit EmitFunc) error {
	for _, p := range terms.Pairs(c.rules) {
		c.debug("checking", "wrong", p.Wrong, "correct", p.Correct)
		for _, path := range files {
			d, err := c.load(path)
			if err != nil {
				return err
			}
			for i, line := range d.Lines {
				if !strings.Contains(line, p.Wrong) {
					continue
				}
				f := schema.Finding{Path: path, Line: i + 1, Wrong: p.Wrong, Correct: p.Correct}
				if err := emit(f); err != nil {
					return &EmitError{Finding: f, Err: err}
				}
			}
		}
	}
	return nil
}

// Doc returns a previously loaded file, or nil if Run never read it.
func (c *Checker) Doc(path string) *doc.Doc {
	return c.cache[path]
}

func (c *Checker) load(path string) (*doc.Doc, error) {
	if d, ok := c.cache[path]; ok {
		return d, nil
	}
	d, err := doc.Load(path)
	if err != nil {
		return nil, err
	}
	c.debug("loaded", "path", path, "lines", d.LineCount())
	c.cache[path] = d
	return d, nil
}

func (c *Checker) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}

// Collect is an EmitFunc that appends findings to dst.
func Collect(dst *[]schema.Finding) EmitFunc {
	return func(f schema.Finding) error {
		*dst = append(*dst, f)
		return nil
	}
}
