package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/termcheck/internal/config"
	"github.com/dshills/termcheck/internal/patch"
	"github.com/dshills/termcheck/internal/render"
	"github.com/dshills/termcheck/internal/review"
	"github.com/dshills/termcheck/internal/scan"
	"github.com/dshills/termcheck/internal/schema"
	"github.com/dshills/termcheck/internal/terms"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// searchRoot is where documentation files are discovered. It is always
// the working directory.
const searchRoot = "."

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitErr
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "termcheck",
		Short: "Report disallowed terminology in reStructuredText documentation",
		Long: "termcheck searches every *.rst file below the current directory for " +
			"disallowed term variants and prints one warning per matching line.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return codeError(3, "invalid configuration: %s", err)
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Info("loaded config", "file", cfg.File)
			}
			return runCheck(searchRoot, cfg, cmd.OutOrStdout(), logger)
		},
	}

	f := root.Flags()
	f.String("format", config.DefaultFormat, "Output format: "+strings.Join(render.Formats, ", "))
	f.String("out", "", "Write output to file instead of stdout")
	f.String("patch-out", "", "Write suggested replacements in diff-match-patch format to this file")
	f.Bool("verbose", false, "Log processing steps to stderr")
	f.StringVar(&cfgFile, "config", "", "Config file (default "+config.DefaultFile+" if present)")

	root.AddCommand(newRulesCmd())
	return root
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in term rules in checking order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range terms.Pairs(terms.Default()) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p.String()); err != nil {
					return codeError(3, "writing output: %s", err)
				}
			}
			return nil
		},
	}
}

// newLogger returns a stderr logger. Warnings always show; verbose adds
// info and per-pass debug lines.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "termcheck",
		Level:  level,
	})
}

func runCheck(root string, cfg *config.Config, stdout io.Writer, logger *log.Logger) (retErr error) {
	// --- Step 1: Resolve renderer ---
	renderer, err := render.NewRenderer(cfg.Format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	streaming := render.IsStreaming(cfg.Format)

	// --- Step 2: Open output ---
	out := stdout
	if cfg.Out != "" {
		fh, err := os.Create(cfg.Out)
		if err != nil {
			return codeError(3, "opening output file: %s", err)
		}
		defer func() {
			if err := fh.Close(); err != nil && retErr == nil {
				retErr = codeError(3, "closing output file: %s", err)
			}
		}()
		out = fh
	}

	// --- Step 3: Scan; text findings are written as they are found ---
	rules := terms.Default()
	checker := scan.New(rules, logger)
	var findings []schema.Finding
	emit := func(f schema.Finding) error {
		findings = append(findings, f)
		if streaming {
			return render.WriteFinding(out, f)
		}
		return nil
	}

	logger.Info("scanning", "root", root, "format", cfg.Format)
	files, err := checker.Check(root, emit)
	if err != nil {
		var emitErr *scan.EmitError
		if errors.As(err, &emitErr) {
			return codeError(3, "writing output: %s", emitErr.Err)
		}
		return codeError(4, "%s", err)
	}

	// --- Step 4: Summarize ---
	summary := review.Summarize(findings, terms.Pairs(rules), len(files))
	logger.Info("scan complete",
		"files", summary.FilesScanned,
		"files_with_findings", summary.FilesWithFinding,
		"findings", summary.FindingCount)

	// --- Step 5: Render non-streaming formats ---
	if !streaming {
		report := &schema.Report{
			Tool:     "termcheck",
			Version:  version,
			Root:     root,
			Summary:  summary,
			Findings: findings,
		}
		outputBytes, err := renderer.Render(report)
		if err != nil {
			return codeError(3, "rendering output: %s", err)
		}
		if _, err := out.Write(outputBytes); err != nil {
			return codeError(3, "writing output: %s", err)
		}
		if len(outputBytes) > 0 && outputBytes[len(outputBytes)-1] != '\n' {
			if _, err := fmt.Fprintln(out); err != nil {
				return codeError(3, "writing output: %s", err)
			}
		}
	}

	// --- Step 6: Write suggestions ---
	if cfg.PatchOut != "" {
		writeSuggestions(cfg.PatchOut, checker, findings, rules, logger)
	}

	return nil
}

// writeSuggestions writes advisory replacement diffs for every file with
// findings. Failure is logged and does not affect the exit code.
func writeSuggestions(path string, checker *scan.Checker, findings []schema.Finding, rules []terms.Rule, logger *log.Logger) {
	var sources []patch.Source
	for _, p := range review.Files(findings) {
		if d := checker.Doc(p); d != nil {
			sources = append(sources, patch.Source{Path: p, Raw: d.Raw})
		}
	}
	logger.Info("writing suggestions", "file", path, "sources", len(sources))
	diffText := patch.GenerateDiff(sources, rules)
	if err := os.WriteFile(path, []byte(diffText), 0o644); err != nil {
		logger.Warn("suggestion write failed", "file", path, "err", err)
	}
}
