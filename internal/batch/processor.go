package batch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/raaihank/nomoji/internal/config"
	"github.com/raaihank/nomoji/internal/emoji"
	"github.com/raaihank/nomoji/internal/logger"
	"go.uber.org/zap"
)

// Processor runs the emoji filter over named sources, strictly sequentially.
// Filtered output for sources processed without --inplace/--backup goes to
// Stdout, which tests may replace.
type Processor struct {
	cfg      *config.Config
	opts     Options
	stripper *emoji.Stripper
	logger   *logger.Logger

	Stdout io.Writer
}

// NewProcessor creates a processor for one batch invocation.
func NewProcessor(cfg *config.Config, opts Options, stripper *emoji.Stripper, log *logger.Logger) *Processor {
	return &Processor{
		cfg:      cfg,
		opts:     opts,
		stripper: stripper,
		logger:   log,
		Stdout:   os.Stdout,
	}
}

// Run processes every source in the order given. A failure on one source is
// recorded in its result and the batch continues.
func (p *Processor) Run(files []string) []Result {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		result := p.ProcessFile(file)
		results = append(results, result)

		p.logger.Debug("Source processed",
			zap.String("file", result.File),
			zap.Int("removed", result.Removed),
			zap.Bool("success", result.Success),
		)
	}
	return results
}

// ProcessFile reads one source in full, strips it, and applies the configured
// mode: dry-run counts only, backup copies the original to a sibling file
// before overwriting, in-place overwrites directly, and otherwise the
// filtered text is written to stdout.
func (p *Processor) ProcessFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	if !utf8.Valid(data) {
		return Result{File: path, Err: fmt.Errorf("failed to read file: content is not valid UTF-8")}
	}

	res := p.stripper.Strip(string(data))

	if p.opts.DryRun {
		return Result{File: path, Removed: res.Removed, Success: true}
	}

	switch {
	case p.opts.Backup:
		backupPath := path + p.cfg.Strip.BackupSuffix
		if err := os.WriteFile(backupPath, data, sourceMode(path)); err != nil {
			return Result{File: path, Removed: res.Removed, Err: fmt.Errorf("failed to create backup: %w", err)}
		}
		if err := os.WriteFile(path, []byte(res.Clean), sourceMode(path)); err != nil {
			return Result{File: path, Removed: res.Removed, Err: fmt.Errorf("failed to write file: %w", err)}
		}

	case p.opts.InPlace:
		if err := os.WriteFile(path, []byte(res.Clean), sourceMode(path)); err != nil {
			return Result{File: path, Removed: res.Removed, Err: fmt.Errorf("failed to write file: %w", err)}
		}

	default:
		if _, err := io.WriteString(p.Stdout, res.Clean); err != nil {
			return Result{File: path, Removed: res.Removed, Err: fmt.Errorf("failed to write to stdout: %w", err)}
		}
	}

	return Result{File: path, Removed: res.Removed, Success: true}
}

// ProcessStdin filters all of r onto w and returns the removal count. Unlike
// file processing, any error here is fatal to the invocation.
func (p *Processor) ProcessStdin(r io.Reader, w io.Writer) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read stdin: %w", err)
	}

	if !utf8.Valid(data) {
		return 0, fmt.Errorf("failed to read stdin: content is not valid UTF-8")
	}

	res := p.stripper.Strip(string(data))

	if _, err := io.WriteString(w, res.Clean); err != nil {
		return 0, fmt.Errorf("failed to write to stdout: %w", err)
	}

	return res.Removed, nil
}

// sourceMode returns the source's permission bits so overwrites and backups
// keep them, falling back to 0644 when the source cannot be inspected.
func sourceMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// Failed counts unsuccessful results.
func Failed(results []Result) int {
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	return failed
}
