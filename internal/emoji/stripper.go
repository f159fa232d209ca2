package emoji

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/raaihank/nomoji/internal/config"
	"github.com/raaihank/nomoji/internal/logger"
	"go.uber.org/zap"
)

// Stripper removes emoji code points from text using a configurable set of
// blocks. It classifies individual code points only: multi-code-point
// sequences (ZWJ families, flags, keycaps) are reduced by deleting each
// matched constituent independently, never as an atomic unit.
type Stripper struct {
	blocks  []Block
	enabled map[string]bool
	logger  *logger.Logger
}

// New creates a Stripper from configuration.
func New(cfg config.StripConfig, log *logger.Logger) (*Stripper, error) {
	s := &Stripper{
		blocks:  DefaultBlocks(),
		enabled: make(map[string]bool),
		logger:  log,
	}

	if err := s.configureBlocks(cfg.Blocks); err != nil {
		return nil, fmt.Errorf("failed to configure blocks: %w", err)
	}

	log.Debug("Emoji stripper initialized",
		zap.Int("total_blocks", len(s.blocks)),
		zap.Int("enabled_blocks", s.countEnabledBlocks()),
	)

	return s, nil
}

// configureBlocks enables/disables blocks based on configuration
func (s *Stripper) configureBlocks(blocks []string) error {
	for _, b := range s.blocks {
		s.enabled[b.Name] = false
	}

	for _, name := range blocks {
		if name == "all" {
			for _, b := range s.blocks {
				s.enabled[b.Name] = true
			}
			continue
		}

		found := false
		for _, b := range s.blocks {
			if b.Name == name {
				s.enabled[b.Name] = true
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("unknown emoji block: %s", name)
		}
	}

	return nil
}

// Strip removes every code point belonging to an enabled block. Survivors
// keep their original order and adjacency; nothing is inserted, reordered, or
// coalesced. Single pass, linear time and space.
func (s *Stripper) Strip(text string) Result {
	var clean strings.Builder
	clean.Grow(len(text))

	removed := 0
	counts := make([]int, len(s.blocks))

	for _, r := range text {
		if i := s.classify(r); i >= 0 {
			removed++
			counts[i]++
			continue
		}
		clean.WriteRune(r)
	}

	findings := make([]Finding, 0)
	for i, b := range s.blocks {
		if counts[i] > 0 {
			findings = append(findings, Finding{Block: b.Name, Removed: counts[i]})
		}
	}

	return Result{
		Clean:    clean.String(),
		Removed:  removed,
		Findings: findings,
	}
}

// classify returns the index of the first enabled block containing r, or -1.
func (s *Stripper) classify(r rune) int {
	for i, b := range s.blocks {
		if s.enabled[b.Name] && unicode.Is(b.Table, r) {
			return i
		}
	}
	return -1
}

// countEnabledBlocks returns the number of enabled blocks
func (s *Stripper) countEnabledBlocks() int {
	count := 0
	for _, enabled := range s.enabled {
		if enabled {
			count++
		}
	}
	return count
}

// EnabledBlocks returns the names of enabled blocks in attribution order.
func (s *Stripper) EnabledBlocks() []string {
	var enabled []string
	for _, b := range s.blocks {
		if s.enabled[b.Name] {
			enabled = append(enabled, b.Name)
		}
	}
	return enabled
}

// EnableBlock enables a specific emoji block.
func (s *Stripper) EnableBlock(name string) error {
	for _, b := range s.blocks {
		if b.Name == name {
			s.enabled[name] = true
			s.logger.Info("Emoji block enabled", zap.String("block", name))
			return nil
		}
	}
	return fmt.Errorf("unknown block: %s", name)
}

// DisableBlock disables a specific emoji block.
func (s *Stripper) DisableBlock(name string) error {
	if _, exists := s.enabled[name]; !exists {
		return fmt.Errorf("unknown block: %s", name)
	}

	s.enabled[name] = false
	s.logger.Info("Emoji block disabled", zap.String("block", name))
	return nil
}
