// Package projectconfig provides the ProjectConfig struct and loader for
// .llmdp.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up from the repository.
const FileName = ".llmdp.yaml"

// Default values for project configuration. These are the single source of
// truth: New() references them and no other code should duplicate them.
const (
	DefaultFactsFile        = ".llmdp_facts.json"
	DefaultEvaluatorCommand = "llmc"
)

// maxSearchDepth bounds how many parent directories Load walks.
const maxSearchDepth = 10

// FactsConfig holds facts file settings.
type FactsConfig struct {
	// File is the facts file path used when --write-facts is not given.
	// Relative paths are resolved against the repository root.
	File string `yaml:"file,omitempty"`
}

// EvaluatorConfig holds contract evaluator settings.
type EvaluatorConfig struct {
	Command string `yaml:"command,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .llmdp.yaml.
type ProjectConfig struct {
	Facts     FactsConfig     `yaml:"facts,omitempty"`
	Evaluator EvaluatorConfig `yaml:"evaluator,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Facts: FactsConfig{
			File: DefaultFactsFile,
		},
		Evaluator: EvaluatorConfig{
			Command: DefaultEvaluatorCommand,
		},
	}
}

// Load finds .llmdp.yaml by walking up from startDir (max 10 levels, never
// past a directory containing .git), unmarshals it, and fills in missing
// fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// FactsPath resolves the configured facts file against repo.
func (c *ProjectConfig) FactsPath(repo string) string {
	if filepath.IsAbs(c.Facts.File) {
		return c.Facts.File
	}
	return filepath.Join(repo, c.Facts.File)
}

// findConfigFile walks up from dir looking for .llmdp.yaml, stopping at the
// enclosing repository root.
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxSearchDepth; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		if isRepositoryRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// isRepositoryRoot reports whether dir holds version control metadata.
func isRepositoryRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Facts.File != "" {
		dst.Facts.File = src.Facts.File
	}
	if src.Evaluator.Command != "" {
		dst.Evaluator.Command = src.Evaluator.Command
	}
}
