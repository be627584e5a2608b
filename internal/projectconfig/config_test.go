package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqual(t, "Facts.File", ".llmdp_facts.json", cfg.Facts.File)
	assertEqual(t, "Evaluator.Command", "llmc", cfg.Evaluator.Command)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".llmdp.yaml", `
facts:
  file: out/facts.json
evaluator:
  command: /opt/llmc/bin/llmc
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Facts.File", "out/facts.json", cfg.Facts.File)
	assertEqual(t, "Evaluator.Command", "/opt/llmc/bin/llmc", cfg.Evaluator.Command)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".llmdp.yaml", `
evaluator:
  command: llmc-next
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Overridden
	assertEqual(t, "Evaluator.Command", "llmc-next", cfg.Evaluator.Command)

	// Defaults preserved
	assertEqual(t, "Facts.File", ".llmdp_facts.json", cfg.Facts.File)
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Should be identical to New()
	defaults := New()
	assertEqual(t, "Facts.File", defaults.Facts.File, cfg.Facts.File)
	assertEqual(t, "Evaluator.Command", defaults.Evaluator.Command, cfg.Evaluator.Command)
}

func TestLoad_EmptyFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".llmdp.yaml", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Facts.File", DefaultFactsFile, cfg.Facts.File)
	assertEqual(t, "Evaluator.Command", DefaultEvaluatorCommand, cfg.Evaluator.Command)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".llmdp.yaml", `
evaluator:
  command: [not valid yaml
    this is broken
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_WalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".llmdp.yaml", `
evaluator:
  command: found-it
`)

	child := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Evaluator.Command", "found-it", cfg.Evaluator.Command)
	// Other defaults still populated
	assertEqual(t, "Facts.File", ".llmdp_facts.json", cfg.Facts.File)
}

func TestLoad_NearestFileWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".llmdp.yaml", `
evaluator:
  command: outer
`)
	child := filepath.Join(root, "repo")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, child, ".llmdp.yaml", `
evaluator:
  command: inner
`)

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Evaluator.Command", "inner", cfg.Evaluator.Command)
}

func TestLoad_StopsAtRepositoryRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".llmdp.yaml", "evaluator: [not valid yaml\n")

	repo := filepath.Join(root, "checkout")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	child := filepath.Join(repo, "pkg")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{repo, child} {
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load(%s) error: %v", dir, err)
		}
		assertEqual(t, "Evaluator.Command", DefaultEvaluatorCommand, cfg.Evaluator.Command)
	}
}

func TestLoad_RepositoryRootConfigFound(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, repo, ".llmdp.yaml", "evaluator:\n  command: at-root\n")

	child := filepath.Join(repo, "pkg")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Evaluator.Command", "at-root", cfg.Evaluator.Command)
}

func TestFactsPath(t *testing.T) {
	repo := t.TempDir()

	cfg := New()
	assertEqual(t, "default", filepath.Join(repo, ".llmdp_facts.json"), cfg.FactsPath(repo))

	cfg.Facts.File = filepath.Join("build", "facts.json")
	assertEqual(t, "relative", filepath.Join(repo, "build", "facts.json"), cfg.FactsPath(repo))

	abs := filepath.Join(t.TempDir(), "facts.json")
	cfg.Facts.File = abs
	assertEqual(t, "absolute", abs, cfg.FactsPath(repo))
}

// --- test helpers ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}
