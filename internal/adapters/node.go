package adapters

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/llmdp/llmdp/internal/checks"
	"github.com/llmdp/llmdp/internal/facts"
)

const (
	nodeManifestFile = "package.json"
	nodeLockFile     = "package-lock.json"
)

// nodeScripts maps manifest script names to fact keys, in run order.
var nodeScripts = []struct {
	script string
	fact   string
}{
	{"lint", facts.LintOK},
	{"test", facts.TestsOK},
	{"build", facts.BuildOK},
	{"typecheck", facts.TypecheckOK},
}

var nodeAuditCheck = checks.Check{
	Name:    "audit",
	Fact:    facts.AuditOK,
	Command: "npm",
	Args:    []string{"audit", "--audit-level=high"},
}

// nodeManifest is the slice of package.json the adapter cares about.
type nodeManifest struct {
	Scripts map[string]any `mapstructure:"scripts"`
}

func (m *nodeManifest) defines(script string) bool {
	if m == nil || m.Scripts == nil {
		return false
	}
	_, ok := m.Scripts[script]
	return ok
}

// NodeAdapter checks an npm project. Only scripts the manifest defines are
// run, and the dependency audit only runs when a lockfile is present; facts
// for anything else are left out.
type NodeAdapter struct {
	runner checks.Runner
}

var _ Adapter = (*NodeAdapter)(nil)

// NewNodeAdapter creates a [NodeAdapter] that runs npm through runner.
func NewNodeAdapter(runner checks.Runner) *NodeAdapter {
	return &NodeAdapter{runner: runner}
}

func (a *NodeAdapter) Language() Language { return LanguageNode }

func (a *NodeAdapter) Vocabulary() []string {
	vocab := make([]string, 0, len(nodeScripts)+1)
	for _, s := range nodeScripts {
		vocab = append(vocab, s.fact)
	}
	return append(vocab, nodeAuditCheck.Fact)
}

func (a *NodeAdapter) Collect(ctx context.Context, repo string) (facts.Facts, error) {
	manifest, ok := readNodeManifest(repo)
	if !ok {
		slog.Debug("No usable package.json, nothing to check", "repo", repo)
		return facts.Facts{}, nil
	}

	var applicable []checks.Check
	for _, s := range nodeScripts {
		if !manifest.defines(s.script) {
			continue
		}
		applicable = append(applicable, checks.Check{
			Name:    s.script,
			Fact:    s.fact,
			Command: "npm",
			Args:    []string{"run", s.script},
		})
	}
	if fileExists(filepath.Join(repo, nodeLockFile)) {
		applicable = append(applicable, nodeAuditCheck)
	}

	slog.Debug("Collecting node facts", "repo", repo, "checks", len(applicable))

	agg := facts.NewAggregator()
	if err := runChecks(ctx, a.runner, repo, applicable, agg); err != nil {
		return nil, err
	}
	return agg.Facts(), nil
}

// readNodeManifest loads package.json from repo. ok is false when the file
// is missing, unreadable or not valid JSON. A document whose scripts entry
// is absent or not an object yields a manifest with no scripts.
func readNodeManifest(repo string) (*nodeManifest, bool) {
	data, err := os.ReadFile(filepath.Join(repo, nodeManifestFile))
	if err != nil {
		return nil, false
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}

	m := &nodeManifest{}
	obj, isObj := doc.(map[string]any)
	if !isObj {
		return m, true
	}

	// npm only reads the lowercase key; "Scripts" is not a scripts section.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    m,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return m, true
	}
	if err := decoder.Decode(obj); err != nil {
		m.Scripts = nil
	}
	return m, true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
