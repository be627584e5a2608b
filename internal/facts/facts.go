// Package facts holds the boolean quality facts produced by a single adapter
// run and their canonical on-disk form.
package facts

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gowebpki/jcs"
)

// Fact keys. A key is either present with a boolean value or absent, which
// means the check did not apply to the repository.
const (
	FmtOK       = "fmt_ok"
	ClippyOK    = "clippy_ok"
	LintOK      = "lint_ok"
	TestsOK     = "tests_ok"
	BuildOK     = "build_ok"
	TypecheckOK = "typecheck_ok"
	AuditOK     = "audit_ok"
)

// Facts maps fact keys to check outcomes.
type Facts map[string]bool

// Keys returns the fact keys in lexical order.
func (f Facts) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode returns the RFC 8785 canonical JSON form of f. An empty or nil
// Facts encodes as {}.
func Encode(f Facts) ([]byte, error) {
	if f == nil {
		f = Facts{}
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshaling facts: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing facts: %w", err)
	}
	return canonical, nil
}

// WriteFile writes already-encoded facts to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing facts file: %w", err)
	}
	return nil
}
