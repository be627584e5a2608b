package facts

import "fmt"

// Aggregator accumulates facts for one adapter run. Adapters keep it local
// and only publish [Aggregator.Facts] once every check has run, so an
// aborted run never leaks a partial result.
type Aggregator struct {
	facts Facts
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{facts: Facts{}}
}

// Record stores the outcome for key. Facts are write-once; recording the
// same key twice is an error.
func (a *Aggregator) Record(key string, ok bool) error {
	if _, exists := a.facts[key]; exists {
		return fmt.Errorf("fact %q recorded twice", key)
	}
	a.facts[key] = ok
	return nil
}

// Facts returns a copy of the recorded facts.
func (a *Aggregator) Facts() Facts {
	out := make(Facts, len(a.facts))
	for k, v := range a.facts {
		out[k] = v
	}
	return out
}
