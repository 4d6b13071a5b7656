package perf

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func runs reps repetitions of a workload of size arg and returns the mean
// duration of one repetition. Setup outside the timed region is allowed.
type Func func(ctx context.Context, arg, reps int) (time.Duration, error)

// Case is one named benchmark.
type Case struct {
	Name string
	Run  Func
	Arg  int
	Reps int
}

func (c Case) validate() error {
	if c.Name == "" || c.Run == nil {
		return fmt.Errorf("case %q: %w", c.Name, ErrInvalidCase)
	}
	if c.Reps < 1 {
		return fmt.Errorf("case %q reps=%d: %w", c.Name, c.Reps, ErrBadRepetitions)
	}
	return nil
}

// Registry keeps cases in registration order. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	cases []Case
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends c. Names are unique.
func (r *Registry) Register(c Case) error {
	if err := c.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.index[c.Name]; dup {
		return fmt.Errorf("case %q: %w", c.Name, ErrDuplicateCase)
	}
	r.index[c.Name] = len(r.cases)
	r.cases = append(r.cases, c)
	return nil
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases)
}

// Cases returns a copy of all cases in registration order.
func (r *Registry) Cases() []Case {
	return r.Filter("")
}

// Lookup returns the case registered under name.
func (r *Registry) Lookup(name string) (Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Case{}, fmt.Errorf("case %q: %w", name, ErrUnknownCase)
	}
	return r.cases[i], nil
}

// Filter returns the cases whose name contains substr, in registration order.
func (r *Registry) Filter(substr string) []Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Case, 0, len(r.cases))
	for _, c := range r.cases {
		if strings.Contains(c.Name, substr) {
			out = append(out, c)
		}
	}
	return out
}
