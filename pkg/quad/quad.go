// Package quad estimates definite integrals of expression trees by
// numeric quadrature. Rules are looked up by name so a shell can select
// one from a flag.
package quad

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Rule approximates the integral of a tree over [a, b] with step h.
// Domain errors inside the integrand propagate as NaN/Inf into the sum
// with no interception: an undefined region yields an undefined area.
type Rule interface {
	Name() string
	Integrate(n expr.Node, a, b, h float64) float64
}

var registry = map[string]func() Rule{}

// Register adds a rule constructor to the registry.
func Register(name string, constructor func() Rule) {
	registry[name] = constructor
}

// Get returns a rule by name.
func Get(name string) (Rule, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown quadrature rule: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered rule names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
