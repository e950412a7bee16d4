// Package catalogue provides the read-only session template catalogue.
// Templates are loaded once per invocation, either from a user-supplied
// directory of YAML files or from the embedded defaults.
package catalogue

import (
	"github.com/npellerin/foulee/internal/domain"
)

// Catalogue holds the loaded templates in a stable order: files sorted by
// name, entries in file order. Selection tie-breaking depends on this
// order staying reproducible across runs.
type Catalogue struct {
	templates []domain.SessionTemplate
}

// ListAll returns every template in catalogue order.
func (c *Catalogue) ListAll() []domain.SessionTemplate {
	out := make([]domain.SessionTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// ByType returns the templates matching the given session type, in
// catalogue order. An empty result is legitimate; callers fall back to
// the full catalogue.
func (c *Catalogue) ByType(t domain.SessionType) []domain.SessionTemplate {
	var out []domain.SessionTemplate
	for _, tpl := range c.templates {
		if tpl.Type == t {
			out = append(out, tpl)
		}
	}
	return out
}

// Len returns the number of loaded templates.
func (c *Catalogue) Len() int {
	return len(c.templates)
}
