// Package template applies named scaffolding templates on top of the base
// type-specific layout.
package template

import (
	"github.com/spinup-cli/spinup/internal/config"
)

// handler applies one template against a project root.
type handler func(root string, cfg config.ProjectConfig) error

// handlers dispatches template names to their implementation. The default
// template needs no handler: the base layout is already complete. Template
// names are validated during configuration resolution, so an unknown name
// here is simply ignored.
var handlers = map[config.Template]handler{
	config.TemplateFintechDapp: applyFintechDapp,
}

// Apply runs the handler registered for cfg.Template against root.
func Apply(root string, cfg config.ProjectConfig) error {
	h, ok := handlers[cfg.Template]
	if !ok {
		return nil
	}
	return h(root, cfg)
}
