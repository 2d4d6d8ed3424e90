package config

// ProjectType represents a valid project type.
type ProjectType string

const (
	// TypeWebApp scaffolds a frontend/backend/shared source split.
	TypeWebApp ProjectType = "web-app"

	// TypeServiceAPI scaffolds an app/core/adapters service layout.
	TypeServiceAPI ProjectType = "service-api"

	// TypeToolScript scaffolds a cli/core layout for command-line tools.
	TypeToolScript ProjectType = "tool-script"
)

// ValidTypes returns all valid project types.
func ValidTypes() []ProjectType {
	return []ProjectType{TypeWebApp, TypeServiceAPI, TypeToolScript}
}

// IsValidType returns true if the given name is a valid project type.
func IsValidType(name string) bool {
	for _, t := range ValidTypes() {
		if string(t) == name {
			return true
		}
	}
	return false
}

// Template represents a valid scaffold template name.
type Template string

const (
	// TemplateDefault applies no additions beyond the base type layout.
	TemplateDefault Template = "default"

	// TemplateFintechDapp adds fintech-specific directories, an example
	// deployment descriptor, and a business-notes document.
	TemplateFintechDapp Template = "fintech-dapp"
)

// DefaultTemplate is the template used when none is specified.
const DefaultTemplate = TemplateDefault

// ValidTemplates returns all valid template names.
func ValidTemplates() []Template {
	return []Template{TemplateDefault, TemplateFintechDapp}
}

// IsValidTemplate returns true if the given name is a valid template.
func IsValidTemplate(name string) bool {
	for _, t := range ValidTemplates() {
		if string(t) == name {
			return true
		}
	}
	return false
}

// TypeNames returns the valid project types as plain strings.
func TypeNames() []string {
	types := ValidTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// TemplateNames returns the valid template names as plain strings.
func TemplateNames() []string {
	templates := ValidTemplates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = string(t)
	}
	return names
}
