package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spinup-cli/spinup/internal/config"
)

// commonDirs are created for every project type.
var commonDirs = []string{"docs", "tests", "scripts", "infra", "src"}

// typeDirs is the type-specific subtree keyed by project type.
var typeDirs = map[config.ProjectType][]string{
	config.TypeWebApp: {
		filepath.Join("src", "frontend"),
		filepath.Join("src", "backend"),
		filepath.Join("src", "shared"),
		filepath.Join("tests", "frontend"),
		filepath.Join("tests", "backend"),
	},
	config.TypeServiceAPI: {
		filepath.Join("src", "app"),
		filepath.Join("src", "core"),
		filepath.Join("src", "adapters"),
	},
	config.TypeToolScript: {
		filepath.Join("src", "cli"),
		filepath.Join("src", "core"),
	},
}

// PlanDirectories returns the relative directories created for a project
// type: the common set first, then the type-specific subtree.
func PlanDirectories(projectType config.ProjectType) []string {
	plan := make([]string, 0, len(commonDirs)+len(typeDirs[projectType]))
	plan = append(plan, commonDirs...)
	plan = append(plan, typeDirs[projectType]...)
	return plan
}

// CreateDirectories creates every planned directory under root. Creating a
// directory that already exists is not an error.
func CreateDirectories(root string, projectType config.ProjectType) error {
	for _, dir := range PlanDirectories(projectType) {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}
