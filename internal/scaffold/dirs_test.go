package scaffold

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spinup-cli/spinup/internal/config"
)

func TestPlanDirectories_ExactSets(t *testing.T) {
	common := []string{"docs", "tests", "scripts", "infra", "src"}

	tests := []struct {
		projectType config.ProjectType
		extra       []string
	}{
		{
			projectType: config.TypeWebApp,
			extra: []string{
				"src/frontend", "src/backend", "src/shared",
				"tests/frontend", "tests/backend",
			},
		},
		{
			projectType: config.TypeServiceAPI,
			extra:       []string{"src/app", "src/core", "src/adapters"},
		},
		{
			projectType: config.TypeToolScript,
			extra:       []string{"src/cli", "src/core"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType), func(t *testing.T) {
			got := PlanDirectories(tt.projectType)

			want := append([]string{}, common...)
			for _, d := range tt.extra {
				want = append(want, filepath.FromSlash(d))
			}

			sort.Strings(got)
			sort.Strings(want)

			if len(got) != len(want) {
				t.Fatalf("PlanDirectories(%s) = %v; want exactly %v", tt.projectType, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("PlanDirectories(%s)[%d] = %q; want %q", tt.projectType, i, got[i], want[i])
				}
			}
		})
	}
}

func TestCreateDirectories_CreatesPlan(t *testing.T) {
	root := t.TempDir()

	if err := CreateDirectories(root, config.TypeWebApp); err != nil {
		t.Fatalf("CreateDirectories() error = %v", err)
	}

	for _, dir := range PlanDirectories(config.TypeWebApp) {
		path := filepath.Join(root, dir)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected directory %s: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestCreateDirectories_IsIdempotent(t *testing.T) {
	root := t.TempDir()

	if err := CreateDirectories(root, config.TypeToolScript); err != nil {
		t.Fatalf("CreateDirectories() error = %v", err)
	}
	if err := CreateDirectories(root, config.TypeToolScript); err != nil {
		t.Errorf("CreateDirectories() second call error = %v; want nil", err)
	}
}
