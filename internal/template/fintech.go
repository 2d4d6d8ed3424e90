package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spinup-cli/spinup/internal/config"
	"github.com/spinup-cli/spinup/internal/fsutil"
)

// applyFintechDapp adds fintech-specific structure on top of the base
// layout. The frontend and backend sections only apply when the directory
// planner created those roots; otherwise they are skipped silently, so the
// template works for every project type.
func applyFintechDapp(root string, cfg config.ProjectConfig) error {
	frontendRoot := filepath.Join(root, "src", "frontend")
	if fsutil.DirExists(frontendRoot) {
		for _, dir := range []string{"pages", "components", "hooks", "styles"} {
			if err := os.MkdirAll(filepath.Join(frontendRoot, dir), 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", filepath.Join(frontendRoot, dir), err)
			}
		}
		if err := fsutil.WriteFile(filepath.Join(frontendRoot, "README.md"), frontendReadme, false); err != nil {
			return err
		}
	}

	backendRoot := filepath.Join(root, "src", "backend")
	if fsutil.DirExists(backendRoot) {
		for _, dir := range []string{"api", "services", "models", "jobs"} {
			if err := os.MkdirAll(filepath.Join(backendRoot, dir), 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", filepath.Join(backendRoot, dir), err)
			}
		}
		if err := fsutil.WriteFile(filepath.Join(backendRoot, "README.md"), backendReadme, false); err != nil {
			return err
		}
	}

	composePath := filepath.Join(root, "infra", "docker-compose.example.yml")
	if err := fsutil.WriteFile(composePath, dockerComposeExample, false); err != nil {
		return err
	}

	notesPath := filepath.Join(root, "docs", "fintech-notes.md")
	return fsutil.WriteFile(notesPath, renderFintechNotes(cfg), false)
}

const frontendReadme = `# Frontend layout (fintech-dapp template)

- ` + "`pages/`" + `: page-level components mapped to routes
- ` + "`components/`" + `: reusable UI components
- ` + "`hooks/`" + `: custom hooks (wallet connection, price polling)
- ` + "`styles/`" + `: global styles / Tailwind configuration
`

const backendReadme = `# Backend layout (fintech-dapp template)

- ` + "`api/`" + `: externally exposed endpoints (REST / GraphQL)
- ` + "`services/`" + `: business services (matching, risk control, accounts)
- ` + "`models/`" + `: data models / ORM
- ` + "`jobs/`" + `: scheduled jobs (settlement, stats, on-chain sync)
`

const dockerComposeExample = `version: "3.9"

services:
  backend:
    image: backend-image-placeholder
    container_name: backend
    restart: unless-stopped
    env_file:
      - ../.env
    ports:
      - "8000:8000"

  frontend:
    image: frontend-image-placeholder
    container_name: frontend
    restart: unless-stopped
    ports:
      - "3000:3000"
    environment:
      - API_BASE_URL=http://backend:8000

  db:
    image: postgres:16
    container_name: db
    restart: unless-stopped
    environment:
      - POSTGRES_USER=app
      - POSTGRES_PASSWORD=app
      - POSTGRES_DB=app
    volumes:
      - db_data:/var/lib/postgresql/data

volumes:
  db_data:
`

func renderFintechNotes(cfg config.ProjectConfig) string {
	return fmt.Sprintf(`# Fintech / dapp notes (generated by template)

Project: %s (%s)

## 1. Product positioning

- Target user:
- Usage context:
- Core problem solved:

## 2. Key business concepts

- Account model:
- Asset types (cash / contracts / points / on-chain assets):
- Trading instruments:
- Fees / spread:

## 3. Compliance & risk-control checklist

- User identity (KYC):
- Source-of-funds legitimacy:
- Risk disclosure:
- Risk-control rules (limits, thresholds):

## 4. Technical open questions

- Wallet / payment integration:
- Market-data source:
- Matching or pricing model:
- Logging & monitoring:
`, cfg.DisplayName, cfg.Name)
}
