package manifest

import (
	"time"

	"github.com/sitegen-labs/sitegen/internal/site"
)

// FileName is the manifest file written at the project root.
const FileName = ".sitegen.yaml"

// ProjectManifest records how a project was generated.
type ProjectManifest struct {
	Name         string    `yaml:"name"`
	SiteType     string    `yaml:"siteType"`
	Generator    Generator `yaml:"generator"`
	CreatedAt    string    `yaml:"createdAt"`
	Dependencies []string  `yaml:"dependencies,omitempty"`
}

// Generator identifies the tool build that produced the project.
type Generator struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// New builds a manifest for req.
func New(req *site.Request, generatorName, version string, deps []string, now time.Time) *ProjectManifest {
	return &ProjectManifest{
		Name:     req.ProjectName,
		SiteType: string(req.SiteType),
		Generator: Generator{
			Name:    generatorName,
			Version: version,
		},
		CreatedAt:    now.UTC().Format(time.RFC3339),
		Dependencies: deps,
	}
}
