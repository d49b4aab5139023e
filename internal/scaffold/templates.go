package scaffold

import (
	"embed"
	"fmt"
)

//go:embed templates/page.tsx templates/MainContent.tsx
var templateFS embed.FS

// Output paths, relative to the project root.
const (
	PagePath        = "src/app/page.tsx"
	ComponentsDir   = "src/components"
	MainContentPath = "src/components/MainContent.tsx"
)

type templateFile struct {
	Path   string // destination, relative to the project root
	Source string // path inside templateFS
}

// Written in order. Content is identical for every site type.
var templateFiles = []templateFile{
	{Path: PagePath, Source: "templates/page.tsx"},
	{Path: MainContentPath, Source: "templates/MainContent.tsx"},
}

// Template returns the literal content written to relPath.
func Template(relPath string) ([]byte, error) {
	for _, tf := range templateFiles {
		if tf.Path == relPath {
			return templateFS.ReadFile(tf.Source)
		}
	}
	return nil, fmt.Errorf("no template for %s", relPath)
}

// TemplatePaths returns the destination paths of all template files.
func TemplatePaths() []string {
	paths := make([]string, len(templateFiles))
	for i, tf := range templateFiles {
		paths[i] = tf.Path
	}
	return paths
}
