package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitegen-labs/sitegen/internal/site"
)

func testRequest(t *testing.T) *site.Request {
	t.Helper()
	req, err := site.NewRequest(site.Portfolio, time.Unix(1700000000, 0), t.TempDir())
	if err != nil {
		t.Fatalf("NewRequest() error: %v", err)
	}
	return req
}

func TestWriteAndParse(t *testing.T) {
	req := testRequest(t)
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	m := New(req, "sitegen", "1.2.3", []string{"framer-motion@latest"}, now)
	path, err := Write(dir, m)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q", path)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Name != "portfolio-1700000000" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.SiteType != "portfolio" {
		t.Errorf("SiteType = %q", got.SiteType)
	}
	if got.Generator.Version != "1.2.3" {
		t.Errorf("Generator.Version = %q", got.Generator.Version)
	}
	if got.CreatedAt != "2024-03-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if len(got.Dependencies) != 1 || got.Dependencies[0] != "framer-motion@latest" {
		t.Errorf("Dependencies = %v", got.Dependencies)
	}
}

func TestValidateFile_Written(t *testing.T) {
	req := testRequest(t)
	dir := t.TempDir()

	path, err := Write(dir, New(req, "sitegen", "dev", nil, time.Now()))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		keyword string
	}{
		{
			name: "missing name",
			yaml: `siteType: landing
generator: {name: sitegen, version: dev}
createdAt: "2024-03-01T12:00:00Z"
`,
			keyword: "required",
		},
		{
			name: "unknown site type",
			yaml: `name: blog-1700000000
siteType: blog
generator: {name: sitegen, version: dev}
createdAt: "2024-03-01T12:00:00Z"
`,
			keyword: "enum",
		},
		{
			name: "extra field",
			yaml: `name: landing-1700000000
siteType: landing
generator: {name: sitegen, version: dev}
createdAt: "2024-03-01T12:00:00Z"
theme: dark
`,
			keyword: "additionalProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %s has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_BadYAML(t *testing.T) {
	if _, err := Validate([]byte("name: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse_MissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Write(dir, New(testRequest(t), "sitegen", "dev", nil, time.Now())); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := Parse(filepath.Join(dir, FileName)); err != nil {
		t.Fatalf("Parse() after overwrite: %v", err)
	}
}
