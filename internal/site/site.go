package site

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SiteType identifies what kind of website is being generated.
type SiteType string

// Supported site types, in menu order.
const (
	Portfolio SiteType = "portfolio"
	Dashboard SiteType = "dashboard"
	Landing   SiteType = "landing"
)

// ErrInvalidChoice is returned for menu input that is not a number in range
// or a type name that is not recognized.
var ErrInvalidChoice = errors.New("invalid site type choice")

var (
	types  = []SiteType{Portfolio, Dashboard, Landing}
	titler = cases.Title(language.English)
)

// Types returns the supported site types in menu order.
func Types() []SiteType {
	out := make([]SiteType, len(types))
	copy(out, types)
	return out
}

// DisplayName returns the label shown in the menu.
func (t SiteType) DisplayName() string {
	if t == Landing {
		return "Landing Page"
	}
	return titler.String(string(t))
}

// Valid reports whether t is one of the supported types.
func (t SiteType) Valid() bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

// ParseChoice maps a 1-based menu number to a site type.
func ParseChoice(input string) (SiteType, error) {
	trimmed := strings.TrimSpace(input)
	num, err := strconv.Atoi(trimmed)
	if err != nil || num < 1 || num > len(types) {
		return "", fmt.Errorf("%w %q: choose 1-%d", ErrInvalidChoice, trimmed, len(types))
	}
	return types[num-1], nil
}

// Parse resolves a site type by name, case-insensitively.
func Parse(name string) (SiteType, error) {
	t := SiteType(strings.ToLower(strings.TrimSpace(name)))
	if !t.Valid() {
		return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidChoice, name, joinTypes())
	}
	return t, nil
}

func joinTypes() string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Request describes a single scaffold invocation.
type Request struct {
	SiteType    SiteType
	ProjectName string // "<siteType>-<unixTimestamp>"
	ParentDir   string // directory the project is created in
}

// ProjectName derives the project directory name for t at now.
// Two calls within the same second return the same name.
func ProjectName(t SiteType, now time.Time) string {
	return fmt.Sprintf("%s-%d", t, now.Unix())
}

// NewRequest builds a Request for t. An empty parentDir means the current directory.
func NewRequest(t SiteType, now time.Time, parentDir string) (*Request, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w %q", ErrInvalidChoice, t)
	}
	if parentDir == "" {
		parentDir = "."
	}
	return &Request{
		SiteType:    t,
		ProjectName: ProjectName(t, now),
		ParentDir:   parentDir,
	}, nil
}

// TargetDir returns the path of the project directory.
func (r *Request) TargetDir() string {
	return filepath.Join(r.ParentDir, r.ProjectName)
}
