package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sitegen-labs/sitegen/internal/branding"
	"github.com/sitegen-labs/sitegen/internal/logging"
	"github.com/sitegen-labs/sitegen/internal/manifest"
	"github.com/sitegen-labs/sitegen/internal/runtime"
	"github.com/sitegen-labs/sitegen/internal/site"
)

// Fixed external command arguments.
const (
	CreateAppPackage = "create-next-app@latest"
	AnimationPackage = "framer-motion@latest"
	PeerDepsFlag     = "--legacy-peer-deps"
)

var createAppFlags = []string{"--typescript", "--tailwind", "--eslint", "--app", "--src-dir"}

// CreateAppArgs returns the npx argument list that generates projectName.
func CreateAppArgs(projectName string) []string {
	args := []string{CreateAppPackage, projectName}
	return append(args, createAppFlags...)
}

// InstallArgs returns the npm argument list that adds the animation dependency.
func InstallArgs() []string {
	return []string{"install", AnimationPackage, PeerDepsFlag}
}

// Options configures a Scaffolder. Zero values fall back to defaults.
type Options struct {
	NPX       string // default "npx"
	NPM       string // default "npm"
	ParentDir string // where projects are created; default "."
	Version   string // generator version recorded in the project manifest
	Now       func() time.Time
	Logger    *slog.Logger
	Out       io.Writer // progress and follow-up instructions; default io.Discard
}

// Scaffolder runs the project generation pipeline.
type Scaffolder struct {
	runner runtime.Runner
	opts   Options
}

// Result holds the outcome of a successful generation.
type Result struct {
	ProjectName string
	TargetDir   string
	Files       []string // relative to TargetDir
}

// New returns a Scaffolder that executes commands through r.
func New(r runtime.Runner, opts Options) *Scaffolder {
	if opts.NPX == "" {
		opts.NPX = "npx"
	}
	if opts.NPM == "" {
		opts.NPM = "npm"
	}
	if opts.ParentDir == "" {
		opts.ParentDir = "."
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Scaffolder{runner: r, opts: opts}
}

// NewRequest builds a request for t using the scaffolder's clock and parent directory.
func (s *Scaffolder) NewRequest(t site.SiteType) (*site.Request, error) {
	return site.NewRequest(t, s.opts.Now(), s.opts.ParentDir)
}

// CreateWebsite generates a project for siteType and reports success.
// Failures are logged; nothing is cleaned up.
func (s *Scaffolder) CreateWebsite(ctx context.Context, siteType site.SiteType) bool {
	req, err := s.NewRequest(siteType)
	if err != nil {
		s.opts.Logger.Error("invalid site type", "site_type", string(siteType), "error", err)
		return false
	}

	result, err := s.Create(ctx, req)
	if err != nil {
		s.opts.Logger.Error("website generation failed",
			"project", req.ProjectName, "kind", KindOf(err).String(), "error", err)
		return false
	}

	PrintNextSteps(s.opts.Out, result)
	return true
}

// Create runs every step in order and stops at the first failure. The
// returned error is an *Error classified by Kind. A failure after the
// scaffold tool has run leaves the partial project on disk.
func (s *Scaffolder) Create(ctx context.Context, req *site.Request) (*Result, error) {
	log := s.opts.Logger.With("project", req.ProjectName)
	target := req.TargetDir()

	fmt.Fprintf(s.opts.Out, "\nCreating %s website: %s\n", req.SiteType, req.ProjectName)

	log.Info("running scaffold tool", "step", "create-app", "dir", req.ParentDir)
	if err := s.run(ctx, req.ParentDir, s.opts.NPX, CreateAppArgs(req.ProjectName)); err != nil {
		return nil, s.fail(req, KindScaffoldTool, "create-app", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, s.fail(req, KindFilesystem, "locate project", err)
	}
	if !info.IsDir() {
		return nil, s.fail(req, KindFilesystem, "locate project", fmt.Errorf("%s is not a directory", target))
	}

	fmt.Fprintf(s.opts.Out, "\nInstalling dependencies...\n")
	log.Info("installing dependencies", "step", "install", "dir", target, "package", AnimationPackage)
	if err := s.run(ctx, target, s.opts.NPM, InstallArgs()); err != nil {
		return nil, s.fail(req, KindInstall, "install", err)
	}

	files, err := writeTemplates(target)
	if err != nil {
		return nil, s.fail(req, KindFilesystem, "write templates", err)
	}

	m := manifest.New(req, branding.CLIName(), s.opts.Version, []string{AnimationPackage}, s.opts.Now())
	if _, err := manifest.Write(target, m); err != nil {
		return nil, s.fail(req, KindFilesystem, "write manifest", err)
	}
	files = append(files, manifest.FileName)

	log.Info("website created", "dir", target, "files", len(files))
	return &Result{
		ProjectName: req.ProjectName,
		TargetDir:   target,
		Files:       files,
	}, nil
}

func (s *Scaffolder) run(ctx context.Context, dir, bin string, args []string) error {
	out, err := s.runner.Run(ctx, dir, bin, args...)
	if err != nil {
		return err
	}
	if !out.Success() {
		return fmt.Errorf("%s exited with status %d", bin, out.ExitCode)
	}
	return nil
}

func (s *Scaffolder) fail(req *site.Request, kind Kind, step string, err error) error {
	return &Error{Kind: kind, Step: step, Project: req.ProjectName, Err: err}
}

// writeTemplates creates the components directory and overwrites the
// template files under target.
func writeTemplates(target string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(target, ComponentsDir), 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", ComponentsDir, err)
	}

	var written []string
	for _, tf := range templateFiles {
		content, err := templateFS.ReadFile(tf.Source)
		if err != nil {
			return written, fmt.Errorf("reading template %s: %w", tf.Source, err)
		}
		outPath := filepath.Join(target, filepath.FromSlash(tf.Path))
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", tf.Path, err)
		}
		written = append(written, tf.Path)
	}
	return written, nil
}

// PrintNextSteps writes the follow-up instructions for a generated project.
func PrintNextSteps(w io.Writer, result *Result) {
	fmt.Fprintf(w, "\nWebsite %s created successfully!\n", result.ProjectName)
	fmt.Fprintf(w, "\nTo view your site:\n")
	fmt.Fprintf(w, "1. cd %s\n", result.TargetDir)
	fmt.Fprintf(w, "2. npm run dev\n")
	fmt.Fprintf(w, "3. Open http://localhost:3000\n")
}
