package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sitegen-labs/sitegen/internal/config"
	"github.com/sitegen-labs/sitegen/internal/manifest"
	"github.com/sitegen-labs/sitegen/internal/runtime"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	checkRuntime  bool
	checkConfig   bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node, npm, and npx are available")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the config file is readable")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a project's .sitegen.yaml at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Node.js toolchain is ready",
	Long:  `Run diagnostic checks on the tools the generator shells out to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkRuntime || checkConfig || checkManifest != ""

		if !anyFlag || checkRuntime {
			if err := runRuntimeCheck(cmd, out); err != nil {
				return err
			}
		}
		if !anyFlag || checkConfig {
			runConfigCheck(out)
		}
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}
		return nil
	},
}

func runRuntimeCheck(cmd *cobra.Command, out io.Writer) error {
	settings := config.Current()
	// Version probes should not echo into the report.
	runner := newRunner(cmd)
	if er, ok := runner.(*runtime.ExecRunner); ok {
		er.Stdout, er.Stderr, er.Stdin = io.Discard, io.Discard, nil
	}

	fmt.Fprintln(out, headerStyle.Render("Runtime check:"))
	tools := []struct {
		bin        string
		constraint string
	}{
		{"node", settings.MinNodeVersion},
		{settings.NPM, ""},
		{settings.NPX, ""},
	}

	failed := 0
	for _, tool := range tools {
		status := runtime.CheckTool(cmd.Context(), runner, tool.bin, tool.constraint)
		switch {
		case !status.Found:
			failed++
			fmt.Fprintf(out, "  %s %s not found: %v\n", statusTag("MISS"), tool.bin, status.Err)
		case status.Err != nil:
			failed++
			fmt.Fprintf(out, "  %s %s %s: %v\n", statusTag("FAIL"), tool.bin, status.Version, status.Err)
		case !status.Satisfied:
			failed++
			fmt.Fprintf(out, "  %s %s %s does not satisfy %s\n", statusTag("FAIL"), tool.bin, status.Version, status.Constraint)
		default:
			fmt.Fprintf(out, "  %s %s %s\n", statusTag(" OK "), tool.bin, status.Version)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d runtime check(s) failed", failed)
	}
	return nil
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, headerStyle.Render("Config check:"))
	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "  %s %s not found, using defaults\n", statusTag("INFO"), path)
		return
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var raw map[string]interface{}
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		fmt.Fprintf(out, "  %s %s: %v\n", statusTag("FAIL"), path, err)
		return
	}
	fmt.Fprintf(out, "  %s %s\n", statusTag(" OK "), path)
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Manifest validation:"), path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  %s %v\n", statusTag("FAIL"), err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintf(out, "  %s Valid manifest\n", statusTag(" OK "))
			return nil
		}
		fmt.Fprintf(out, "  %s Valid %s project: %s (generator %s)\n", statusTag(" OK "), m.SiteType, m.Name, m.Generator.Version)
		return nil
	}

	fmt.Fprintf(out, "  %s %d validation issue(s):\n", statusTag("FAIL"), len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
