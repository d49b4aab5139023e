package cli

import (
	"fmt"

	"github.com/sitegen-labs/sitegen/internal/config"
	"github.com/sitegen-labs/sitegen/internal/prompt"
	"github.com/sitegen-labs/sitegen/internal/scaffold"
	"github.com/sitegen-labs/sitegen/internal/site"
	"github.com/spf13/cobra"
)

var createOutputDir string

func init() {
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Directory to create the project in (default: output_dir setting)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [portfolio|dashboard|landing]",
	Short: "Scaffold a new website project",
	Long: `Scaffold a new Next.js website named <site-type>-<unix-timestamp>.

With no argument, an interactive menu asks for the site type.

Examples:
  sitegen create
  sitegen create landing --output-dir ~/sites`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	var (
		siteType site.SiteType
		err      error
	)
	if len(args) == 1 {
		siteType, err = site.Parse(args[0])
	} else {
		siteType, err = prompt.SelectSiteType(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	settings := config.Current()
	parentDir := settings.OutputDir
	if createOutputDir != "" {
		parentDir = createOutputDir
	}

	s := scaffold.New(newRunner(cmd), scaffold.Options{
		NPX:       settings.NPX,
		NPM:       settings.NPM,
		ParentDir: parentDir,
		Version:   buildVersion,
		Logger:    logger,
		Out:       cmd.OutOrStdout(),
	})

	req, err := s.NewRequest(siteType)
	if err != nil {
		return err
	}

	result, err := s.Create(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("creating %s website: %w", siteType, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("\nDone."))
	scaffold.PrintNextSteps(cmd.OutOrStdout(), result)
	return nil
}
