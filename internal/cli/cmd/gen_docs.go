package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/tiles/internal/application/port"
	xdgadapter "github.com/bnema/tiles/internal/infrastructure/xdg"
)

const docsDirPerm = 0o755

var xdgPaths port.XDGPaths = xdgadapter.New()

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files (for websites/wikis)

By default, man pages are installed to $XDG_DATA_HOME/man/man1/ so they
are immediately available via 'man tiles'. You may need to run 'mandb'
to update the man page index.

Examples:
  tiles gen-docs                           # Install man pages
  tiles gen-docs --format markdown         # Generate markdown docs in ./docs
  tiles gen-docs --output ./man            # Generate to local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			dir, err := xdgPaths.ManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = dir
		case "markdown":
			outputDir = "./docs"
		}
	}

	// Disable auto-generation timestamp in the footer for reproducible builds
	rootCmd.DisableAutoGenTag = true

	out := cmd.OutOrStdout()
	switch genDocsFormat {
	case "man", "markdown":
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if genDocsFormat == "man" {
		return generateManPages(out, outputDir)
	}
	return generateMarkdown(out, outputDir)
}

func generateManPages(w io.Writer, outputDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "TILES",
		Section: "1",
		Source:  "tiles " + buildInfo.Version,
		Manual:  "Tiles Manual",
		Date:    &now,
	}

	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	fmt.Fprintf(w, "Installed man pages to %s\n", outputDir)
	fmt.Fprintln(w, "Run 'mandb' if 'man tiles' doesn't work immediately.")
	listGenerated(w, outputDir, ".1")
	return nil
}

func generateMarkdown(w io.Writer, outputDir string) error {
	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	fmt.Fprintf(w, "Generated markdown docs in %s\n", outputDir)
	listGenerated(w, outputDir, ".md")
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
