// Package cmd — export command.
// Loads a persisted document, renders its core sections through the
// reference resolver, and writes the chosen display format.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/specpipe/core"
	"github.com/gaurav-prasanna/specpipe/core/output"
	"github.com/gaurav-prasanna/specpipe/core/render"
	"github.com/gaurav-prasanna/specpipe/core/resolve"
)

var (
	flagExportHTML bool
	flagExportPDF  bool
	flagExportDir  string
)

var exportCmd = &cobra.Command{
	Use:   "export <specName>",
	Short: "Export an ingested document to a display format",
	Long: `Export loads the persisted JSON document for a spec, resolves its
cross-references, and writes the chosen output format next to it.

Examples:
  specpipe export cascade --html
  specpipe export cascade --pdf --output_dir ./data`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&flagExportHTML, "html", false, "Output HTML")
	exportCmd.Flags().BoolVar(&flagExportPDF, "pdf", false, "Output PDF")
	exportCmd.Flags().StringVar(&flagExportDir, "output_dir", "", "Directory holding persisted documents (default: current directory)")
}

func runExport(cmd *cobra.Command, args []string) error {
	specName := args[0]

	if flagExportHTML == flagExportPDF {
		return fmt.Errorf("exactly one output format is required: --html or --pdf")
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}

	writer, err := output.New(flagExportDir)
	if err != nil {
		return fmt.Errorf("initializing document store: %w", err)
	}

	doc, err := writer.Load(specName)
	if err != nil {
		return err
	}

	renderer := render.New(resolve.New(tables))
	module := moduleFor(tables, specName)

	var exporter core.Exporter
	if flagExportHTML {
		exporter = render.NewHTMLExporter(renderer, module)
	} else {
		exporter = render.NewPDFExporter(renderer, module)
	}

	data, err := exporter.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", specName, err)
	}

	path := filepath.Join(writer.Dir, specName+exporter.Extension())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// moduleFor maps a spec name onto its internal module identifier via the
// route table, falling back to the spec name itself.
func moduleFor(tables *resolve.Tables, specName string) string {
	if module, ok := tables.Routes[specName+".html"]; ok && module != "" {
		return module
	}
	return specName
}
