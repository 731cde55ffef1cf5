package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flanksource/wificard/card"
	"github.com/flanksource/wificard/pdf"
	"github.com/flanksource/wificard/prompt"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type generateFlags struct {
	name       string
	password   string
	output     string
	pdfOut     bool
	template   string
	outputDir  string
	converter  string
	configFile string
}

func newRootCommand() *cobra.Command {
	var flags generateFlags

	rootCmd := &cobra.Command{
		Use:   "wificard",
		Short: "Generate printable WiFi network cards as SVG, with optional PDF output",
		Long: `wificard fills a fixed SVG card template with a WiFi network name and
password and writes the result to the output directory. The card can also
be converted to PDF, preferring system vector converters (rsvg-convert,
inkscape) and falling back to a built-in rasterizer.

When name, password or output are not all given as flags, the missing
values are asked for interactively.`,
		Example: `  wificard -n MyHomeWiFi -p s3cr3t -o guest-room --pdf
  wificard
  wificard convert guest-room.svg`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.name, "name", "n", "", "WiFi network name")
	f.StringVarP(&flags.password, "password", "p", "", "WiFi network password")
	f.StringVarP(&flags.output, "output", "o", "", "Output file name (without extension)")
	f.BoolVar(&flags.pdfOut, "pdf", false, "Also generate a PDF version")
	f.StringVar(&flags.template, "template", "", "SVG template file overriding the embedded one")
	f.StringVar(&flags.outputDir, "output-dir", "", "Directory for generated files")
	f.StringVar(&flags.converter, "converter", "", "Preferred SVG converter (rsvg-convert, inkscape, raster)")
	f.StringVar(&flags.configFile, "config", "", "Config file (default "+card.DefaultConfigFile+")")

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	cfg, err := card.LoadConfig(flags.configFile)
	if err != nil {
		return err
	}
	if flags.template == "" {
		flags.template = cfg.Template
	}
	if flags.outputDir == "" {
		flags.outputDir = cfg.OutputDir
	}
	if flags.converter == "" {
		flags.converter = cfg.Converter
	}

	in := prompt.Card{
		NetworkName: flags.name,
		Password:    flags.password,
		Output:      flags.output,
		PDF:         flags.pdfOut || cfg.PDF,
	}
	if !in.Complete() {
		fmt.Println(prompt.Banner())
		// An explicit --pdf already answers the confirmation.
		askPDF := !cmd.Flags().Changed("pdf") && !cfg.PDF
		if err := prompt.FillMissing(prompt.NewAsker(), &in, askPDF); err != nil {
			return err
		}
	}

	gen := &card.Generator{
		TemplatePath: flags.template,
		Output:       card.NewOutputResolver(flags.outputDir),
	}
	svgPath, err := gen.Generate(in.NetworkName, in.Password, in.Output)
	if err != nil {
		return err
	}

	if !in.PDF {
		return nil
	}
	manager := pdf.NewManager()
	if err := manager.SetPreferred(flags.converter); err != nil {
		return err
	}
	return manager.Convert(cmd.Context(), svgPath, card.ReplaceExt(svgPath, ".pdf"), pdf.DefaultOptions())
}

func newConvertCommand() *cobra.Command {
	var (
		format    string
		converter string
		outputDir string
		dpi       int
	)

	cmd := &cobra.Command{
		Use:   "convert <svg-file>",
		Short: "Convert an existing SVG card to PDF or PNG",
		Long: `Convert a previously generated SVG card to a printable format. The file
is looked up relative to the output directory unless an absolute path is
given.`,
		Example: `  wificard convert guest-room
  wificard convert guest-room.svg --format png --dpi 300`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := card.NewOutputResolver(outputDir)
			svgPath, err := resolver.Resolve(card.EnsureExt(args[0], ".svg"))
			if err != nil {
				return err
			}
			if _, err := os.Stat(svgPath); err != nil {
				return fmt.Errorf("SVG file %q not found", svgPath)
			}

			opts := pdf.DefaultOptions()
			opts.Format = format
			if dpi > 0 {
				opts.DPI = dpi
			}

			manager := pdf.NewManager()
			if err := manager.SetPreferred(converter); err != nil {
				return err
			}
			return manager.Convert(cmd.Context(), svgPath, card.ReplaceExt(svgPath, "."+format), opts)
		},
	}

	cmd.Flags().StringVar(&format, "format", pdf.FormatPDF, "Output format (pdf, png)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "DPI for raster output")
	cmd.Flags().StringVar(&converter, "converter", "", "Preferred SVG converter (rsvg-convert, inkscape, raster)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory containing the SVG")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wificard %s (commit: %s, built: %s, go: %s)\n",
				version, commit, date, runtime.Version())
		},
	}
}
