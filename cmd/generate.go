package cmd

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/nagmaps/internal/generate"
	"github.com/ThomasCrouzet/nagmaps/internal/logging"
	"github.com/ThomasCrouzet/nagmaps/internal/source"
	"github.com/ThomasCrouzet/nagmaps/internal/ui"
	"github.com/spf13/cobra"
)

var (
	dumpConfig   bool
	outputDir    string
	overviewFile string
	sourceName   string
)

func init() {
	rootCmd.Flags().BoolVarP(&dumpConfig, "dump-config", "D", false, "print the effective configuration and exit")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the per-group map files")
	rootCmd.Flags().StringVar(&overviewFile, "overview-file", generate.DefaultOverviewFile, "path of the overview map")
	rootCmd.Flags().StringVar(&sourceName, "source", "", "host group source: livestatus, file, mock")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sourceName != "" {
		cfg.Source = sourceName
	}

	if dumpConfig {
		out, err := cfg.Dump()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	if err := checkOutputDir(outputDir); err != nil {
		ui.PrintError("Output directory does not exist", outputDir, "create it or pass --output-dir")
		return reported(err)
	}

	log := logging.New(os.Stderr, cfg.Debug)

	src, err := source.New(cfg.Source, cfg)
	if err != nil {
		ui.PrintError("Invalid source", err.Error(), fmt.Sprintf("set source to one of %v", source.Names()))
		return reported(err)
	}

	gen := generate.New(cfg, src, outputDir, log)
	gen.OverviewFile = overviewFile
	gen.Warn = ui.Warn
	gen.Written = ui.MapWritten

	fmt.Println(ui.Bold(fmt.Sprintf("Fetching host groups from %s...", src.Metadata().DisplayName)))

	res, err := gen.Run(cmd.Context())
	if err != nil {
		ui.PrintError("Map generation failed", err.Error(), "run 'nagmaps validate' to check the configuration")
		return reported(err)
	}

	ui.Success(fmt.Sprintf("Generated %d maps from %d host groups, overview in %s",
		len(res.Files), len(res.Groups), res.Overview))
	return nil
}

// checkOutputDir fails unless dir is an existing directory.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %s does not exist", dir)
	}
	return nil
}
