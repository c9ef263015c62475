package cmd

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/nagmaps/internal/source"
	"github.com/ThomasCrouzet/nagmaps/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and the host group source",
	Long: `Check that the configured source is usable (socket or file present)
and that the output and image directories are in place. Nothing is written.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the per-group map files")
	validateCmd.Flags().StringVar(&sourceName, "source", "", "host group source: livestatus, file, mock")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sourceName != "" {
		cfg.Source = sourceName
	}

	name := "defaults"
	if cfg.File != "" {
		name = cfg.File
	}
	fmt.Println(ui.Bold(fmt.Sprintf("Validating %s...", name)))

	passed := 0
	failed := 0

	src, err := source.New(cfg.Source, cfg)
	if err != nil {
		ui.ValidationErr("source", err.Error(), fmt.Sprintf("use one of %v", source.Names()))
		failed++
	} else {
		meta := src.Metadata()
		errs := src.Validate()
		if len(errs) == 0 {
			ui.ValidationOK(meta.DisplayName, "configuration valid")
			passed++
		}
		for _, ve := range errs {
			ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
			failed++
		}
	}

	if err := checkOutputDir(outputDir); err != nil {
		ui.ValidationErr("output-dir", fmt.Sprintf("directory does not exist: %s", outputDir), "create it or pass --output-dir")
		failed++
	} else {
		ui.ValidationOK("output-dir", outputDir)
		passed++
	}

	if info, err := os.Stat(cfg.ImagePath); err == nil && !info.IsDir() {
		ui.ValidationErr("image_path", fmt.Sprintf("not a directory: %s", cfg.ImagePath), "")
		failed++
	} else {
		detail := cfg.ImagePath
		if err != nil {
			detail += " (will be created)"
		}
		ui.ValidationOK("image_path", detail)
		passed++
	}

	if cfg.NagvisImagePath != "" {
		if _, err := os.Stat(cfg.NagvisImagePath); err != nil {
			ui.Warn(fmt.Sprintf("NagVis image path does not exist: %s", cfg.NagvisImagePath))
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
	} else {
		fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	}

	if failed > 0 {
		return reported(fmt.Errorf("%d validation errors", failed))
	}
	return nil
}
