package cmd

import (
	"fmt"
	"os"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
	"github.com/ThomasCrouzet/nagmaps/internal/detect"
	"github.com/ThomasCrouzet/nagmaps/internal/ui"
	"github.com/ThomasCrouzet/nagmaps/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a ~/.nagmaps.yml config file interactively",
	Long: `Detect the local monitoring site (OMD, Nagios or Icinga) and generate
a config file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			ui.PrintError("Failed to locate home directory", err.Error(), "pass --config")
			return reported(err)
		}
		configPath = p
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Looking for a monitoring site..."))
	site := detect.Detect(nil)

	answers, err := wizard.Run(site)
	if err != nil {
		ui.PrintError("Wizard aborted", err.Error(), "")
		return reported(fmt.Errorf("wizard: %w", err))
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		ui.PrintError("Failed to generate config", err.Error(), "")
		return reported(fmt.Errorf("generating config: %w", err))
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		ui.PrintError("Failed to write config", err.Error(), "")
		return reported(fmt.Errorf("writing config: %w", err))
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("nagmaps --output-dir <nagvis maps dir>"))
	fmt.Printf("           %s\n", ui.Hint("or edit "+configPath+" to fine-tune your config"))

	return nil
}
