package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
	"github.com/ThomasCrouzet/nagmaps/internal/logo"
	"github.com/ThomasCrouzet/nagmaps/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// version is set at build time with -ldflags "-X github.com/ThomasCrouzet/nagmaps/cmd.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "nagmaps",
	Short: "Generate NagVis maps from monitoring host groups",
	Long: `nagmaps queries Livestatus for host groups, filters them by prefix,
postfix, include and exclude rules, and writes one NagVis map per group
plus an overview map.

Remote logos (http/https) are downloaded once into image_path and the map
references the downloaded file name. If the download fails, the map keeps
the URL. Older genmaps.py setups always wrote the URL.

Configuration is read from ~/.nagmaps.yml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, os.Args[1:])
}

// execute runs the command line args. Errors not already printed by a
// command, such as unknown flags or commands, are printed here.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !isReported(err) {
		ui.PrintError(err.Error(), "", "run 'nagmaps --help' for usage")
	}
	return err
}

func init() {
	logo.Version = version
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.nagmaps.yml)")
}

// loadConfig reads the config file and builds the effective configuration.
// A missing default config file is not an error.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			ui.PrintError("Failed to locate home directory", err.Error(), "pass --config")
			return nil, reported(err)
		}
		path = p
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("nagmaps")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if !config.IsNotFound(err) || cfgFile != "" {
			ui.PrintError("Failed to read config", err.Error(), "")
			return nil, reported(err)
		}
		ui.Notice(fmt.Sprintf("no config file found at %s, using defaults", path))
	}

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("Failed to load config", err.Error(), "run 'nagmaps init' to create a config file")
		return nil, reported(err)
	}
	return cfg, nil
}
