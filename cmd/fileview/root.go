package main

import (
	"fmt"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/config"
	"github.com/Cyclone1070/fileview/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root pre-run has loaded config.
type app struct {
	v          *viper.Viper
	configFile string

	cfg     *config.Config
	logger  *zap.Logger
	service *adapter.Service
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "fileview",
		Short:         "Browse, read and search a directory tree",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ~/.config/fileview/fileview.yaml)")
	flags.String("root", ".", "directory to serve")
	flags.String("sandbox", config.SandboxModeStrict, "parent reference handling: strict or strip")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")

	a.mustBind(flags, map[string]string{
		"root":         "root",
		"sandbox.mode": "sandbox",
		"log.level":    "log-level",
		"log.format":   "log-format",
	})

	rootCmd.AddCommand(
		newServeCommand(a),
		newLsCommand(a),
		newCatCommand(a),
		newGrepCommand(a),
		newBrowseCommand(a),
	)
	return rootCmd
}

// mustBind binds config keys to flags. A missing flag is a programming error.
func (a *app) mustBind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// initialize loads config, sets up logging and wires the operations.
func (a *app) initialize() error {
	cfg, err := config.NewLoader(a.v, a.configFile).Load()
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	logger := logging.L()

	svc, err := adapter.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("invalid root %q: %w", cfg.Root, err)
	}

	a.cfg = cfg
	a.logger = logger
	a.service = svc
	return nil
}
