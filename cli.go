package main

import (
	"log/slog"
	"os"

	"github.com/automoto/devmenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "devmenu-demo",
	Short: "Bouncing ball arena with a live developer menu",
	Long: `Runs a small arena whose physics values can be tuned at runtime.
Press F1 to open the developer menu, Up/Down to select, Left/Right to adjust
sliders and Space to run actions.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	flags.Int(config.KeyWidth, config.C.Width, "logical screen width")
	flags.Int(config.KeyHeight, config.C.Height, "logical screen height")
	flags.Int(config.KeyTPS, config.C.TPS, "updates per second")
	flags.Bool(config.KeyOpen, config.Debug.StartOpen, "open the developer menu on start")
	flags.String(config.KeyLogLevel, config.Debug.LogLevel, "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}

	// Only flags given explicitly override the config file and environment
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			slog.Warn("Could not bind flag", "flag", f.Name, "error", err)
		}
	})

	if err := config.Load(v); err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(config.Debug.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Info("Starting", "width", config.C.Width, "height", config.C.Height, "tps", config.C.TPS)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("devmenu")
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(NewGame())
}
