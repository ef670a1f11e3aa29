package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"revis"
	"revis/ansi"
)

// Config is loaded from the environment (and an optional revis.env file in
// the working directory). Flags override it.
type Config struct {
	Palette string `mapstructure:"REVIS_PALETTE"`
	Verbose bool   `mapstructure:"REVIS_VERBOSE"`
}

func loadConfig() (config Config, err error) {
	viper.SetDefault("REVIS_PALETTE", "classic")
	viper.SetDefault("REVIS_VERBOSE", false)

	viper.AddConfigPath(".")
	viper.SetConfigName("revis")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

func paletteByName(name string) (revis.Palette, error) {
	switch name {
	case "classic":
		return revis.BackgroundColors, nil
	case "alt":
		return revis.AltBackgroundColors, nil
	default:
		return nil, fmt.Errorf("unknown palette %q (want classic or alt)", name)
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	var (
		pattern  string
		textFile string
		template string
		palette  string
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "revis [text]",
		Short: "Highlight regex capture groups and their matches in a text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose || config.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			if textFile != "" {
				data, err := os.ReadFile(textFile)
				if err != nil {
					return err
				}
				text = string(data)
			}

			colors, err := paletteByName(palette)
			if err != nil {
				return err
			}

			started := time.Now()
			bundle := revis.Recompute(revis.Inputs{
				Pattern:  pattern,
				Text:     text,
				Template: template,
				FontID:   "monospace",
				Palette:  colors,
			}, nil)
			log.Debug().
				Dur("elapsed", time.Since(started)).
				Int("groups", len(bundle.Regex.Groups)).
				Int("matches", len(bundle.Input.Matches)).
				Msg("recompute")

			cmd.Print(ansi.RenderBundle(bundle))
			if bundle.Err != nil {
				cmd.SilenceUsage = true
				return bundle.Err
			}
			return nil
		},
	}

	root.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression to visualise")
	root.Flags().StringVarP(&textFile, "file", "f", "", "read the input text from a file")
	root.Flags().StringVarP(&template, "replace", "r", revis.DefaultTemplate, "replacement template")
	root.Flags().StringVar(&palette, "palette", config.Palette, "highlight palette (classic or alt)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
