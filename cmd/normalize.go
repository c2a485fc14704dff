package cmd

import (
	"fmt"
	"io"
	"os"

	"gamestats/core/config"
	"gamestats/core/logger"
	"gamestats/core/provider"
	corestats "gamestats/core/stats"
	"gamestats/feature/playerstats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	normalizeMode   string
	normalizeFields string
	normalizeJSON   bool
)

// normalizeCmd normalizes a saved provider response
var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a saved provider response",
	Long:  `Reads a provider profile (for example a snapshot) from a file, or stdin with '-', and prints the normalized records of a mode without calling the provider.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		return runNormalize(cmd.OutOrStdout(), body)
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeMode, "mode", provider.ModeAll, "Mode (all, solo, duo, squad)")
	normalizeCmd.Flags().StringVar(&normalizeFields, "fields", corestats.Wildcard, "Fields separated by ',', '|' or ';'")
	normalizeCmd.Flags().BoolVar(&normalizeJSON, "json", false, "Print records as JSON")
	RootCmd.AddCommand(normalizeCmd)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return body, nil
}

func runNormalize(out io.Writer, body []byte) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	profile, err := provider.ParseProfile(body)
	if err != nil {
		return err
	}
	section, err := profile.Section(cfg.Provider.ModeTable(), normalizeMode)
	if err != nil {
		return err
	}

	// Offline: no provider, cache or archive
	svc := playerstats.NewService(nil, cfg.Provider.ModeTable(), nil, corestats.DefaultNormalizer(), logg)
	records, err := svc.Transform(section, corestats.ParseFilter(normalizeFields))
	if err != nil {
		return err
	}

	logg.Debug("Normalized section",
		zap.String("mode", section.Mode),
		zap.String("shape", section.Shape.String()),
		zap.Int("records", len(records)),
	)

	if normalizeJSON {
		return printJSON(out, records)
	}
	printRecords(out, records)
	return nil
}
