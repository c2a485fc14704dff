package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gamestats/core/config"
	"gamestats/core/logger"
	"gamestats/core/provider"
	corestats "gamestats/core/stats"
	"gamestats/feature/playerstats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statsGame   string
	statsFields string
	statsRaw    bool
	statsJSON   bool
)

// statsCmd fetches and prints the normalized stats of a player
var statsCmd = &cobra.Command{
	Use:   "stats [platform] [username] [mode]",
	Short: "Fetch the normalized stats of a player",
	Long:  `Fetches a player profile from the provider and prints the normalized records of a mode (all, solo, duo, squad).`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := provider.ModeAll
		if len(args) == 3 {
			mode = args[2]
		}
		return runStats(cmd.Context(), cmd.OutOrStdout(), playerstats.Request{
			Game:     statsGame,
			Platform: args[0],
			Username: args[1],
			Mode:     mode,
			Fields:   corestats.ParseFilter(statsFields),
		})
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsGame, "game", provider.TrackerName, "Game provider to query")
	statsCmd.Flags().StringVar(&statsFields, "fields", corestats.Wildcard, "Fields separated by ',', '|' or ';'")
	statsCmd.Flags().BoolVar(&statsRaw, "raw", false, "Print the raw provider section")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print records as JSON")
	RootCmd.AddCommand(statsCmd)
}

func runStats(ctx context.Context, out io.Writer, req playerstats.Request) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	a, err := bootstrap(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer a.close()

	logg.Debug("Fetching player stats",
		zap.String("platform", req.Platform),
		zap.String("username", req.Username),
		zap.String("mode", req.Mode),
	)

	if statsRaw {
		raw, err := a.stats.Raw(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out, raw)
	}

	records, err := a.stats.Stats(ctx, req)
	if err != nil {
		return err
	}
	if statsJSON {
		return printJSON(out, records)
	}

	fmt.Fprintf(out, "\n--- %s / %s / %s ---\n", req.Platform, req.Username, req.Mode)
	printRecords(out, records)
	return nil
}

func printRecords(out io.Writer, records []corestats.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No stats found.")
		return
	}

	width := 0
	for _, r := range records {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	for _, r := range records {
		fmt.Fprintf(out, "%-*s  %s  (%s)\n", width, r.Label, r.Display, r.Field)
	}
}

func printJSON(out io.Writer, v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return err
		}
		v = decoded
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
