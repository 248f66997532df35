package main

import (
	"encoding/json"
	"fmt"
	"linkgap/internal/config"
	"linkgap/internal/gap"
	"linkgap/pkg/backlinks/linkrank"
	"linkgap/pkg/logger"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeCommand constructs the 'analyze' subcommand that runs a single gap
// analysis from the terminal. Progress goes to stderr, the JSON result to
// stdout, so the output can be piped.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <property>",
		Short: "Runs a gap analysis for a property and prints the result as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			competitors, _ := cmd.Flags().GetStringSlice("competitors")
			country, _ := cmd.Flags().GetString("country")
			refresh, _ := cmd.Flags().GetBool("refresh")

			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			provider := linkrank.New(&http.Client{Timeout: cfg.Provider.RequestTimeout}, cfg.Provider.Token)
			analyzer := gap.New(provider, strg, gap.NewOptions(cfg))

			progress := make(chan gap.Progress, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for p := range progress {
					if p.Site != "" {
						fmt.Fprintf(os.Stderr, "%s %s (%d/%d)\n", p.Stage, p.Site, p.Completed, p.Total)
					} else {
						fmt.Fprintln(os.Stderr, p.Stage)
					}
				}
			}()

			result, err := analyzer.Analyze(ctx, gap.Request{
				Property:    args[0],
				Competitors: competitors,
				Country:     country,
				Refresh:     refresh,
				Progress:    progress,
			})
			close(progress)
			<-done
			if err != nil {
				logger.Fatal(ctx, "analysis failed", zap.Error(err))
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode result", zap.Error(err))
			}
			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	cmd.Flags().StringSlice("competitors", nil, "Manual competitor list (bypasses discovery and caching)")
	cmd.Flags().String("country", "", "Country code for competitor discovery")
	cmd.Flags().Bool("refresh", false, "Force a fresh analysis even when a cached result exists")

	return cmd
}
