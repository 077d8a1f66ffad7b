package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/internal/history"
	"github.com/msto63/lambda/internal/repl"
)

var (
	historyCount   int
	historyFailed  bool
	historySession string
	historyPrune   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists inputs recorded by the REPL",
	Long: `Lists inputs recorded by the REPL, oldest first. Inputs that
did not parse are marked with "!".

With --prune, entries older than history.retention are deleted instead.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "number of entries")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "only inputs that did not parse")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only entries of this session ID")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete entries older than the retention period")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !appConfig.History.Enabled {
		return lcerror.New("history is disabled in the configuration").WithCode(lcerror.CodeConfigError)
	}

	store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: appConfig.History.Path})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if historyPrune {
		retention := appConfig.History.Retention.Duration
		if retention <= 0 {
			return lcerror.New("history.retention is not set").WithCode(lcerror.CodeInvalidConfig)
		}
		deleted, err := store.Prune(ctx, retention)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Deleted %d entries older than %s\n", deleted, retention)
		return err
	}

	entries, err := store.Query(ctx, history.Filter{
		SessionID:  historySession,
		FailedOnly: historyFailed,
		Limit:      historyCount,
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = fmt.Fprintln(out, "No history yet")
		return err
	}
	_, err = fmt.Fprintln(out, repl.FormatHistory(entries))
	return err
}
