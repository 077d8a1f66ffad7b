package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	lclog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/internal/history"
	"github.com/msto63/lambda/internal/printer"
	"github.com/msto63/lambda/internal/repl"
)

var (
	replPlain     bool
	replNoHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts the interactive REPL",
	Long: `Starts the interactive lambda REPL.

Enter an expression or an assignment to see its syntax tree.
Lines starting with ":" are commands, ":help" lists them.

Keys:
  Enter       parse the line
  ↑/↓         input history
  PgUp/PgDn   scroll
  Ctrl+L      clear the transcript
  Ctrl+C      quit

When stdin is not a terminal, or with --plain, the REPL reads
lines without the full screen UI.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replPlain, "plain", false, "line mode without the full screen UI")
	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "do not record inputs")
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	plain := replPlain || !isTerminal(os.Stdin)

	var store history.Store
	if appConfig.History.Enabled && !replNoHistory {
		sqlite, err := history.NewSQLiteStore(history.SQLiteConfig{Path: appConfig.History.Path})
		if err != nil {
			// The REPL still works without history
			logger.WarnWithErr("history unavailable", err, lclog.Fields{"path": appConfig.History.Path})
		} else {
			if retention := appConfig.History.Retention.Duration; retention > 0 {
				if n, err := sqlite.Prune(ctx, retention); err != nil {
					logger.WarnWithErr("failed to prune history", err)
				} else if n > 0 {
					logger.Info("history pruned", lclog.Fields{"deleted": n})
				}
			}
			store = sqlite
		}
	}

	// Output is rendered into buffers, so terminal detection happens here
	color := printer.ColorNever
	if appConfig.REPL.Color && (!plain || isTerminal(os.Stdout)) {
		color = printer.ColorAlways
	}

	session := repl.NewSession(repl.Config{
		Frontend: newFrontend(),
		History:  store,
		Logger:   logger,
		Options: repl.Options{
			ShowAST:    appConfig.REPL.ShowAST,
			ShowTokens: appConfig.REPL.ShowTokens,
			ShowSource: appConfig.REPL.ShowSource,
			ShowType:   appConfig.REPL.ShowType,
		},
		Color:        color,
		CacheSize:    appConfig.Parser.CacheSize,
		HistoryLimit: appConfig.History.Limit,
	})
	defer session.Close()

	if plain {
		return repl.RunPlain(ctx, session, cmd.InOrStdin(), cmd.OutOrStdout(), appConfig.REPL.Prompt)
	}
	return repl.Run(ctx, session, appConfig.REPL.Prompt)
}
