package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	lcast "github.com/msto63/lambda/foundation/lambda/ast"
	"github.com/msto63/lambda/internal/history"
	"github.com/msto63/lambda/pkg/core/config"
	"github.com/msto63/lambda/pkg/core/health"
	"github.com/msto63/lambda/pkg/core/version"
)

// selfTest is parsed by the parser check
const selfTest = `compose = \f. \g. \x. f (g x)`

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Checks the configuration, history store and parser",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	r := health.NewRegistry("lambda", version.Version)

	r.RegisterFunc("config", func(ctx context.Context) health.CheckResult {
		if err := appConfig.Validate(); err != nil {
			return health.Unhealthy(err)
		}
		source := cfgFile
		if source == "" {
			source = "$" + config.EnvConfigPath + " or defaults"
		}
		return health.Healthy("valid (" + source + ")")
	})

	r.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
		if !appConfig.History.Enabled {
			return health.Degraded("disabled")
		}
		store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: appConfig.History.Path})
		if err != nil {
			return health.Unhealthy(err)
		}
		defer store.Close()

		n, err := store.Count(ctx)
		if err != nil {
			return health.Unhealthy(err)
		}
		return health.Healthy(fmt.Sprintf("%d entries in %s", n, appConfig.History.Path))
	})

	r.RegisterFunc("log_output", func(ctx context.Context) health.CheckResult {
		switch out := appConfig.General.LogOutput; out {
		case "stderr", "stdout", "discard":
			return health.Healthy(out)
		default:
			if _, err := os.Stat(filepath.Dir(out)); err != nil {
				return health.Unhealthy(err)
			}
			return health.Healthy(out)
		}
	})

	r.RegisterFunc("parser", func(ctx context.Context) health.CheckResult {
		result, err := newFrontend().Parse(selfTest)
		if err != nil {
			return health.Unhealthy(err)
		}
		if got := lcast.Format(result.Tree); got != selfTest {
			return health.Unhealthy(lcerror.Newf("round trip mismatch: %q", got).WithCode(lcerror.CodeInternal))
		}
		return health.Healthy("self-test passed")
	})

	report := r.CheckWithTimeout(10 * time.Second)

	out := cmd.OutOrStdout()
	for _, c := range report.Checks {
		fmt.Fprintf(out, "%-10s %-9s %s\n", c.Name, c.Status, c.Message)
	}
	fmt.Fprintf(out, "\n%s\n", report)

	if !report.Healthy() {
		return lcerror.New("one or more checks failed").WithCode(lcerror.CodeInternal)
	}
	return nil
}
