package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	lclog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda"
	"github.com/msto63/lambda/pkg/core/config"
	"github.com/msto63/lambda/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	// Set up by the root command before any subcommand runs
	appConfig *config.Config
	logger    *lclog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Lambda calculus front end",
	Long: `lambda tokenizes and parses untyped lambda calculus and shows
the resulting syntax trees.

  \x. x          abstraction
  f x y          application, left associative
  id = \x. x     top-level assignment
  42             32-bit integer literal

Run "lambda repl" for an interactive session.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LAMBDA_CONFIG or ./configs/lambda.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration and creates the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	logCfg := logging.LoggerConfig{
		ServiceName: "lambda",
		Level:       appConfig.General.LogLevel,
		Format:      appConfig.General.LogFormat,
		Output:      appConfig.General.LogOutput,
	}
	if verbose {
		logCfg.Level = "debug"
	}
	// A full screen UI owns the terminal; console logs would corrupt it
	if cmd == replCmd && !replPlain && logCfg.Output == "stderr" && isTerminal(os.Stdin) {
		logCfg.Output = "discard"
	}

	logger, logCloser, err = logging.NewLogger(logCfg)
	if err != nil {
		printError("failed to create logger", err)
		return err
	}
	lclog.SetDefault(logger)

	logger.Debug("configuration loaded", lclog.Fields{
		"command":          cmd.Name(),
		"config":           cfgFile,
		"max_input_length": appConfig.Parser.MaxInputLength,
	})
	return nil
}

func teardown() error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func newFrontend() *lambda.Frontend {
	return lambda.New(lambda.Options{
		Logger:         logger,
		MaxInputLength: appConfig.Parser.MaxInputLength,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
