package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TonnyWong1052/picker/internal/config"
	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/logging"
)

var _version string

var (
	flagDebug      bool
	flagLogConsole bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "picker",
	Short: config.AppDescription,
	Long: `picker shows a list in the terminal and prints what you choose.

Use 'picker one' to choose a single item and 'picker many' to choose several.
The list is drawn on stderr and the result is printed on stdout, so picker
works inside command substitution.`,
	Example: `  picker one red green blue
  git branch --format='%(refname:short)' > /tmp/b && picker one --from-file /tmp/b
  picker many --open-url 'https://pkg.go.dev/{}' fmt io os`,
	Version:           versionString(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLogConsole, "log-console", false, "also write logs to stderr")

	rootCmd.AddCommand(oneCmd, manyCmd, configCmd)
}

// setup loads the configuration and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	startLogging(cmd)
	return nil
}

// setupLenient lets the config commands run on a file that fails validation,
// so the file can still be located and repaired.
func setupLenient(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadLenient()
	if loaded == nil {
		return err
	}
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), pterm.Warning.Sprintfln("Configuration is invalid: %v", err))
	}
	cfg = loaded
	startLogging(cmd)
	return nil
}

func startLogging(cmd *cobra.Command) {
	opts := cfg.LoggingOptions()
	if flagDebug || os.Getenv(config.EnvPickerDebug) == "1" {
		opts.Level = logging.DebugLevel
	}
	if flagLogConsole {
		switch opts.Output {
		case config.LogOutputFile:
			opts.Output = config.LogOutputBoth
		case config.LogOutputNone:
			opts.Output = config.LogOutputConsole
		}
	}
	if err := logging.Init(opts); err != nil {
		// Logging is best effort; the picker works without it.
		fmt.Fprint(os.Stderr, pterm.Warning.Sprintfln("Logging disabled: %v", err))
	}
	logging.WithComponent("cli").WithField("command", cmd.CommandPath()).Debug("starting")
}

// exitCode reports err to the user and maps it to the process exit status.
func exitCode(err error) int {
	apperrors.NewConsoleErrorHandler(os.Stderr, flagDebug).Handle(err)
	return apperrors.ExitCode(err)
}

func versionString() string {
	if strings.TrimSpace(_version) == "" {
		return "v0.1.0"
	}
	return _version
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.WithComponent("cli").WithError(err).Debug("command failed")
	}
	code := exitCode(err)
	if cerr := logging.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	os.Exit(code)
}
