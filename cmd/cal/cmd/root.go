package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/klauskaan/C-AL-Language-sub012/core/config"
	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cal",
	Short: "C/AL language tooling",
	Long: `cal reads Classic Dynamics NAV (C/AL) object exports and makes
them inspectable from the command line.

Commands:
  check     - parse an object and report diagnostics
  tokenize  - dump the token stream of an object
  version   - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./cal.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves the effective configuration. An explicit --config
// path must exist; the implicit ./cal.toml is optional.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if _, err := os.Stat("cal.toml"); err == nil {
		return config.Load("cal.toml")
	}
	return config.Default(), nil
}

// setupLogger builds the configured logger, tagged with a per-invocation
// run ID so log lines from concurrent runs can be told apart.
func setupLogger(cfg *config.Config) (*callog.Logger, error) {
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger, err := cfg.BuildLogger()
	if err != nil {
		return nil, err
	}
	return logger.WithField("run_id", uuid.NewString()), nil
}

// readInput returns document text from stdin (when piped), a file
// argument, or the arguments joined as literal text.
func readInput(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
