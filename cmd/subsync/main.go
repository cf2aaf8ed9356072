// subsync reconciles the repositories listed in submodules.txt into the
// enclosing git repository as submodules: it keeps the ignore policy and
// the submodule registry consistent with the list, registers what is
// missing, repairs what is broken, and fast-forwards what is healthy.
//
// Usage:
//
//	subsync [--manifest <name>] [--dry-run] [--verbose]
//
// Exit code 0 covers normal completion, including runs where individual
// entries failed (surfaced as warnings). Exit code 1 means a fatal
// condition: no enclosing repository, or an unusable manifest or config.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"subsync/internal/config"
	"subsync/internal/console"
	"subsync/internal/fsutil"
	"subsync/internal/gitrepo"
	"subsync/internal/syncer"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	manifestFlag string
	dryRunFlag   bool
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "subsync",
	Short: "Sync a declarative repository list into git submodules",
	Long: "Subsync reads a newline-delimited list of repository URLs and reconciles\n" +
		"the enclosing repository against it: ignore rules, submodule records and\n" +
		"working-tree checkouts. Re-running is always safe; a stabilized tree is\n" +
		"left untouched.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&manifestFlag, "manifest", "", "manifest file name at the repository root (overrides config)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "report what would change without touching anything")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = version
}

func run(cmd *cobra.Command, _ []string) error {
	logger := initLogger(verboseFlag)
	out := console.New(cmd.OutOrStdout())

	cfg, err := config.Load()
	if err != nil {
		out.Errorf("invalid configuration: %v", err)
		return err
	}
	if manifestFlag != "" {
		cfg.Sync.ManifestName = manifestFlag
		if err := cfg.Validate(); err != nil {
			out.Errorf("invalid configuration: %v", err)
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		out.Errorf("cannot determine working directory: %v", err)
		return err
	}

	repo, err := gitrepo.Open(cwd, cfg.Sync.RemoteName)
	if err != nil {
		out.Errorf("%v", err)
		return err
	}
	logger.Debug().Str("root", repo.Root()).Msg("located parent repository")

	s := syncer.New(repo, fsutil.NewOSFileSystem(), out, logger, cfg.Sync, dryRunFlag)
	if _, err := s.Run(cmd.Context()); err != nil {
		out.Errorf("%v", err)
		return err
	}

	// Per-entry failures were already surfaced as warnings and reflected
	// in the summary; they do not fail the process.
	return nil
}

func initLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "subsync").Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
