// Package commands wires the clearpath CLI.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/buildinfo"
	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/config"
	"github.com/clearpath-dev/clearpath/internal/logger"
	"github.com/clearpath-dev/clearpath/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "clearpath",
		Short:   "Personal finance dashboard and statement importer",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(&dataDir, &verbose))
	rootCmd.AddCommand(newImportCommand(&dataDir, &verbose))
	rootCmd.AddCommand(newTransactionsCommand(&dataDir, &verbose))
	rootCmd.AddCommand(newReportCommand(&dataDir, &verbose))
	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newExportCommand(&dataDir, &verbose))
	rootCmd.AddCommand(newResetCommand(&dataDir, &verbose))

	return rootCmd
}

func configPath(dataDir string) string {
	return filepath.Join(dataDir, config.FileName)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clearpath"
	}
	return filepath.Join(home, ".clearpath")
}

// env bundles the services a command needs.
type env struct {
	dataDir    string
	log        zerolog.Logger
	store      *store.Store
	cfg        *config.Config
	classifier *category.Classifier
}

// loadEnv builds the command environment. A missing config file is fine: the
// defaults apply until init writes one.
func loadEnv(dataDir string, verbose bool) (*env, error) {
	cfg := config.Default("")
	loaded, err := config.Load(filepath.Join(dataDir, config.FileName))
	switch {
	case err == nil:
		cfg = loaded
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	rules, err := cfg.CategoryRules()
	if err != nil {
		return nil, err
	}

	return &env{
		dataDir:    dataDir,
		log:        logger.New(verbose),
		store:      store.New(dataDir),
		cfg:        cfg,
		classifier: category.NewClassifier(rules),
	}, nil
}
