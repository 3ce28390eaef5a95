package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newExportCommand(dataDir *string, verbose *bool) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("clearpath-backup-%s.json", time.Now().Format("2006-01-02"))
			}
			return runExport(e, out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default clearpath-backup-YYYY-MM-DD.json)")

	return cmd
}

func runExport(e *env, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	defer f.Close()

	if err := e.store.Backup(f); err != nil {
		return err
	}
	fmt.Println("Exported backup to", out)
	return nil
}
