package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/importlog"
	"github.com/clearpath-dev/clearpath/internal/model"
	"github.com/clearpath-dev/clearpath/internal/statement"
)

func newImportCommand(dataDir *string, verbose *bool) *cobra.Command {
	var all bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Parse a bank statement and add its transactions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("pass a statement file or --all, not both")
			}

			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if all {
				return runImportAll(e, dryRun)
			}
			return runImportFile(e, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "import every statement in the statements/ inbox")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview without saving")

	return cmd
}

func runImportAll(e *env, dryRun bool) error {
	files, err := statement.ScanInbox(e.dataDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No statements waiting in", e.dataDir+"/statements")
		return nil
	}

	for _, f := range files {
		if err := runImportFile(e, f.Path, dryRun); err != nil {
			return err
		}
		if !dryRun {
			if err := statement.MarkProcessed(e.dataDir, f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func runImportFile(e *env, path string, dryRun bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	parser := statement.NewParser(e.classifier)
	res, err := parser.Parse(f.Name(), f)
	if err != nil {
		if res != nil {
			printDebug(res.Debug)
		}
		return err
	}

	e.log.Debug().
		Str("file", res.Debug.FileName).
		Int("rows", res.Debug.TotalRows).
		Bool("header", res.Debug.HasHeader).
		Int("columns", res.Debug.ColumnCount).
		Msg("parsed statement")

	if !dryRun {
		entry := importlog.Entry{
			Timestamp:   time.Now().UTC(),
			FileName:    res.Debug.FileName,
			TotalRows:   res.Debug.TotalRows,
			HasHeader:   res.Debug.HasHeader,
			ColumnCount: res.Debug.ColumnCount,
			Parsed:      res.Debug.ParsedCount,
			Skipped:     len(res.Skips),
		}
		if err := importlog.Append(e.dataDir, []importlog.Entry{entry}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write import log: %v\n", err)
		}
	}

	if len(res.Transactions) == 0 {
		fmt.Println("Could not parse any transactions from", path)
		printDebug(res.Debug)
		return nil
	}

	printTransactions(res.Transactions)

	if dryRun {
		fmt.Printf("Dry run: %d transactions parsed, nothing saved.\n", len(res.Transactions))
		return nil
	}

	if err := e.store.Append(res.Transactions); err != nil {
		return err
	}
	e.log.Info().
		Int("imported", len(res.Transactions)).
		Int("skipped", len(res.Skips)).
		Str("file", res.Debug.FileName).
		Msg("imported statement")
	fmt.Printf("Imported %d transactions (%d rows skipped).\n", len(res.Transactions), len(res.Skips))
	return nil
}

func printTransactions(txns []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tTYPE\tCATEGORY")
	for _, txn := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			txn.Date, txn.Description, txn.Amount.StringFixed(2), txn.Type, txn.Category)
	}
	w.Flush()
}

func printDebug(d statement.Debug) {
	fmt.Println("Debug info:")
	fmt.Printf("  file: %s\n", d.FileName)
	fmt.Printf("  data rows: %d (header detected: %v)\n", d.TotalRows, d.HasHeader)
	fmt.Printf("  columns: %d\n", d.ColumnCount)
	if len(d.SampleRow) > 0 {
		fmt.Printf("  sample row: %s\n", strings.Join(d.SampleRow, " | "))
	}
	fmt.Printf("  mapping: date=%d desc=%d debit=%d credit=%d amount=%d\n",
		d.Mapping.DateCol, d.Mapping.DescCol, d.Mapping.DebitCol, d.Mapping.CreditCol, d.Mapping.AmountCol)
	fmt.Printf("  parsed: %d\n", d.ParsedCount)
}
