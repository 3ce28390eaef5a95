package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/category"
)

func newTransactionsCommand(dataDir *string, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "List and manage stored transactions",
	}

	var month string
	var cat string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			return runTransactionsList(e, month, cat)
		},
	}
	listCmd.Flags().StringVar(&month, "month", "", "filter by month (YYYY-MM)")
	listCmd.Flags().StringVar(&cat, "category", "", "filter by category")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if err := e.store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set-category <id> <category>",
		Short: "Reassign a transaction's category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			cat := category.Category(args[1])
			if !category.Valid(cat) {
				return fmt.Errorf("unknown category %q (see `clearpath transactions categories`)", args[1])
			}
			if err := e.store.SetCategory(args[0], cat); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s\n", args[0], cat)
			return nil
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the known categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range category.All() {
				fmt.Println(c)
			}
		},
	}

	cmd.AddCommand(listCmd, rmCmd, setCmd, categoriesCmd)
	return cmd
}

func runTransactionsList(e *env, month, cat string) error {
	txns, err := e.store.Transactions()
	if err != nil {
		return err
	}

	shown := 0
	for _, txn := range txns {
		if month != "" && !strings.HasPrefix(txn.Date, month) {
			continue
		}
		if cat != "" && string(txn.Category) != cat {
			continue
		}
		fmt.Printf("%s  %s  %10s  %-7s  %-20s  %s\n",
			txn.ID, txn.Date, txn.Amount.StringFixed(2), txn.Type, txn.Category, txn.Description)
		shown++
	}
	if shown == 0 {
		fmt.Println("No transactions found.")
	}
	return nil
}
