package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCommand(dataDir *string, verbose *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm("This deletes all transactions, profile data, and subscriptions. Continue?") {
				fmt.Println("Aborted.")
				return nil
			}

			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if err := e.store.Reset(); err != nil {
				return err
			}
			fmt.Println("All data deleted. Run `clearpath init` to start over.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
