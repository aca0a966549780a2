package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memovox/internal/memo"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <memo-id>",
	Short: "Delete a memo and its recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, err := memo.NewStore(cfg.MemosDir)
	if err != nil {
		return err
	}
	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted memo %s\n", args[0])
	return nil
}
