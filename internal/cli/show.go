package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memovox/internal/memo"
)

var showCmd = &cobra.Command{
	Use:   "show <memo-id>",
	Short: "Show a memo's details and full transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := memo.NewStore(cfg.MemosDir)
	if err != nil {
		return err
	}

	m, err := store.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", m.ID)
	fmt.Printf("Recorded: %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration: %.1fs\n", m.Duration.Seconds())
	fmt.Printf("Audio:    %s\n", store.AudioPath(m.ID))
	fmt.Println()
	if m.Transcript == "" {
		fmt.Println("(no transcript — run 'memovox transcribe " + m.ID + "')")
	} else {
		fmt.Println(m.Transcript)
	}
	return nil
}
