package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"memovox/internal/memo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved memos, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := memo.NewStore(cfg.MemosDir)
	if err != nil {
		return err
	}

	memos, err := store.List()
	if err != nil {
		return err
	}
	if len(memos) == 0 {
		fmt.Println("No memos yet. Record one with 'memovox record'.")
		return nil
	}

	for _, m := range memos {
		fmt.Printf("%s  %s  %5.1fs  %s\n",
			m.ID,
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Duration.Seconds(),
			snippet(m.Transcript, 60))
	}
	return nil
}

// snippet collapses a transcript to a single trimmed line of at most n runes.
func snippet(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "(no transcript)"
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n-1]) + "…"
}
