package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"memovox/internal/memo"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <memo-id|audio.wav>",
	Short: "Transcribe a saved memo or an arbitrary WAV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	target := args[0]

	// A path to a WAV file transcribes directly without touching the store.
	if strings.HasSuffix(target, ".wav") {
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("audio file %s: %w", target, err)
		}
		text, err := transcribeFile(cmd.Context(), target)
		if err != nil {
			return err
		}
		printTranscript(text)
		return nil
	}

	store, err := memo.NewStore(cfg.MemosDir)
	if err != nil {
		return err
	}
	m, err := store.Get(target)
	if err != nil {
		return err
	}

	text, err := transcribeFile(cmd.Context(), store.AudioPath(m.ID))
	if err != nil {
		return err
	}

	m.Transcript = text
	if err := store.Save(m); err != nil {
		return err
	}
	printTranscript(text)
	return nil
}

func printTranscript(text string) {
	if text == "" {
		fmt.Println("No speech detected.")
		return
	}
	fmt.Println(text)
}
