package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"memovox/internal/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known whisper models and their download state",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

var modelsPullCmd = &cobra.Command{
	Use:   "pull <name>",
	Short: "Download a whisper model",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsPull,
}

func init() {
	modelsCmd.AddCommand(modelsPullCmd)
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	for _, m := range models.All() {
		state := "not downloaded"
		if info, err := os.Stat(filepath.Join(cfg.ModelsDir, m.Filename)); err == nil && info.Size() > 0 {
			state = "downloaded"
		}
		marker := " "
		if m.Name == cfg.Model {
			marker = "*"
		}
		fmt.Printf("%s %-18s %6.0f MB  %s\n",
			marker, m.Name, float64(m.Size)/(1024*1024), state)
	}
	return nil
}

func runModelsPull(cmd *cobra.Command, args []string) error {
	path, err := models.Ensure(args[0], cfg.ModelsDir)
	if err != nil {
		return err
	}
	fmt.Printf("Model ready: %s\n", path)
	return nil
}
