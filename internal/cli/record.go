package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"memovox/internal/audio"
	"memovox/internal/memo"
	"memovox/internal/models"
	"memovox/internal/transcribe"
)

// Recordings shorter than this are almost certainly accidental.
const minRecording = 300 * time.Millisecond

var noTranscribe bool

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a memo from the microphone and transcribe it",
	Args:  cobra.NoArgs,
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().BoolVar(&noTranscribe, "no-transcribe", false,
		"save the recording without transcribing it")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	store, err := memo.NewStore(cfg.MemosDir)
	if err != nil {
		return err
	}

	rec, err := audio.NewRecorder(cfg.Audio.SampleRate, cfg.Audio.Channels)
	if err != nil {
		return fmt.Errorf("microphone unavailable: %w", err)
	}
	defer rec.Close()

	if err := rec.Start(); err != nil {
		return err
	}
	fmt.Println("Recording... press Enter or Ctrl+C to stop.")

	waitForStop()

	samples := rec.Stop()
	dur := audio.Duration(len(samples), cfg.Audio.SampleRate, cfg.Audio.Channels)
	if dur < minRecording {
		return fmt.Errorf("recording too short (%.1fs), discarded", dur.Seconds())
	}

	m := store.New()
	m.Duration = dur

	wavPath := store.AudioPath(m.ID)
	if err := audio.WriteWAV(wavPath, samples, int(cfg.Audio.SampleRate), int(cfg.Audio.Channels)); err != nil {
		return err
	}
	if err := store.Save(m); err != nil {
		return err
	}
	fmt.Printf("Saved memo %s (%.1fs)\n", m.ID, dur.Seconds())

	if noTranscribe {
		return nil
	}

	text, err := transcribeFile(cmd.Context(), wavPath)
	if err != nil {
		// The memo is already on disk; transcription can be retried with
		// 'memovox transcribe <id>'.
		logger.Warn().Err(err).Str("memo", m.ID).Msg("transcription failed, memo kept")
		return err
	}

	m.Transcript = text
	if err := store.Save(m); err != nil {
		return err
	}

	if text == "" {
		fmt.Println("No speech detected.")
	} else {
		fmt.Printf("Transcript:\n%s\n", text)
	}
	return nil
}

// transcribeFile spins up a transcription service for one file. Model
// loading failures are reported distinctly from transcription failures
// so the user knows whether to fix the model or retry the audio.
func transcribeFile(ctx context.Context, wavPath string) (string, error) {
	modelPath, err := models.Resolve(cfg.Model, cfg.ModelsDir)
	if err != nil {
		return "", err
	}

	logger.Info().Str("model", modelPath).Msg("loading model")
	start := time.Now()
	svc, err := transcribe.NewService(modelPath, logger)
	if err != nil {
		return "", fmt.Errorf("model unavailable: %w", err)
	}
	defer svc.Close()
	logger.Info().Dur("elapsed", time.Since(start).Round(time.Millisecond)).Msg("model loaded")

	text, err := svc.Transcribe(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("could not transcribe audio: %w", err)
	}
	return text, nil
}

// waitForStop blocks until the user presses Enter or sends SIGINT/SIGTERM.
func waitForStop() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	enter := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadString('\n')
		close(enter)
	}()

	select {
	case <-sigCh:
	case <-enter:
	}
}
