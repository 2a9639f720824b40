package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/andreweng/cli-helper/internal/config"
	"github.com/andreweng/cli-helper/internal/llm"
	"github.com/andreweng/cli-helper/internal/prompt"
	"github.com/andreweng/cli-helper/internal/storage"
)

func main() {
	log.SetFlags(0)
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		model   string
		verbose bool
	)
	root := &cobra.Command{
		Use:   "invoke [flags] <prompt words...>",
		Short: "Send a prompt to a local Ollama server",
		Long: "Sends one prompt to a locally running inference server, prints the answer,\n" +
			"and appends the interaction to a history file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument parsing; errors from here on are not usage errors.
			cmd.SilenceUsage = true

			cfg := config.New()
			if model == "" {
				model = cfg.Model
			}
			client, err := llm.NewFactory(cfg, verbose).CreateClient(string(cfg.LLMProvider), model)
			if err != nil {
				return err
			}

			var rec storage.Recorder
			fr, err := storage.NewFileRecorder(historyPath(cfg.HistoryFilePath))
			if err != nil {
				log.Printf("Warning: could not open history file: %v", err)
			} else {
				rec = fr
			}

			runner := prompt.NewRunner(client, rec, cmd.OutOrStdout(), cmd.ErrOrStderr(), currentUser(), cfg.SystemPrompt)
			return runner.Run(cmd.Context(), strings.Join(args, " "))
		},
	}
	root.Flags().StringVarP(&model, "model", "m", "", "model to use (default taken from MODEL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request/response details to stderr")
	root.AddCommand(newHistoryCmd())
	return root
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recorded interactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg := config.New()
			rec, err := storage.NewFileRecorder(historyPath(cfg.HistoryFilePath))
			if err != nil {
				return err
			}
			events, err := rec.LoadInteractions()
			if err != nil {
				return err
			}
			if limit > 0 && len(events) > limit {
				events = events[len(events)-limit:]
			}
			w := cmd.OutOrStdout()
			for _, ev := range events {
				fmt.Fprintf(w, "%s %s (%s)\n", ev.Timestamp.Format(time.RFC3339), ev.User, ev.Model)
				fmt.Fprintf(w, "   %s\n", ev.Prompt)
				fmt.Fprintf(w, ">> %s\n\n", ev.Response)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of interactions to show (0 for all)")
	return cmd
}

// historyPath resolves non-absolute paths next to the executable, so the
// history lands in one place no matter which directory the tool runs from.
func historyPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return p
	}
	return filepath.Join(filepath.Dir(exe), p)
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
