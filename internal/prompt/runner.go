package prompt

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/andreweng/cli-helper/internal/llm"
	"github.com/andreweng/cli-helper/internal/storage"
)

// Runner drives one exchange: ask the model, print the answer, record the
// interaction.
type Runner struct {
	client       llm.Client
	recorder     storage.Recorder
	out          io.Writer
	errOut       io.Writer
	user         string
	systemPrompt string
	now          func() time.Time
}

func NewRunner(client llm.Client, recorder storage.Recorder, out, errOut io.Writer, user, systemPrompt string) *Runner {
	return &Runner{
		client:       client,
		recorder:     recorder,
		out:          out,
		errOut:       errOut,
		user:         user,
		systemPrompt: systemPrompt,
		now:          time.Now,
	}
}

// Run sends userPrompt and prints the reply prefixed with ">> ". The
// interaction is recorded only after a successful response; a failed write
// degrades to a warning so the already-printed answer stands.
func (r *Runner) Run(ctx context.Context, userPrompt string) error {
	msgs := make([]llm.Message, 0, 2)
	if r.systemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: r.systemPrompt})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userPrompt})

	resp, err := r.client.Generate(ctx, msgs)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, ">> %s\n", resp.Content)

	if r.recorder == nil {
		return nil
	}
	ev := storage.Event{
		Timestamp: r.now().UTC(),
		User:      r.user,
		Model:     resp.Model,
		Prompt:    userPrompt,
		Response:  resp.Content,
	}
	if err := r.recorder.AppendInteraction(ev); err != nil {
		fmt.Fprintf(r.errOut, "Warning: could not record interaction: %v\n", err)
	}
	return nil
}
