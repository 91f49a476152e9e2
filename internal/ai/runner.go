package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	vai "github.com/vango-go/vai-lite/sdk"
)

type RunnerConfig struct {
	RunTimeout time.Duration
}

// Runner wraps the vai client for single-prompt text generation. The run
// timeout is the only cancellation policy at this layer.
type Runner struct {
	client *vai.Client
	cfg    RunnerConfig
}

func NewRunner(cfg RunnerConfig) *Runner {
	client := vai.NewClient()
	return &Runner{client: client, cfg: cfg}
}

// Generate sends the prompt as a single user message and returns the
// model's text output, accumulated from the stream. An empty result is not
// an error; callers decide how to present it.
func (r *Runner) Generate(ctx context.Context, model string, prompt string) (string, error) {
	if !IsAllowedModel(model) {
		return "", fmt.Errorf("unsupported model %q", model)
	}

	req := &vai.MessageRequest{
		Model: model,
		Messages: []vai.Message{
			{
				Role:    "user",
				Content: []vai.ContentBlock{vai.Text(prompt)},
			},
		},
	}

	runCtx := ctx
	cancel := func() {}
	if r.cfg.RunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.cfg.RunTimeout)
	}
	defer cancel()

	stream, err := r.client.Messages.RunStream(runCtx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var buf strings.Builder
	_, processErr := stream.Process(vai.StreamCallbacks{
		OnTextDelta: func(delta string) {
			buf.WriteString(delta)
		},
	})
	if processErr != nil {
		return "", processErr
	}
	if err := stream.Err(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
