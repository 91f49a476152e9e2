package ai

import "testing"

func TestGenerateRejectsUnknownModel(t *testing.T) {
	// model validation happens before the client is touched
	runner := &Runner{cfg: RunnerConfig{}}

	_, err := runner.Generate(t.Context(), "not-a-model", "hello")
	if err == nil {
		t.Fatalf("Generate() expected error for unknown model")
	}
}
