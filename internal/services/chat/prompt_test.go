package chat

import (
	"testing"

	"canvas_chat/internal/config"
	"canvas_chat/internal/memory"
)

func newPromptService() (*Service, *memory.Store) {
	store := memory.NewStore()
	cfg := config.Config{Model: config.DefaultModel, MemorySize: config.DefaultMemorySize}
	return NewService(store, nil, cfg), store
}

func TestBuildPromptFullSession(t *testing.T) {
	service, store := newPromptService()
	store.AddMessage("s1", memory.RoleSystem, "Be concise.")
	store.AddMessage("s1", memory.RoleUser, "Hi")
	store.AddMessage("s1", memory.RoleAssistant, "Hello!")

	got := service.BuildPrompt("s1", "How are you?", 6)

	want := "System instructions:\n" +
		"Be concise.\n" +
		"\n" +
		"Conversation history (oldest → newest):\n" +
		"User: Hi\n" +
		"Assistant: Hello!\n" +
		"\n" +
		"User: How are you?\n" +
		"Assistant:"
	if got != want {
		t.Fatalf("BuildPrompt() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildPromptNoSessionID(t *testing.T) {
	service, _ := newPromptService()

	got := service.BuildPrompt("", "Hi", 6)
	want := "User: Hi\nAssistant:"
	if got != want {
		t.Fatalf("BuildPrompt() = %q, want %q", got, want)
	}
}

func TestBuildPromptUnknownSession(t *testing.T) {
	service, _ := newPromptService()

	got := service.BuildPrompt("nope", "Hi", 6)
	want := "User: Hi\nAssistant:"
	if got != want {
		t.Fatalf("BuildPrompt() = %q, want %q", got, want)
	}
}

func TestBuildPromptOmitsSystemHeaderWithoutSystemTurns(t *testing.T) {
	service, store := newPromptService()
	store.AddMessage("s1", memory.RoleUser, "Hi")

	got := service.BuildPrompt("s1", "again", 6)

	want := "Conversation history (oldest → newest):\n" +
		"User: Hi\n" +
		"\n" +
		"User: again\n" +
		"Assistant:"
	if got != want {
		t.Fatalf("BuildPrompt() = %q, want %q", got, want)
	}
}

// System turns count toward the recent window even though they are not
// rendered there, so a window of nothing but system turns still emits the
// history header with no body lines.
func TestBuildPromptSystemOnlyWindow(t *testing.T) {
	service, store := newPromptService()
	store.AddMessage("s1", memory.RoleUser, "old question")
	store.AddMessage("s1", memory.RoleSystem, "Rule one.")
	store.AddMessage("s1", memory.RoleSystem, "Rule two.")

	got := service.BuildPrompt("s1", "next", 2)

	want := "System instructions:\n" +
		"Rule one.\n" +
		"Rule two.\n" +
		"\n" +
		"Conversation history (oldest → newest):\n" +
		"\n" +
		"User: next\n" +
		"Assistant:"
	if got != want {
		t.Fatalf("BuildPrompt() = %q, want %q", got, want)
	}
}

func TestBuildPromptTrimsTexts(t *testing.T) {
	service, store := newPromptService()
	store.AddMessage("s1", memory.RoleSystem, "  spaced rule  ")
	store.AddMessage("s1", memory.RoleUser, "\thello\n")

	got := service.BuildPrompt("s1", "  question  ", 6)

	want := "System instructions:\n" +
		"spaced rule\n" +
		"\n" +
		"Conversation history (oldest → newest):\n" +
		"User: hello\n" +
		"\n" +
		"User: question\n" +
		"Assistant:"
	if got != want {
		t.Fatalf("BuildPrompt() = %q, want %q", got, want)
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	service, store := newPromptService()
	store.AddMessage("s1", memory.RoleSystem, "Be concise.")
	store.AddMessage("s1", memory.RoleUser, "Hi")

	first := service.BuildPrompt("s1", "How are you?", 6)
	second := service.BuildPrompt("s1", "How are you?", 6)
	if first != second {
		t.Fatalf("BuildPrompt() not deterministic:\n%q\n%q", first, second)
	}
}
