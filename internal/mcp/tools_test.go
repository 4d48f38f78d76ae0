package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tavernkeep/internal/app"
	"tavernkeep/internal/repository"
	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

type mockInterpreter struct {
	commandOutput string
	commandErr    error
	suggestions   []app.Suggestion
	export        *repository.Export
	exportErr     error
	journal       []world.Thing

	lastCommand      string
	lastAutocomplete string
}

func (m *mockInterpreter) Command(ctx context.Context, input string) (string, error) {
	m.lastCommand = input
	return m.commandOutput, m.commandErr
}

func (m *mockInterpreter) Autocomplete(ctx context.Context, input string) []app.Suggestion {
	m.lastAutocomplete = input
	return m.suggestions
}

func (m *mockInterpreter) Export(ctx context.Context) (*repository.Export, error) {
	return m.export, m.exportErr
}

func (m *mockInterpreter) Journal() []world.Thing {
	return m.journal
}

func TestRunCommand(t *testing.T) {
	mock := &mockInterpreter{commandOutput: "# Mira\n*elf*"}
	server := NewServer(mock, nil, "test", nil)

	_, output, err := server.handleRunCommand(context.Background(), nil, RunCommandInput{Input: "elf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Output != "# Mira\n*elf*" || output.Failed {
		t.Fatalf("unexpected output: %+v", output)
	}
	if mock.lastCommand != "elf" {
		t.Fatalf("unexpected command %q", mock.lastCommand)
	}
}

func TestRunCommand_Failure(t *testing.T) {
	mock := &mockInterpreter{commandErr: errors.New(`Unknown command: "xyzzy"`)}
	server := NewServer(mock, nil, "test", nil)

	_, output, err := server.handleRunCommand(context.Background(), nil, RunCommandInput{Input: "xyzzy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Failed || output.Output != `Unknown command: "xyzzy"` {
		t.Fatalf("unexpected output: %+v", output)
	}
}

func TestRunCommand_EmptyInput(t *testing.T) {
	server := NewServer(&mockInterpreter{}, nil, "test", nil)

	if _, _, err := server.handleRunCommand(context.Background(), nil, RunCommandInput{Input: "  "}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAutocomplete(t *testing.T) {
	mock := &mockInterpreter{suggestions: []app.Suggestion{{Text: "inn", Summary: "create inn"}}}
	server := NewServer(mock, nil, "test", nil)

	_, output, err := server.handleAutocomplete(context.Background(), nil, AutocompleteInput{Input: "in"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Suggestions) != 1 || output.Suggestions[0].Text != "inn" {
		t.Fatalf("unexpected suggestions: %+v", output)
	}
	if mock.lastAutocomplete != "in" {
		t.Fatalf("unexpected autocomplete input %q", mock.lastAutocomplete)
	}
}

func TestExport(t *testing.T) {
	when := "1:08:00:00"
	npc := &world.Npc{Name: world.NewField("Mira"), Species: world.NewField(world.Elf)}
	mock := &mockInterpreter{export: &repository.Export{
		Comment:  "backup",
		Things:   []world.Thing{npc},
		KeyValue: repository.KeyValueExport{Time: &when},
	}}
	server := NewServer(mock, nil, "test", nil)

	_, output, err := server.handleExport(context.Background(), nil, ExportInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Comment != "backup" || output.Time != when || len(output.Things) != 1 {
		t.Fatalf("unexpected export: %+v", output)
	}
	if output.Things[0]["type"] != "npc" {
		t.Fatalf("expected npc discriminator, got %v", output.Things[0]["type"])
	}

	mock.exportErr = errors.New("store offline")
	if _, _, err := server.handleExport(context.Background(), nil, ExportInput{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListJournal(t *testing.T) {
	mock := &mockInterpreter{journal: []world.Thing{
		&world.Npc{Name: world.NewField("Mira"), Species: world.NewField(world.Elf)},
		&world.Place{Name: world.NewField("The Prancing Pony"), Subtype: world.NewField(world.PlaceType("inn"))},
	}}
	server := NewServer(mock, nil, "test", nil)

	_, output, err := server.handleListJournal(context.Background(), nil, ListJournalInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 2 {
		t.Fatalf("unexpected entries: %+v", output)
	}

	_, output, err = server.handleListJournal(context.Background(), nil, ListJournalInput{Kind: "Place"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 1 || output.Entries[0].Name != "The Prancing Pony" || output.Entries[0].Description != "inn" {
		t.Fatalf("unexpected entries: %+v", output)
	}

	if _, _, err := server.handleListJournal(context.Background(), nil, ListJournalInput{Kind: "dragon"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLookupReference(t *testing.T) {
	server := NewServer(&mockInterpreter{}, nil, "test", nil)

	_, output, err := server.handleLookupReference(context.Background(), nil, LookupReferenceInput{Name: "fireball"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Name != "Fireball" || output.Summary != "3rd-level evocation" || !strings.HasPrefix(output.Markdown, "# Fireball") {
		t.Fatalf("unexpected reference output: %+v", output)
	}

	if _, _, err := server.handleLookupReference(context.Background(), nil, LookupReferenceInput{Name: "wish"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunCommand_Session(t *testing.T) {
	a := app.New(store.NewMemoryDataStore(), app.Config{})
	a.Init(context.Background())
	server := NewServer(a, nil, "test", nil)

	_, output, err := server.handleRunCommand(context.Background(), nil, RunCommandInput{Input: "a gnome named Fizz"})
	if err != nil || output.Failed {
		t.Fatalf("unexpected result: %+v, %v", output, err)
	}

	_, journal, err := server.handleListJournal(context.Background(), nil, ListJournalInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(journal.Entries) != 1 || journal.Entries[0].Name != "Fizz" {
		t.Fatalf("unexpected journal: %+v", journal)
	}
}
