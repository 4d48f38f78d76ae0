package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"tavernkeep/internal/world"
)

type RunCommandInput struct {
	Input string `json:"input" jsonschema:"the command line to run, eg. an elderly elf or save Mira"`
}

type AutocompleteInput struct {
	Input string `json:"input" jsonschema:"partial command line"`
}

type ExportInput struct{}

type ListJournalInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"character or place"`
}

type LookupReferenceInput struct {
	Name string `json:"name" jsonschema:"spell or weapon name"`
}

type RunCommandOutput struct {
	Output string `json:"output"`
	Failed bool   `json:"failed,omitempty"`
}

type SuggestionOutput struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

type AutocompleteOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
}

type ExportOutput struct {
	Comment string           `json:"_"`
	Things  []map[string]any `json:"things"`
	Time    string           `json:"time,omitempty"`
}

type JournalEntryOutput struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type ListJournalOutput struct {
	Entries []JournalEntryOutput `json:"entries"`
}

type ReferenceOutput struct {
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Markdown string `json:"markdown"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "run_command",
		Description: "Run a tavernkeep command and return its markdown output",
	}, s.handleRunCommand)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "autocomplete",
		Description: "Suggest completions for a partial command",
	}, s.handleAutocomplete)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "export",
		Description: "Export the journal and the in-game time",
	}, s.handleExport)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_journal",
		Description: "List saved characters and places",
	}, s.handleListJournal)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "lookup_reference",
		Description: "Look up a spell or weapon",
	}, s.handleLookupReference)
}

func (s *Server) handleRunCommand(ctx context.Context, req *sdk.CallToolRequest, input RunCommandInput) (*sdk.CallToolResult, RunCommandOutput, error) {
	if strings.TrimSpace(input.Input) == "" {
		return nil, RunCommandOutput{}, fmt.Errorf("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.app.Command(ctx, input.Input)
	if err != nil {
		s.log.Debug("command failed", zap.String("input", input.Input), zap.Error(err))
		return nil, RunCommandOutput{Output: err.Error(), Failed: true}, nil
	}
	return nil, RunCommandOutput{Output: out}, nil
}

func (s *Server) handleAutocomplete(ctx context.Context, req *sdk.CallToolRequest, input AutocompleteInput) (*sdk.CallToolResult, AutocompleteOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestions := s.app.Autocomplete(ctx, input.Input)
	output := make([]SuggestionOutput, 0, len(suggestions))
	for _, suggestion := range suggestions {
		output = append(output, SuggestionOutput{Text: suggestion.Text, Summary: suggestion.Summary})
	}
	return nil, AutocompleteOutput{Suggestions: output}, nil
}

func (s *Server) handleExport(ctx context.Context, req *sdk.CallToolRequest, input ExportInput) (*sdk.CallToolResult, ExportOutput, error) {
	s.mu.Lock()
	export, err := s.app.Export(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, ExportOutput{}, fmt.Errorf("exporting journal: %w", err)
	}

	out := ExportOutput{Comment: export.Comment, Things: make([]map[string]any, 0, len(export.Things))}
	if export.KeyValue.Time != nil {
		out.Time = *export.KeyValue.Time
	}
	for _, t := range export.Things {
		thing, err := thingOutput(t)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("exporting journal: %w", err)
		}
		out.Things = append(out.Things, thing)
	}
	return nil, out, nil
}

func (s *Server) handleListJournal(ctx context.Context, req *sdk.CallToolRequest, input ListJournalInput) (*sdk.CallToolResult, ListJournalOutput, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	if kind != "" && kind != "character" && kind != "place" {
		return nil, ListJournalOutput{}, fmt.Errorf("unknown kind %q", input.Kind)
	}

	s.mu.Lock()
	things := s.app.Journal()
	s.mu.Unlock()

	output := make([]JournalEntryOutput, 0, len(things))
	for _, t := range things {
		noun := t.Kind().Noun()
		if kind != "" && noun != kind {
			continue
		}
		name, _ := world.Name(t)
		output = append(output, JournalEntryOutput{Name: name, Kind: noun, Description: t.Description()})
	}
	return nil, ListJournalOutput{Entries: output}, nil
}

func (s *Server) handleLookupReference(ctx context.Context, req *sdk.CallToolRequest, input LookupReferenceInput) (*sdk.CallToolResult, ReferenceOutput, error) {
	if input.Name == "" {
		return nil, ReferenceOutput{}, fmt.Errorf("name is required")
	}
	entry, ok := s.ref.Lookup(input.Name)
	if !ok {
		return nil, ReferenceOutput{}, fmt.Errorf("no reference entry named %q", input.Name)
	}
	return nil, ReferenceOutput{Name: entry.Name(), Summary: entry.Summary(), Markdown: entry.Render()}, nil
}

// thingOutput flattens t into its JSON object form.
func thingOutput(t world.Thing) (map[string]any, error) {
	data, err := world.MarshalThing(t)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
