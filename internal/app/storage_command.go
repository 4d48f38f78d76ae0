package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tavernkeep/internal/repository"
	"tavernkeep/internal/world"
)

type StorageCommandKind int

const (
	StorageJournal StorageCommandKind = iota
	StorageLoad
	StorageSave
	StorageDelete
	StorageExport
	StorageChange
)

type StorageCommand struct {
	Kind   StorageCommandKind
	Name   string
	Change repository.Change
}

func (StorageCommand) isCommand() {}

func (c StorageCommand) String() string {
	switch c.Kind {
	case StorageJournal:
		return "journal"
	case StorageLoad:
		return "load " + c.Name
	case StorageSave:
		return "save " + c.Name
	case StorageDelete:
		return "delete " + c.Name
	case StorageExport:
		return "export"
	default:
		if edit, ok := c.Change.(repository.Edit); ok {
			return fmt.Sprintf("%s is %s", edit.Name, edit.Diff.Description())
		}
		return fmt.Sprintf("%T", c.Change)
	}
}

func (c StorageCommand) Run(ctx context.Context, _ string, meta *AppMeta) (string, error) {
	repo := meta.Repository

	switch c.Kind {
	case StorageJournal:
		return journalOutput(repo), nil

	case StorageLoad:
		t, ok := repo.LoadThingByName(c.Name)
		if !ok {
			return "", fmt.Errorf("No matches for %q", c.Name)
		}
		out := t.Details()
		if repo.DataStoreEnabled() && !repo.IsSaved(t) {
			name, _ := world.Name(t)
			out += fmt.Sprintf("\n\n_%s has not yet been saved. Use ~save~ to save %s to your `journal`._",
				name, world.PronounsOf(t).Them())
			meta.Aliases.Insert(LiteralAlias("save", "save "+name, StorageCommand{Kind: StorageSave, Name: name}))
		}
		return out, nil

	case StorageSave:
		return repo.SaveThingByName(ctx, c.Name)

	case StorageDelete:
		return repo.DeleteThingByName(ctx, c.Name)

	case StorageExport:
		export, err := repo.Export(ctx)
		if err != nil {
			return "", fmt.Errorf("Couldn't export your journal: %w", err)
		}
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding export: %w", err)
		}
		return "```json\n" + string(data) + "\n```", nil

	default:
		t, err := repo.Modify(ctx, c.Change)
		if err != nil {
			return "", err
		}
		if _, ok := c.Change.(repository.Edit); ok {
			return fmt.Sprintf("%s was successfully edited.", t.Summary()), nil
		}
		return t.Summary(), nil
	}
}

func journalOutput(repo *repository.Repository) string {
	var b strings.Builder
	b.WriteString("# Journal")

	var npcs, places []string
	for _, t := range repo.Journal() {
		switch t.Kind() {
		case world.KindNpc:
			npcs = append(npcs, t.Summary())
		case world.KindPlace:
			places = append(places, t.Summary())
		}
	}

	if len(npcs) == 0 && len(places) == 0 {
		b.WriteString("\n\n*Your journal is currently empty.*")
	}
	for _, section := range []struct {
		title   string
		entries []string
	}{{"Characters", npcs}, {"Places", places}} {
		if len(section.entries) > 0 {
			fmt.Fprintf(&b, "\n\n## %s\n\n%s", section.title, strings.Join(section.entries, "\\\n"))
		}
	}

	if !repo.DataStoreEnabled() {
		b.WriteString("\n\n! Your journal is not being persisted in this session.")
	}
	return b.String()
}

func parseStorageCommand(input string, meta *AppMeta) (Command, []Command) {
	switch input {
	case "journal":
		return StorageCommand{Kind: StorageJournal}, nil
	case "export":
		return StorageCommand{Kind: StorageExport}, nil
	}

	for _, verb := range []struct {
		word string
		kind StorageCommandKind
	}{{"load", StorageLoad}, {"save", StorageSave}, {"delete", StorageDelete}} {
		if name, ok := cutCommand(input, verb.word); ok {
			return StorageCommand{Kind: verb.kind, Name: canonicalName(name, meta)}, nil
		}
	}

	if t, ok := meta.Repository.LoadThingByName(input); ok {
		name, _ := world.Name(t)
		return nil, []Command{StorageCommand{Kind: StorageLoad, Name: name}}
	}
	return nil, nil
}

// canonicalName returns the stored spelling of name when something by that
// name exists.
func canonicalName(name string, meta *AppMeta) string {
	if t, ok := meta.Repository.LoadThingByName(name); ok {
		if canonical, ok := world.Name(t); ok {
			return canonical
		}
	}
	return name
}

func autocompleteStorageCommand(input string, meta *AppMeta) []Suggestion {
	var out []Suggestion
	for _, s := range []Suggestion{
		{Text: "journal", Summary: "list journal contents"},
		{Text: "export", Summary: "export the journal"},
		{Text: "load [name]", Summary: "load an entry"},
		{Text: "save [name]", Summary: "save an entry to journal"},
		{Text: "delete [name]", Summary: "remove an entry from journal"},
	} {
		if hasWordPrefix(s.Text, input) {
			out = append(out, s)
		}
	}

	repo := meta.Repository
	things := append(repo.Journal(), repo.Recent()...)

	for _, verb := range []string{"load", "save", "delete"} {
		rest, ok := strings.CutPrefix(input, verb+" ")
		if !ok {
			continue
		}
		for _, t := range things {
			name, ok := world.Name(t)
			if !ok || !hasWordPrefix(name, rest) {
				continue
			}
			noun := t.Kind().Noun()
			switch {
			case verb == "save" && repo.IsSaved(t):
				continue
			case verb == "save":
				out = append(out, Suggestion{Text: "save " + name, Summary: "save " + noun + " to journal"})
			case verb == "delete":
				out = append(out, Suggestion{Text: "delete " + name, Summary: "remove " + noun + " from journal"})
			default:
				out = append(out, Suggestion{Text: "load " + name, Summary: t.Description()})
			}
		}
	}

	for _, t := range things {
		if name, ok := world.Name(t); ok && hasWordPrefix(name, input) {
			out = append(out, Suggestion{Text: name, Summary: t.Description()})
		}
	}
	return out
}
