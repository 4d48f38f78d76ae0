package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session (the default)",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	r := newRenderer(s.cfg.REPL.RenderMarkdown() && isTerminal(os.Stdout), s.log)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		var out []string
		for _, suggestion := range s.app.Autocomplete(ctx, input) {
			// Placeholders such as "[name]" are hints, not completions.
			if !strings.Contains(suggestion.Text, "[") {
				out = append(out, suggestion.Text)
			}
		}
		return out
	})

	historyFile := s.cfg.REPL.HistoryFile
	loadHistory(line, historyFile)
	defer saveHistory(line, historyFile, s.log)

	fmt.Println(r.render(s.welcome))
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		line.AppendHistory(input)

		out, cmdErr := s.app.Command(ctx, input)
		if cmdErr != nil {
			out = cmdErr.Error()
		}
		fmt.Println(r.render(out))
	}
}

func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
}

func saveHistory(line *liner.State, path string, log *zap.Logger) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		log.Warn("saving history", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		log.Warn("saving history", zap.String("path", path), zap.Error(err))
	}
}

// renderer turns command output into terminal text. Without a terminal it
// passes the markdown through untouched.
type renderer struct {
	term *glamour.TermRenderer
}

func newRenderer(enabled bool, log *zap.Logger) *renderer {
	if !enabled {
		return &renderer{}
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		log.Warn("markdown rendering unavailable", zap.Error(err))
		return &renderer{}
	}
	return &renderer{term: term}
}

var shortcut = regexp.MustCompile("~([^~\n]+)~")

// terminalMarkdown rewrites ~shortcut~ links as code spans, since markdown
// renderers read tildes as strikethrough.
func terminalMarkdown(md string) string {
	return shortcut.ReplaceAllString(md, "`$1`")
}

func (r *renderer) render(md string) string {
	if r.term == nil {
		return md
	}
	out, err := r.term.Render(terminalMarkdown(md))
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
