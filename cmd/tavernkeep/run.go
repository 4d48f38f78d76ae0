package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [command]...",
		Short: "Run commands without the interactive prompt",
		Long: "Runs each argument as a command in a single session. With no arguments,\n" +
			"commands are read from standard input, one per line.",
		RunE: runCommands,
	}
}

func runCommands(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	w := cmd.OutOrStdout()
	var total, failed int
	runOne := func(input string) {
		input = strings.TrimSpace(input)
		if input == "" {
			return
		}
		if total > 0 {
			fmt.Fprintln(w)
		}
		total++
		out, err := s.app.Command(ctx, input)
		if err != nil {
			failed++
		}
		printOutput(w, out, err)
	}

	if len(args) > 0 {
		for _, input := range args {
			runOne(input)
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			runOne(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading commands: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, total)
	}
	return nil
}
