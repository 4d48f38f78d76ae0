package main

import (
	"context"

	"github.com/spf13/cobra"

	"tavernkeep/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	server := mcp.NewServer(s.app, nil, version, s.log.Named("mcp"))
	return server.Run(ctx, &sdk.StdioTransport{})
}
