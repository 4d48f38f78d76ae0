// Package mcp exposes a tavernkeep session to MCP clients.
package mcp

import (
	"context"
	"sync"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"tavernkeep/internal/app"
	"tavernkeep/internal/logger"
	"tavernkeep/internal/reference"
	"tavernkeep/internal/repository"
	"tavernkeep/internal/world"
)

// Interpreter is the part of *app.App the tools drive.
type Interpreter interface {
	Command(ctx context.Context, input string) (string, error)
	Autocomplete(ctx context.Context, input string) []app.Suggestion
	Export(ctx context.Context) (*repository.Export, error)
	Journal() []world.Thing
}

type Server struct {
	// mu serializes tool calls; the interpreter is single-threaded.
	mu  sync.Mutex
	app Interpreter
	ref *reference.Index
	log *zap.Logger
	mcp *sdk.Server
}

func NewServer(interp Interpreter, ref *reference.Index, version string, log *zap.Logger) *Server {
	if ref == nil {
		ref = reference.Default()
	}
	s := &Server{
		app: interp,
		ref: ref,
		log: logger.OrNop(log),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "tavernkeep",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.log.Info("mcp server starting")
	defer s.log.Info("mcp server stopped")
	return s.mcp.Run(ctx, transport)
}
