// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the compiled vocabulary to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jklemke/obsidian-to-jsonld/internal/catalog"
)

// Server wraps the MCP server with vocabulary tools.
type Server struct {
	mcp *server.MCPServer
	db  *catalog.DB
}

// New creates a new MCP server with all vocabulary tools registered.
func New(db *catalog.DB) *Server {
	s := &Server{db: db}

	s.mcp = server.NewMCPServer(
		"obsidian-to-jsonld",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_concepts",
		mcp.WithDescription("Full-text search over compiled concepts (titles, definitions, note bodies)."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchConcepts)

	s.mcp.AddTool(mcp.NewTool("get_concept",
		mcp.WithDescription("Read one compiled concept by its concept-key, including URI, definition, and relations."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Concept key (stable identifier)")),
	), s.getConcept)

	s.mcp.AddTool(mcp.NewTool("list_top_concepts",
		mcp.WithDescription("List the concepts flagged as top concepts of the scheme."),
	), s.listTopConcepts)

	s.mcp.AddTool(mcp.NewTool("get_note_contract",
		mcp.WithDescription("Returns the canonical vocabulary note format contract. "+
			"Read this before authoring notes meant to compile into the vocabulary."),
	), s.getNoteContract)

	// Resource: note format contract.
	s.mcp.AddResource(
		mcp.NewResource("vocab://note-format", "Vocabulary Note Format Contract",
			mcp.WithResourceDescription("Canonical Markdown note format compiled into the SKOS vocabulary."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNoteFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchConcepts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type conceptDetail struct {
	Key        string             `json:"key"`
	Title      string             `json:"title"`
	URI        string             `json:"uri"`
	Definition string             `json:"definition,omitempty"`
	Top        bool               `json:"top"`
	Relations  []catalog.Relation `json:"relations,omitempty"`
}

func (s *Server) getConcept(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	row, err := s.db.GetConcept(key)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", key)), nil
	}

	detail := conceptDetail{
		Key:        row.Key,
		Title:      row.Title,
		URI:        row.URI,
		Definition: row.Definition,
		Top:        row.Top,
	}
	if _, links, graphErr := s.db.Graph(); graphErr == nil {
		for _, l := range links {
			if l.Source == key {
				detail.Relations = append(detail.Relations, catalog.Relation{Target: l.Target, Predicate: l.Predicate})
			}
		}
	}

	out, _ := json.MarshalIndent(detail, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTopConcepts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows, err := s.db.TopConcepts()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getNoteContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(NoteFormatContract), nil
}

func (s *Server) readNoteFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "vocab://note-format",
			MIMEType: "text/markdown",
			Text:     NoteFormatContract,
		},
	}, nil
}
