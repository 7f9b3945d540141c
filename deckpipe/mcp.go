package deckpipe

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/deckrep/kit"
)

// RegisterMCP registers deckpipe tools on an MCP server.
func (p *Pipeline) RegisterMCP(srv *mcp.Server) {
	p.registerParseTool(srv)
	p.registerInspectTool(srv)
	p.registerEntitiesTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- parse ---

type parseReq struct {
	Path string `json:"path"`
}

func (p *Pipeline) registerParseTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "deckpipe_parse",
		Description: "Parse a slide-deck package into per-entity status reports plus a one-line summary.",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "Deck file path to parse"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*parseReq)
		return p.ParseFile(ctx, r.Path)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r parseReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{
			Request: &r,
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithDocName(ctx, r.Path)
			},
		}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- inspect ---

type inspectReq struct {
	Path string `json:"path"`
}

func (p *Pipeline) registerInspectTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "deckpipe_inspect",
		Description: "Return raw per-slide (paragraphs, tables, byte_size) tuples without classification. Debug surface for malformed decks.",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "Deck file path to inspect"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*inspectReq)
		slides, err := p.InspectFile(ctx, r.Path)
		if err != nil {
			return nil, err
		}
		return map[string]any{"slides": slides}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r inspectReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- entities ---

func (p *Pipeline) registerEntitiesTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "deckpipe_entities",
		Description: "List the canonical entity names the title-slide alias table can resolve to.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"entities": p.Entities()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
