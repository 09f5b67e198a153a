package mcptools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/estla/skillserver/internal/adapter"
	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "estla-skill-content"
	serverVersion = "1.0.0"
)

type SearchDocumentsInput struct {
	Query string `json:"query" jsonschema:"Title keywords, matched exact, substring, per token and then fuzzily"`
}

type ListCategoryInput struct {
	Category string `json:"category" jsonschema:"One of QnA, Selftest or Products"`
}

type SearchContentInput struct {
	Query      string `json:"query" jsonschema:"Words to look for in document summaries"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10, at most 20)"`
}

type ReadDocumentInput struct {
	Title string `json:"title" jsonschema:"Exact document title as returned by the other tools"`
}

type DocumentsOutput struct {
	Query     string                 `json:"query,omitempty"`
	Category  string                 `json:"category,omitempty"`
	Count     int                    `json:"count"`
	Documents []api.DocumentResponse `json:"documents"`
}

type ReadDocumentOutput struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Markdown string `json:"markdown"`
}

type tools struct {
	content content.Service
	logger  *logger_i.Logger
}

// NewServer exposes the content index as MCP tools.
func NewServer(contentService content.Service) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		nil,
	)
	RegisterTools(server, contentService)
	return server
}

func RegisterTools(server *mcp.Server, contentService content.Service) {
	t := &tools{content: contentService, logger: logger_i.NewLogger("MCP")}

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_documents",
			Description: "Search support documents by title. Returns the same matches the chatbot would show.",
		},
		t.searchDocuments,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_category",
			Description: "List every document of a category (QnA, Selftest or Products) in index order.",
		},
		t.listCategory,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_content",
			Description: "Full-text search over document summaries, ranked by relevance.",
		},
		t.searchContent,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "read_document",
			Description: "Read one document as markdown.",
		},
		t.readDocument,
	)
}

// Handler serves the tools over streamable HTTP.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

func (t *tools) searchDocuments(ctx context.Context, req *mcp.CallToolRequest, input SearchDocumentsInput) (*mcp.CallToolResult, DocumentsOutput, error) {
	records, err := t.content.Search(ctx, input.Query)
	if err != nil {
		return nil, DocumentsOutput{}, fmt.Errorf("search failed: %w", err)
	}
	t.logger.Debug("search_documents", "query", input.Query, "results", len(records))
	return nil, DocumentsOutput{
		Query:     input.Query,
		Count:     len(records),
		Documents: adapter.ToDocumentList(records),
	}, nil
}

func (t *tools) listCategory(ctx context.Context, req *mcp.CallToolRequest, input ListCategoryInput) (*mcp.CallToolResult, DocumentsOutput, error) {
	category, ok := document.ParseCategory(input.Category)
	if !ok {
		return nil, DocumentsOutput{}, fmt.Errorf("unknown category %q", input.Category)
	}
	records, err := t.content.GetByCategory(ctx, category)
	if err != nil {
		return nil, DocumentsOutput{}, fmt.Errorf("list failed: %w", err)
	}
	return nil, DocumentsOutput{
		Category:  string(category),
		Count:     len(records),
		Documents: adapter.ToDocumentList(records),
	}, nil
}

func (t *tools) searchContent(ctx context.Context, req *mcp.CallToolRequest, input SearchContentInput) (*mcp.CallToolResult, DocumentsOutput, error) {
	hits, err := t.content.SearchContent(ctx, input.Query, input.MaxResults)
	if err != nil {
		return nil, DocumentsOutput{}, fmt.Errorf("content search failed: %w", err)
	}
	return nil, DocumentsOutput{
		Query:     input.Query,
		Count:     len(hits),
		Documents: adapter.ToContentHitList(hits),
	}, nil
}

func (t *tools) readDocument(ctx context.Context, req *mcp.CallToolRequest, input ReadDocumentInput) (*mcp.CallToolResult, ReadDocumentOutput, error) {
	doc, err := t.content.ReadDocument(ctx, input.Title)
	if err != nil {
		return nil, ReadDocumentOutput{}, err
	}
	return nil, ReadDocumentOutput{
		Title:    doc.Record.Title,
		Link:     doc.Record.Link,
		Markdown: doc.Markdown,
	}, nil
}
