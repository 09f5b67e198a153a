package adapter

import (
	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/content"
	"github.com/estla/skillserver/internal/domain/document"
)

func ToDocumentResponse(record document.Record) api.DocumentResponse {
	return api.DocumentResponse{
		Title:        record.Title,
		Category:     string(record.Category),
		WebPath:      record.WebPath,
		Summary:      record.Summary,
		ThumbnailURL: record.ThumbnailURL,
		Link:         record.Link,
	}
}

func ToDocumentList(records []document.Record) []api.DocumentResponse {
	out := make([]api.DocumentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToDocumentResponse(r))
	}
	return out
}

func ToContentHitList(hits []content.ContentHit) []api.DocumentResponse {
	out := make([]api.DocumentResponse, 0, len(hits))
	for _, h := range hits {
		doc := ToDocumentResponse(h.Record)
		doc.Score = h.Score
		out = append(out, doc)
	}
	return out
}

func ToMarkdownResponse(doc content.Document) api.MarkdownResponse {
	return api.MarkdownResponse{
		Document: ToDocumentResponse(doc.Record),
		Markdown: doc.Markdown,
	}
}

func ToIndexStatsResponse(stats content.IndexStats) api.IndexStatsResponse {
	perCategory := make(map[string]int, len(stats.PerCategory))
	for c, n := range stats.PerCategory {
		perCategory[string(c)] = n
	}
	resp := api.IndexStatsResponse{
		Ready:       stats.Ready,
		Generation:  stats.Generation,
		Documents:   stats.Documents,
		Failed:      stats.Failed,
		PerCategory: perCategory,

		FullTextDocuments: stats.FullTextDocuments,
	}
	if !stats.BuiltAt.IsZero() {
		builtAt := stats.BuiltAt
		resp.BuiltAt = &builtAt
	}
	return resp
}
