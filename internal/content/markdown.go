package content

import (
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/estla/skillserver/internal/content/search"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/spf13/afero"
)

// Document is a record together with its body rendered as markdown.
type Document struct {
	Record   document.Record
	Markdown string
}

// ReadDocument looks a record up by title (exact first, then case-insensitive)
// and re-reads its source file.
func (s *service) ReadDocument(ctx context.Context, title string) (Document, error) {
	snap := s.holder.load()
	if snap == nil {
		return Document{}, ErrNotReady
	}

	record, ok := findByTitle(snap.records, title)
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrDocumentNotFound, title)
	}

	markup, err := afero.ReadFile(s.fs, record.SourcePath)
	if err != nil {
		return Document{}, fmt.Errorf("read %q: %w", record.Title, err)
	}
	markdown, err := htmltomarkdown.ConvertString(string(markup))
	if err != nil {
		return Document{}, fmt.Errorf("convert %q to markdown: %w", record.Title, err)
	}
	return Document{Record: record, Markdown: markdown}, nil
}

func findByTitle(records []document.Record, title string) (document.Record, bool) {
	for _, r := range records {
		if r.Title == title {
			return r, true
		}
	}
	normalized := search.Normalize(title)
	if normalized == "" {
		return document.Record{}, false
	}
	for _, r := range records {
		if search.Normalize(r.Title) == normalized {
			return r, true
		}
	}
	return document.Record{}, false
}
