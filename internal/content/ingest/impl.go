package ingest

import (
	"net/url"
	"path/filepath"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/spf13/afero"
)

type discovered struct {
	category   document.Category
	folder     string
	post       string
	sourcePath string
}

// discover lists every immediate subdirectory holding an index.html, category
// by category in configured order.
func discover(fsys afero.Fs, root string, folders []document.CategoryFolder, log *logger_i.Logger) []discovered {
	if ok, _ := afero.DirExists(fsys, root); !ok {
		log.Warn("Content root does not exist, index will be empty", "root", root)
		return nil
	}

	var found []discovered
	for _, cf := range folders {
		categoryPath := filepath.Join(root, cf.Folder)
		entries, err := afero.ReadDir(fsys, categoryPath)
		if err != nil {
			log.Warn("Category folder missing or unreadable", "category", cf.Category, "path", categoryPath, "error", err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			indexFile := filepath.Join(categoryPath, entry.Name(), config.DocumentFileName)
			info, err := fsys.Stat(indexFile)
			if err != nil || info.IsDir() {
				continue
			}
			found = append(found, discovered{
				category:   cf.Category,
				folder:     cf.Folder,
				post:       entry.Name(),
				sourcePath: indexFile,
			})
		}
	}
	return found
}

func (b Builder) toRecord(d discovered, log *logger_i.Logger) (document.Record, bool) {
	path := webPath(d.folder, d.post)
	record := document.Record{
		Title:      d.post,
		Category:   d.category,
		WebPath:    path,
		SourcePath: d.sourcePath,
		Link:       b.HostBase + path,
	}

	markup, err := afero.ReadFile(b.Fs, d.sourcePath)
	if err != nil {
		log.Error("Could not read document", "path", d.sourcePath, "error", err)
		record.Summary = config.PreviewUnavailable
		return record, true
	}
	doc, err := parseDocument(markup)
	if err != nil {
		log.Error("Could not parse document", "path", d.sourcePath, "error", err)
		record.Summary = config.PreviewUnavailable
		return record, true
	}

	record.Summary = summaryFromMarkup(markup)
	if src, ok := firstImageSource(doc); ok {
		if abs, ok := ResolveThumbnail(src, record.Link); ok {
			record.ThumbnailURL = &abs
		}
	}
	return record, false
}

// webPath is the escaped path of a document below the static prefix.
func webPath(folder, post string) string {
	return "/" + url.PathEscape(folder) + "/" + url.PathEscape(post) + "/" + config.DocumentFileName
}
