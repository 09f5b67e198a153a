package document

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryQnA      Category = "QnA"
	CategorySelftest Category = "Selftest"
	CategoryProducts Category = "Products"
)

var knownCategories = []Category{CategoryQnA, CategorySelftest, CategoryProducts}

// Record is one indexed document. SourcePath stays inside the process.
type Record struct {
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	WebPath      string   `json:"webPath"`
	SourcePath   string   `json:"-"`
	Summary      string   `json:"summary"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Link         string   `json:"link"`
}

func (r Record) Thumbnail() string {
	if r.ThumbnailURL == nil {
		return ""
	}
	return *r.ThumbnailURL
}

// CategoryFolder binds a category to the folder its documents live in,
// relative to the content root.
type CategoryFolder struct {
	Category Category
	Folder   string
}

func DefaultCategoryFolders() []CategoryFolder {
	return []CategoryFolder{
		{Category: CategoryQnA, Folder: "QnA-crawl"},
		{Category: CategorySelftest, Folder: "selftest-crawl-MD"},
		{Category: CategoryProducts, Folder: "products-crawl"},
	}
}

func ParseCategory(value string) (Category, bool) {
	for _, c := range knownCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(value)) {
			return c, true
		}
	}
	return "", false
}

// ParseCategoryFolders reads "Category=folder" pairs separated by commas.
// Order is kept; it decides the order documents are indexed in.
func ParseCategoryFolders(spec string) ([]CategoryFolder, error) {
	var folders []CategoryFolder
	seen := make(map[Category]bool)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, folder, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(folder) == "" {
			return nil, fmt.Errorf("category folder %q: expected Category=folder", part)
		}
		category, known := ParseCategory(name)
		if !known {
			return nil, fmt.Errorf("category folder %q: unknown category %q", part, name)
		}
		if seen[category] {
			return nil, fmt.Errorf("category %s configured twice", category)
		}
		seen[category] = true
		folders = append(folders, CategoryFolder{Category: category, Folder: strings.TrimSpace(folder)})
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("no category folders configured")
	}
	return folders, nil
}
