package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryFolders(t *testing.T) {
	folders, err := ParseCategoryFolders(" Products=p , qna=faq-crawl,")
	require.NoError(t, err)
	assert.Equal(t, []CategoryFolder{
		{Category: CategoryProducts, Folder: "p"},
		{Category: CategoryQnA, Folder: "faq-crawl"},
	}, folders)
}

func TestParseCategoryFolders_Errors(t *testing.T) {
	for _, spec := range []string{"", " , ", "QnA", "QnA=", "Blog=b", "QnA=a,qna=b"} {
		_, err := ParseCategoryFolders(spec)
		assert.Error(t, err, spec)
	}
}

func TestDefaultCategoryFoldersOrder(t *testing.T) {
	folders := DefaultCategoryFolders()
	require.Len(t, folders, 3)
	assert.Equal(t, CategoryQnA, folders[0].Category)
	assert.Equal(t, "selftest-crawl-MD", folders[1].Folder)
	assert.Equal(t, CategoryProducts, folders[2].Category)
}

func TestRecordThumbnail(t *testing.T) {
	assert.Equal(t, "", Record{}.Thumbnail())
	src := "http://h/a.png"
	assert.Equal(t, src, Record{ThumbnailURL: &src}.Thumbnail())
}
