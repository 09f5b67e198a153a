package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostBase = "http://localhost:8081/static"

func writeDoc(t *testing.T, fsys afero.Fs, parts ...string) {
	t.Helper()
	markup := parts[len(parts)-1]
	path := filepath.Join(append(parts[:len(parts)-1:len(parts)-1], config.DocumentFileName)...)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(markup), 0o644))
}

func newCorpus(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeDoc(t, fsys, "root", "QnA-crawl", "리모컨 사용법", `<html><head><title>리모컨</title></head><body><img src="images/remote.png"><p>리모컨 &amp; 배터리.</p></body></html>`)
	writeDoc(t, fsys, "root", "QnA-crawl", "화면 밝기 조절", `<html><body><div class="meta-info">원문 보기</div><p>밝기를 조절합니다.</p></body></html>`)
	writeDoc(t, fsys, "root", "selftest-crawl-MD", "전원 점검", `<html><body><img src="https://cdn.example.com/power.jpg"><p>전원을 확인하세요.</p></body></html>`)
	// folder without index.html and a stray file are skipped
	require.NoError(t, fsys.MkdirAll(filepath.Join("root", "QnA-crawl", "empty"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("root", "QnA-crawl", "notes.txt"), []byte("x"), 0o644))
	return fsys
}

func TestBuildIndex_DiscoveryOrderAndFields(t *testing.T) {
	fsys := newCorpus(t)

	records, stats := BuildIndex(fsys, "root", document.DefaultCategoryFolders(), hostBase)

	require.Len(t, records, 3)
	assert.Equal(t, "리모컨 사용법", records[0].Title)
	assert.Equal(t, "화면 밝기 조절", records[1].Title)
	assert.Equal(t, "전원 점검", records[2].Title)

	first := records[0]
	assert.Equal(t, document.CategoryQnA, first.Category)
	assert.Equal(t, "/QnA-crawl/%EB%A6%AC%EB%AA%A8%EC%BB%A8%20%EC%82%AC%EC%9A%A9%EB%B2%95/index.html", first.WebPath)
	assert.Equal(t, hostBase+first.WebPath, first.Link)
	assert.Equal(t, filepath.Join("root", "QnA-crawl", "리모컨 사용법", "index.html"), first.SourcePath)
	assert.Equal(t, "리모컨 리모컨 & 배터리.", first.Summary)
	require.NotNil(t, first.ThumbnailURL)
	assert.Equal(t, "http://localhost:8081/static/QnA-crawl/%EB%A6%AC%EB%AA%A8%EC%BB%A8%20%EC%82%AC%EC%9A%A9%EB%B2%95/images/remote.png", *first.ThumbnailURL)

	assert.Equal(t, "밝기를 조절합니다.", records[1].Summary)
	assert.Nil(t, records[1].ThumbnailURL)

	assert.Equal(t, document.CategorySelftest, records[2].Category)
	require.NotNil(t, records[2].ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/power.jpg", *records[2].ThumbnailURL)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 2, stats.PerCategory[document.CategoryQnA])
	assert.Equal(t, 1, stats.PerCategory[document.CategorySelftest])
	assert.Equal(t, 0, stats.PerCategory[document.CategoryProducts])
}

func TestBuildIndex_MissingRootIsEmpty(t *testing.T) {
	records, stats := BuildIndex(afero.NewMemMapFs(), "nowhere", document.DefaultCategoryFolders(), hostBase)
	assert.Empty(t, records)
	assert.Equal(t, 0, stats.Total)
}

func TestBuildIndex_BrokenDocumentKeepsPlaceholder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeDoc(t, fsys, "root", "products-crawl", "깨진 문서", string([]byte{0xff, 0xfe, 0xfd}))
	writeDoc(t, fsys, "root", "products-crawl", "정상 문서", "<p>정상.</p>")

	records, stats := BuildIndex(fsys, "root", document.DefaultCategoryFolders(), hostBase)

	require.Len(t, records, 2)
	assert.Equal(t, "깨진 문서", records[0].Title)
	assert.Equal(t, config.PreviewUnavailable, records[0].Summary)
	assert.Nil(t, records[0].ThumbnailURL)
	assert.Equal(t, "정상.", records[1].Summary)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 2, stats.Total)
}

func TestBuildIndex_Idempotent(t *testing.T) {
	fsys := newCorpus(t)
	b := Builder{Fs: fsys, Root: "root", Folders: document.DefaultCategoryFolders(), HostBase: hostBase, Workers: 4}

	first, _ := b.Build(context.Background())
	second, _ := b.Build(context.Background())
	assert.Equal(t, first, second)
}

func TestBuildIndex_ManyDocumentsKeepSlotOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var want []string
	for i := 0; i < 40; i++ {
		name := "doc-" + string(rune('A'+i/26)) + string(rune('a'+i%26))
		want = append(want, name)
		writeDoc(t, fsys, "root", "QnA-crawl", name, "<p>"+name+".</p>")
	}
	b := Builder{Fs: fsys, Root: "root", Folders: document.DefaultCategoryFolders(), HostBase: hostBase, Workers: 3}

	records, stats := b.Build(context.Background())

	require.Len(t, records, 40)
	for i, r := range records {
		assert.Equal(t, want[i], r.Title)
		assert.Equal(t, want[i]+".", r.Summary)
	}
	assert.Equal(t, 40, stats.PerCategory[document.CategoryQnA])
}

func TestBuildIndex_CustomFolders(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeDoc(t, fsys, "root", "크롤링_Products", "TV 모델", "<p>모델.</p>")
	folders := []document.CategoryFolder{{Category: document.CategoryProducts, Folder: "크롤링_Products"}}

	records, _ := BuildIndex(fsys, "root", folders, hostBase)

	require.Len(t, records, 1)
	assert.True(t, strings.HasPrefix(records[0].WebPath, "/%ED%81%AC%EB%A1%A4%EB%A7%81_Products/"))
	assert.Equal(t, document.CategoryProducts, records[0].Category)
}
