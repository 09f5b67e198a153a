package content

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyCache struct {
	mu      sync.Mutex
	entries map[string]store.CachedSearch
	gets    int
	hits    int
	failGet bool
}

func newSpyCache() *spyCache {
	return &spyCache{entries: make(map[string]store.CachedSearch)}
}

func (c *spyCache) Get(ctx context.Context, key string) (store.CachedSearch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return store.CachedSearch{}, errors.New("redis down")
	}
	v, ok := c.entries[key]
	if !ok {
		return store.CachedSearch{}, store.ErrCacheMiss
	}
	c.hits++
	return v, nil
}

func (c *spyCache) Set(ctx context.Context, key string, value store.CachedSearch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func put(t *testing.T, fsys afero.Fs, folder, post, markup string) {
	t.Helper()
	path := filepath.Join("content", folder, post, "index.html")
	require.NoError(t, afero.WriteFile(fsys, path, []byte(markup), 0o644))
}

func newTestService(t *testing.T, cache store.ResultCache) (Service, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	put(t, fsys, "QnA-crawl", "리모컨 사용법", "<h1>리모컨</h1><p>페어링 방법을 안내합니다.</p>")
	put(t, fsys, "QnA-crawl", "화면 밝기 조절", "<p>brightness settings menu.</p>")
	put(t, fsys, "selftest-crawl-MD", "전원 점검", "<p>power cable check.</p>")
	put(t, fsys, "products-crawl", "TV 65인치", "<p>제품 소개.</p>")

	svc := NewService(ServiceConfig{
		Fs:       fsys,
		Root:     "content",
		HostBase: "http://localhost:8081/static",
		Workers:  2,
		Cache:    cache,
	})
	t.Cleanup(func() { _ = svc.Close() })
	return svc, fsys
}

func TestService_NotReadyBeforeReload(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Search(ctx, "리모컨")
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = svc.GetByCategory(ctx, document.CategoryQnA)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = svc.SearchContent(ctx, "power", 5)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = svc.ReadDocument(ctx, "전원 점검")
	assert.ErrorIs(t, err, ErrNotReady)
	assert.False(t, svc.Stats().Ready)
}

func TestService_ReloadAndQuery(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	res, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Generation)
	assert.Equal(t, 4, res.Stats.Total)

	got, err := svc.Search(ctx, "리모컨 사용법")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "리모컨 사용법", got[0].Title)

	empty, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	qna, err := svc.GetByCategory(ctx, document.CategoryQnA)
	require.NoError(t, err)
	assert.Len(t, qna, 2)

	stats := svc.Stats()
	assert.True(t, stats.Ready)
	assert.Equal(t, 4, stats.Documents)
	assert.Equal(t, 1, stats.PerCategory[document.CategoryProducts])
	assert.Equal(t, uint64(4), stats.FullTextDocuments)
	assert.False(t, stats.BuiltAt.IsZero())
}

func TestService_ReloadPicksUpNewDocuments(t *testing.T) {
	cache := newSpyCache()
	svc, fsys := newTestService(t, cache)
	ctx := context.Background()

	_, err := svc.Reload(ctx)
	require.NoError(t, err)
	before, err := svc.Search(ctx, "배터리")
	require.NoError(t, err)
	assert.Empty(t, before)

	put(t, fsys, "QnA-crawl", "배터리 교체", "<p>배터리.</p>")
	res, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Generation)

	after, err := svc.Search(ctx, "배터리")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "배터리 교체", after[0].Title)
}

func TestService_SearchUsesCache(t *testing.T) {
	cache := newSpyCache()
	svc, _ := newTestService(t, cache)
	ctx := context.Background()
	_, err := svc.Reload(ctx)
	require.NoError(t, err)

	first, err := svc.Search(ctx, "화면")
	require.NoError(t, err)
	second, err := svc.Search(ctx, " 화면 ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.hits)
	// cached hits still carry the source path
	require.NotEmpty(t, second)
	assert.NotEmpty(t, second[0].SourcePath)
}

func TestService_CacheFailureIsIgnored(t *testing.T) {
	cache := newSpyCache()
	cache.failGet = true
	svc, _ := newTestService(t, cache)
	ctx := context.Background()
	_, err := svc.Reload(ctx)
	require.NoError(t, err)

	got, err := svc.Search(ctx, "전원 점검")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_SearchContent(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	_, err := svc.Reload(ctx)
	require.NoError(t, err)

	hits, err := svc.SearchContent(ctx, "brightness", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "화면 밝기 조절", hits[0].Record.Title)
}

func TestService_ReadDocument(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	_, err := svc.Reload(ctx)
	require.NoError(t, err)

	doc, err := svc.ReadDocument(ctx, "리모컨 사용법")
	require.NoError(t, err)
	assert.Equal(t, "리모컨 사용법", doc.Record.Title)
	assert.Contains(t, doc.Markdown, "# 리모컨")
	assert.Contains(t, doc.Markdown, "페어링 방법을 안내합니다.")

	lower, err := svc.ReadDocument(ctx, "tv 65인치")
	require.NoError(t, err)
	assert.Equal(t, "TV 65인치", lower.Record.Title)

	_, err = svc.ReadDocument(ctx, "없는 문서")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestService_ConcurrentReadsDuringReload(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	_, err := svc.Reload(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Reload(ctx)
		}()
		go func() {
			defer wg.Done()
			got, err := svc.Search(ctx, "화면")
			assert.NoError(t, err)
			assert.Len(t, got, 1)
			_, err = svc.SearchContent(ctx, "power", 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(9), svc.Stats().Generation)
}
