package search

import (
	"testing"

	"github.com/estla/skillserver/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(titles ...string) []document.Record {
	out := make([]document.Record, len(titles))
	for i, title := range titles {
		out[i] = document.Record{Title: title, Category: document.CategoryQnA, Link: "http://host/static/" + title}
	}
	return out
}

func titlesOf(rs []document.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}

func TestSearch_ExactShortCircuits(t *testing.T) {
	index := records("리모컨 배터리 교체", "리모컨 사용법", "리모컨 분실")

	res := DefaultOptions().Search("리모컨 사용법", index)

	assert.Equal(t, []string{"리모컨 사용법"}, titlesOf(res.Records))
	assert.Equal(t, TierExact, res.Tier)
}

func TestSearch_ExactIsCaseInsensitive(t *testing.T) {
	index := records("QnA 안내", "qna 안내 상세")

	got := Search("  qna 안내 ", index)

	assert.Equal(t, []string{"QnA 안내"}, titlesOf(got))
}

func TestSearch_SubstringKeepsDiscoveryOrder(t *testing.T) {
	index := records("화면 밝기 조절", "리모컨 사용법", "화면 색상 설정")

	res := DefaultOptions().Search("화면", index)

	assert.Equal(t, []string{"화면 밝기 조절", "화면 색상 설정"}, titlesOf(res.Records))
	assert.Equal(t, TierSubstring, res.Tier)
}

func TestSearch_TokenAnd(t *testing.T) {
	index := records("리모컨 배터리 교체", "배터리 부족 경고")
	opts := DefaultOptions()
	opts.FuzzyTriggerBelow = 0

	got := opts.Search("배터리 교체", index)

	assert.Equal(t, []string{"리모컨 배터리 교체"}, titlesOf(got.Records))
}

func TestSearch_TokenAndNonContiguous(t *testing.T) {
	index := records("배터리 리모컨 교체", "배터리 부족 경고")
	opts := DefaultOptions()
	opts.FuzzyTriggerBelow = 0

	res := opts.Search("배터리 교체", index)

	assert.Equal(t, []string{"배터리 리모컨 교체"}, titlesOf(res.Records))
	assert.Equal(t, TierToken, res.Tier)
}

func TestSearch_TokenAndWithFuzzyFallback(t *testing.T) {
	index := records("배터리 리모컨 교체", "배터리 부족 경고")

	got := Search("배터리 교체", index)

	assert.Equal(t, []string{"배터리 리모컨 교체", "배터리 부족 경고"}, titlesOf(got))
}

func TestSearch_TokenOrderDoesNotMatter(t *testing.T) {
	index := records("리모컨 배터리 교체", "배터리 부족 경고")
	opts := DefaultOptions()
	opts.FuzzyTriggerBelow = 0

	got := opts.Search("교체 리모컨", index)

	assert.Equal(t, []string{"리모컨 배터리 교체"}, titlesOf(got.Records))
}

func TestSearch_FuzzyFillsWhenFewResults(t *testing.T) {
	index := records("화면 밝기 조절", "화면 색상 설정", "화멘")

	res := DefaultOptions().Search("화면", index)

	assert.Equal(t, []string{"화면 밝기 조절", "화면 색상 설정", "화멘"}, titlesOf(res.Records))
	assert.Equal(t, TierSubstring, res.Tier)
}

func TestSearch_FuzzySkippedAtThreshold(t *testing.T) {
	index := records("화면 밝기 조절", "화면 색상 설정", "화면 꺼짐", "화멘")

	got := Search("화면", index)

	assert.Equal(t, []string{"화면 밝기 조절", "화면 색상 설정", "화면 꺼짐"}, titlesOf(got))
}

func TestSearch_FuzzyOnlyTypo(t *testing.T) {
	index := records("리모컨 배터리 교체", "배터리 부족 경고", "화면 밝기 조절", "화면 색상 설정", "전원 점검", "리모컨 사용법")

	res := DefaultOptions().Search("리모콘 배터리", index)

	assert.Equal(t, []string{"리모컨 배터리 교체", "리모컨 사용법"}, titlesOf(res.Records))
	assert.Equal(t, TierFuzzy, res.Tier)
}

func TestSearch_TokenThenFuzzyDeduplicated(t *testing.T) {
	index := records("리모컨 배터리 교체", "배터리 부족 경고", "화면 밝기 조절", "화면 색상 설정", "전원 점검", "리모컨 사용법")

	got := Search("화면 설정", index)

	assert.Equal(t, []string{"화면 색상 설정", "화면 밝기 조절"}, titlesOf(got))
}

func TestSearch_NoMatch(t *testing.T) {
	res := DefaultOptions().Search("abc", records("리모컨 사용법", "전원 점검"))
	assert.Empty(t, res.Records)
	assert.Equal(t, TierNone, res.Tier)
}

func TestSearch_EmptyQuery(t *testing.T) {
	index := records("리모컨 사용법")
	assert.Empty(t, Search("", index))
	assert.Empty(t, Search("   ", index))
	assert.Empty(t, Search("\t\n", index))
}

func TestSearch_DeduplicatesTitlesAcrossCategories(t *testing.T) {
	index := records("전원 점검", "전원 버튼")
	dup := index[0]
	dup.Category = document.CategorySelftest
	index = append(index, dup)

	got := Search("전원", index)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"전원 점검", "전원 버튼"}, titlesOf(got))
	assert.Equal(t, document.CategoryQnA, got[0].Category)
}

func TestSearch_ExactWithDuplicateTitlesReturnsFirst(t *testing.T) {
	index := records("전원 점검", "전원 점검")
	index[1].Category = document.CategorySelftest

	got := Search("전원 점검", index)

	require.Len(t, got, 1)
	assert.Equal(t, document.CategoryQnA, got[0].Category)
}

func TestGetByCategory(t *testing.T) {
	index := []document.Record{
		{Title: "a", Category: document.CategoryQnA},
		{Title: "b", Category: document.CategorySelftest},
		{Title: "c", Category: document.CategoryQnA},
		{Title: "a", Category: document.CategoryQnA},
	}

	assert.Equal(t, []string{"a", "c"}, titlesOf(GetByCategory(document.CategoryQnA, index)))
	assert.Equal(t, []string{"b"}, titlesOf(GetByCategory(document.CategorySelftest, index)))
	assert.Empty(t, GetByCategory(document.CategoryProducts, index))
}

func TestCloseMatches(t *testing.T) {
	t.Run("caps candidates and orders ties by title descending", func(t *testing.T) {
		got := closeMatches("a", []string{"aa", "ab", "ac", "ad", "ae", "af", "ag"}, 5, 0.4)
		assert.Equal(t, []string{"ag", "af", "ae", "ad", "ac"}, got)
	})

	t.Run("cutoff is inclusive", func(t *testing.T) {
		got := closeMatches("리모콘", []string{"리모컨 배터리 교체", "리모컨 사용법"}, 5, 0.4)
		assert.Equal(t, []string{"리모컨 사용법"}, got)
	})

	t.Run("better score first", func(t *testing.T) {
		got := closeMatches("화면", []string{"화면 밝기 조절", "화면 색상 설정", "화멘"}, 5, 0.4)
		assert.Equal(t, []string{"화멘", "화면 색상 설정", "화면 밝기 조절"}, got)
	})

	t.Run("nothing similar", func(t *testing.T) {
		assert.Empty(t, closeMatches("abc", []string{"전원 점검"}, 5, 0.4))
	})
}
