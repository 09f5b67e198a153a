package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      Intent
	}{
		{"자가 진단", Selftest},
		{"자가 진단 리스트 보여줘", Selftest},
		{"Selftest", Selftest},
		{"화면 테스트", Selftest},
		{"QnA 리스트 보여줘", QnA},
		{"자주 묻는 질문", QnA},
		{"전체 목록 보기", QnA},
		{"상담원 연결", Counselor},
		{"홈페이지", Homepage},
		{"배송조회", Delivery},
		{"배송 조회 부탁해요", Delivery},
		{"배송", Delivery},
		{"회사소개", Company},
		{"브랜드 소개", Company},
		{"제품", Products},
		{"모델 목록", Products},
		{"리모컨 배터리 교체", Search},
		{"배송비", Search},
		{"", Search},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance))
		})
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	// "진단" outranks "리스트" and "상담원"
	assert.Equal(t, Selftest, Classify("진단 리스트 상담원"))
	// "질문" outranks "홈페이지"
	assert.Equal(t, QnA, Classify("홈페이지 질문"))
	// "홈페이지" outranks "회사"
	assert.Equal(t, Homepage, Classify("회사 홈페이지"))
}

func TestClassify_CaseSensitive(t *testing.T) {
	assert.Equal(t, Search, Classify("selftest"))
	assert.Equal(t, Search, Classify("qna"))
}
