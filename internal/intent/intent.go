package intent

import "strings"

type Intent string

const (
	Selftest  Intent = "selftest"
	QnA       Intent = "qna"
	Counselor Intent = "counselor"
	Homepage  Intent = "homepage"
	Delivery  Intent = "delivery"
	Company   Intent = "company"
	Products  Intent = "products"
	Search    Intent = "search"
)

type rule struct {
	intent   Intent
	contains []string
	equals   []string
}

// rules are checked in order; the first one that matches wins.
var rules = []rule{
	{intent: Selftest, contains: []string{"자가 진단", "Selftest", "진단", "테스트"}},
	{intent: QnA, contains: []string{"QnA", "자주 묻는 질문", "질문", "전체 목록", "리스트"}},
	{intent: Counselor, contains: []string{"상담원"}},
	{intent: Homepage, contains: []string{"홈페이지"}},
	{intent: Delivery, contains: []string{"배송조회", "배송 조회"}, equals: []string{"배송"}},
	{intent: Company, contains: []string{"회사", "소개"}},
	{intent: Products, contains: []string{"상품", "제품", "모델"}},
}

// Classify maps a trimmed utterance to the canned reply it should get.
// Anything no rule claims is a document search.
func Classify(utterance string) Intent {
	for _, r := range rules {
		if r.matches(utterance) {
			return r.intent
		}
	}
	return Search
}

func (r rule) matches(utterance string) bool {
	for _, e := range r.equals {
		if utterance == e {
			return true
		}
	}
	for _, c := range r.contains {
		if strings.Contains(utterance, c) {
			return true
		}
	}
	return false
}
