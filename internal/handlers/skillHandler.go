package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/estla/skillserver/internal/adapter"
	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/internal/intent"
)

const maxSkillBody = 1 << 20

const (
	welcomeText      = "안녕하세요 이스트라입니다.\n무엇을 도와드릴까요?"
	selftestListText = "자가 진단 리스트입니다.\n원하시는 항목을 선택해주세요."
	qnaListText      = "자주 묻는 질문 리스트입니다.\n원하시는 항목을 선택해주세요."
	productsListText = "이스트라의 주요 제품 리스트입니다.\n원하시는 항목을 선택해주세요."
	counselorText    = "상담원 연결을 원하시면 아래 버튼을 눌러주세요."
	companyText      = "이스트라는 TV 전문 브랜드로서, '기본에 충실하자'라는 슬로건 아래 합리적인 가격과 최고의 품질, 그리고 진정성 있는 서비스를 제공합니다.\n\n2019년 설립 이후 스마트 TV 시장을 선도하며, 국내 최초 전 부품 5년 무상 A/S를 실시하는 등 고객 만족을 위해 최선을 다하고 있습니다."
	errorText        = "오류가 발생했습니다."

	counselorURL  = "http://pf.kakao.com/_xxxx/chat"
	homepageURL   = "https://estla.co.kr/"
	deliveryURL   = "https://estla.co.kr/211"
	brandStoryURL = "https://estla.co.kr/brandstory"
)

// WelcomeHandler godoc
// @Summary      Welcome block
// @Description  Greeting text with the main menu as quick replies.
// @Tags         Skill
// @Accept       json
// @Produce      json
// @Success      200  {object}  api.SkillResponse
// @Router       /api/welcome [post]
func (h *Handler) WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToSkillResponse(
		[]api.Output{adapter.SimpleText(welcomeText)},
		adapter.MessageReply("홈페이지", "홈페이지 이동"),
		adapter.MessageReply("배송조회", "배송조회"),
		adapter.MessageReply("회사소개", "회사 소개"),
		adapter.MessageReply("자주 묻는 질문", "QnA 리스트 보여줘"),
		adapter.MessageReply("자가 진단", "자가 진단 리스트 보여줘"),
		adapter.MessageReply("상담원 연결", "상담원 연결"),
	))
}

// FallbackHandler godoc
// @Summary      Fallback block
// @Description  Routes the utterance to a canned reply or a document search. Always answers 200.
// @Tags         Skill
// @Accept       json
// @Produce      json
// @Param        request  body      api.SkillRequest  true  "Kakao skill payload"
// @Success      200      {object}  api.SkillResponse
// @Router       /api/fallback [post]
func (h *Handler) FallbackHandler(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithTrace(r.Context(), config.TRACE_ID_KEY)

	utterance, err := h.readUtterance(r)
	if err != nil {
		log.Error("Unreadable skill request", "error", err)
		writeJsonResponse(w, http.StatusOK, errorReply())
		return
	}
	log.Info("User utterance", "utterance", utterance)

	reply, err := h.reply(r, utterance)
	if err != nil {
		log.Error("Could not answer utterance", "utterance", utterance, "error", err)
		writeJsonResponse(w, http.StatusOK, errorReply())
		return
	}
	writeJsonResponse(w, http.StatusOK, reply)
}

func (h *Handler) readUtterance(r *http.Request) (string, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSkillBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if err := h.validator.Validate(body); err != nil {
		return "", fmt.Errorf("validate body: %w", err)
	}
	var request api.SkillRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return strings.TrimSpace(request.UserRequest.Utterance), nil
}

func (h *Handler) reply(r *http.Request, utterance string) (api.SkillResponse, error) {
	switch intent.Classify(utterance) {
	case intent.Selftest:
		return h.categoryReply(r, document.CategorySelftest, selftestListText, "자가 진단")
	case intent.QnA:
		return h.categoryReply(r, document.CategoryQnA, qnaListText, "자주 묻는 질문")
	case intent.Counselor:
		return adapter.ToSkillResponse([]api.Output{
			adapter.SimpleText(counselorText),
			adapter.LinkCard("상담원 연결", "평일 09:00 ~ 18:00 (점심시간 12:00 ~ 13:00)", "카카오톡 상담하기", counselorURL),
		}), nil
	case intent.Homepage:
		return adapter.ToSkillResponse([]api.Output{
			adapter.LinkCard("이스트라 홈페이지", "이스트라의 다양한 제품을 만나보세요.", "홈페이지 바로가기", homepageURL),
		}), nil
	case intent.Delivery:
		return adapter.ToSkillResponse([]api.Output{
			adapter.LinkCard("배송 조회", "주문하신 상품의 배송 현황을 확인하세요.", "배송 조회하기", deliveryURL),
		}), nil
	case intent.Company:
		return adapter.ToSkillResponse([]api.Output{
			adapter.SimpleText(companyText),
			adapter.LinkCard("이스트라 브랜드 스토리", "이스트라의 이야기를 더 자세히 알아보세요.", "브랜드 스토리 보기", brandStoryURL),
		}), nil
	case intent.Products:
		return h.categoryReply(r, document.CategoryProducts, productsListText, "이스트라 제품")
	default:
		return h.searchReply(r, utterance)
	}
}

func (h *Handler) categoryReply(r *http.Request, category document.Category, text string, header string) (api.SkillResponse, error) {
	records, err := h.content.GetByCategory(r.Context(), category)
	if err != nil {
		return api.SkillResponse{}, err
	}
	return adapter.ToSkillResponse([]api.Output{
		adapter.SimpleText(text),
		adapter.ListCard(header, records),
	}), nil
}

func (h *Handler) searchReply(r *http.Request, utterance string) (api.SkillResponse, error) {
	results, err := h.content.Search(r.Context(), utterance)
	if err != nil {
		return api.SkillResponse{}, err
	}

	switch len(results) {
	case 0:
		return adapter.ToSkillResponse(
			[]api.Output{adapter.SimpleText(fmt.Sprintf("'%s'에 대한 내용을 찾지 못했습니다.\n다른 키워드로 검색해보시거나 메뉴를 선택해주세요.", utterance))},
			adapter.MessageReply("홈으로", "홈으로"),
			adapter.MessageReply("전체 목록 보기", "QnA 리스트 보여줘"),
		), nil
	case 1:
		item := results[0]
		return adapter.ToSkillResponse([]api.Output{
			adapter.SimpleText(fmt.Sprintf("'%s'에 대해 찾아보았습니다.\n\n%s\n\n자세한 내용은 아래 '자세히 보기' 버튼을 눌러 확인해주세요.", item.Title, item.Summary)),
			adapter.BasicCard(item),
		}), nil
	default:
		cards := adapter.ListCard(fmt.Sprintf("'%s' 검색 결과", utterance), results)
		if adapter.CarouselFits(results) {
			cards = adapter.Carousel(results)
		}
		return adapter.ToSkillResponse([]api.Output{
			adapter.SimpleText(fmt.Sprintf("'%s'와 관련된 문서를 %d개 찾았습니다.\n원하시는 내용을 선택해주세요.", utterance, len(results))),
			cards,
		}), nil
	}
}

func errorReply() api.SkillResponse {
	return adapter.ToSkillResponse([]api.Output{adapter.SimpleText(errorText)})
}
