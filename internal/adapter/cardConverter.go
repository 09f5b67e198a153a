package adapter

import (
	"fmt"

	"github.com/estla/skillserver/internal/api"
	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
)

const (
	ActionMessage = "message"
	ActionWebLink = "webLink"

	detailLabel   = "자세히 보기"
	moreLabel     = "더 보기"
	carouselCards = "basicCard"
)

func ToSkillResponse(outputs []api.Output, quickReplies ...api.QuickReply) api.SkillResponse {
	return api.SkillResponse{
		Version: api.SkillVersion,
		Template: api.SkillTemplate{
			Outputs:      outputs,
			QuickReplies: quickReplies,
		},
	}
}

func SimpleText(text string) api.Output {
	return api.Output{SimpleText: &api.SimpleText{Text: text}}
}

func MessageReply(label string, messageText string) api.QuickReply {
	return api.QuickReply{Label: label, Action: ActionMessage, MessageText: messageText}
}

func WebLinkButton(label string, url string) api.Button {
	return api.Button{Action: ActionWebLink, Label: label, WebLinkUrl: url}
}

// LinkCard is a basic card with fixed text and a single web link button.
func LinkCard(title string, description string, label string, url string) api.Output {
	return api.Output{BasicCard: &api.BasicCard{
		Title:       title,
		Description: description,
		Buttons:     []api.Button{WebLinkButton(label, url)},
	}}
}

// ListCard shows at most ListCardMaxItems records. Tapping an item sends its
// full title back as an utterance; a "더 보기" button is added when records
// were left out.
func ListCard(title string, records []document.Record) api.Output {
	shown := records
	if len(shown) > config.ListCardMaxItems {
		shown = shown[:config.ListCardMaxItems]
	}

	items := make([]api.ListItem, 0, len(shown))
	for _, r := range shown {
		items = append(items, api.ListItem{
			Title:       truncateRunes(r.Title, config.ListItemTitleMaxChars),
			Description: string(r.Category),
			Action:      ActionMessage,
			MessageText: r.Title,
		})
	}

	card := &api.ListCard{
		Header: api.ListCardHeader{Title: truncateRunes(title, config.CardHeaderMaxChars)},
		Items:  items,
	}
	if len(records) > config.ListCardMaxItems {
		card.Buttons = []api.Button{{
			Label:       moreLabel,
			Action:      ActionMessage,
			MessageText: fmt.Sprintf("%s 더 보여줘", title),
		}}
	}
	return api.Output{ListCard: card}
}

func BasicCard(record document.Record) api.Output {
	card := toBasicCard(record)
	return api.Output{BasicCard: &card}
}

// CarouselFits reports whether every record can be shown as a picture card
// in a single carousel.
func CarouselFits(records []document.Record) bool {
	if len(records) < 2 || len(records) > config.CarouselMaxItems {
		return false
	}
	for _, r := range records {
		if r.Thumbnail() == "" {
			return false
		}
	}
	return true
}

func Carousel(records []document.Record) api.Output {
	shown := records
	if len(shown) > config.CarouselMaxItems {
		shown = shown[:config.CarouselMaxItems]
	}
	cards := make([]api.BasicCard, 0, len(shown))
	for _, r := range shown {
		cards = append(cards, toBasicCard(r))
	}
	return api.Output{Carousel: &api.Carousel{Type: carouselCards, Items: cards}}
}

func toBasicCard(record document.Record) api.BasicCard {
	card := api.BasicCard{
		Title:       record.Title,
		Description: CardDescription(record),
		Buttons:     []api.Button{WebLinkButton(detailLabel, record.Link)},
	}
	if thumb := record.Thumbnail(); thumb != "" {
		card.Thumbnail = &api.Thumbnail{ImageUrl: thumb}
	}
	return card
}

// CardDescription is the summary cut to CardDescriptionChars, or the
// category when there is no summary.
func CardDescription(record document.Record) string {
	runes := []rune(record.Summary)
	if len(runes) > config.CardDescriptionChars {
		return string(runes[:config.CardDescriptionChars]) + "..."
	}
	if record.Summary == "" {
		return string(record.Category)
	}
	return record.Summary
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
