package ingest

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/estla/skillserver/internal/config"
	"golang.org/x/net/html"
)

var errInvalidEncoding = errors.New("document is not valid UTF-8")

// elements whose text never reaches a summary
var skippedElements = map[string]bool{
	"style":  true,
	"script": true,
	"table":  true,
}

const metaInfoClass = "meta-info"

// void elements have no end tag, so they never open a skipped region
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true, "wbr": true,
}

func parseDocument(markup []byte) (*html.Node, error) {
	if !utf8.Valid(markup) {
		return nil, errInvalidEncoding
	}
	return html.Parse(bytes.NewReader(markup))
}

// ExtractSummary flattens markup to a bounded plain-text preview.
func ExtractSummary(markup string) (string, error) {
	if !utf8.ValidString(markup) {
		return "", errInvalidEncoding
	}
	return summaryFromMarkup([]byte(markup)), nil
}

// ExtractThumbnail returns the literal src of the first image in the document.
func ExtractThumbnail(markup string) (string, bool) {
	doc, err := parseDocument([]byte(markup))
	if err != nil {
		return "", false
	}
	return firstImageSource(doc)
}

// summaryFromMarkup collapses whitespace of the raw text before decoding
// entities, so an encoded &nbsp; or &#10; survives into the summary.
func summaryFromMarkup(markup []byte) string {
	var sb strings.Builder
	collectRawText(html.NewTokenizer(bytes.NewReader(markup)), &sb)
	collapsed := strings.Join(strings.Fields(sb.String()), " ")
	return truncateSummary(html.UnescapeString(collapsed), config.SummaryMaxChars)
}

func collectRawText(z *html.Tokenizer, sb *strings.Builder) {
	var skipTag string
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.TextToken:
			if skipDepth == 0 {
				sb.WriteByte(' ')
				sb.Write(z.Raw())
				sb.WriteByte(' ')
			}
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if skipDepth > 0 {
				if tag == skipTag {
					skipDepth++
				}
				continue
			}
			if !voidElements[tag] && (skippedElements[tag] || (hasAttr && tagHasClass(z, metaInfoClass))) {
				skipTag, skipDepth = tag, 1
				continue
			}
			sb.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipDepth > 0 {
				if string(name) == skipTag {
					skipDepth--
				}
				continue
			}
			sb.WriteByte(' ')
		case html.SelfClosingTagToken:
			if skipDepth == 0 {
				sb.WriteByte(' ')
			}
		}
	}
}

func tagHasClass(z *html.Tokenizer, class string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" && classListHas(string(val), class) {
			return true
		}
		if !more {
			return false
		}
	}
}

func classListHas(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

// truncateSummary cuts text longer than limit characters after the last
// period inside the limit, or hard-cuts and appends "...".
func truncateSummary(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	head := runes[:limit]
	for i := len(head) - 1; i >= 0; i-- {
		if head[i] == '.' {
			return string(head[:i+1])
		}
	}
	return string(head) + "..."
}

func firstImageSource(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "img" {
		for _, attr := range n.Attr {
			if attr.Key == "src" && strings.TrimSpace(attr.Val) != "" {
				return strings.TrimSpace(attr.Val), true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if src, ok := firstImageSource(c); ok {
			return src, true
		}
	}
	return "", false
}

// ResolveThumbnail makes src absolute against the document link it was found in.
// Sources that already carry a scheme are returned as they are.
func ResolveThumbnail(src, link string) (string, bool) {
	ref, err := url.Parse(src)
	if err != nil {
		return "", false
	}
	if ref.IsAbs() {
		return src, true
	}
	base, err := url.Parse(link)
	if err != nil || !base.IsAbs() {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
