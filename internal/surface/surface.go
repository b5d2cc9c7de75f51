// Package surface renders a fully realized plan into output text. It
// assumes the root holds paragraphs as children and each paragraph holds
// sentence messages.
package surface

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jtoivan/statnews/internal/model"
)

var (
	openParenSpace  = regexp.MustCompile(`\(\s`)
	spaceCloseParen = regexp.MustCompile(`\s\)`)
	spaceComma      = regexp.MustCompile(`\s,`)
)

// Renderer turns a plan into a single string. The framing strings decide
// the output format; an empty sentence either fails the render or is
// skipped, depending on FailOnEmpty.
type Renderer struct {
	ParagraphStart string
	ParagraphEnd   string
	SentenceStart  string
	SentenceEnd    string
	FailOnEmpty    bool
}

// NewHeadlineRenderer renders bare text with no framing. An empty
// sentence is an error: a headline must say something.
func NewHeadlineRenderer() *Renderer {
	return &Renderer{FailOnEmpty: true}
}

// NewBodyRenderer renders HTML paragraphs.
func NewBodyRenderer() *Renderer {
	return &Renderer{
		ParagraphStart: "<p>",
		ParagraphEnd:   "</p>",
		SentenceEnd:    ". ",
	}
}

// NewListBodyRenderer renders each sentence as an HTML list item.
func NewListBodyRenderer() *Renderer {
	return &Renderer{
		ParagraphStart: "<ul>",
		ParagraphEnd:   "</ul>",
		SentenceStart:  "<li>",
		SentenceEnd:    ".</li>",
	}
}

// Render realizes the whole plan, one paragraph per root child.
func (r *Renderer) Render(root *model.Branch) (string, error) {
	var out strings.Builder
	for _, child := range root.Children {
		paragraph, ok := child.(*model.Branch)
		if !ok {
			continue
		}
		text, err := r.renderParagraph(paragraph)
		if err != nil {
			return "", err
		}
		out.WriteString(r.ParagraphStart)
		out.WriteString(text)
		out.WriteString(r.ParagraphEnd)
	}
	return out.String(), nil
}

func (r *Renderer) renderParagraph(paragraph *model.Branch) (string, error) {
	var out strings.Builder
	for _, child := range paragraph.Children {
		message, ok := child.(*model.Message)
		if !ok || message.Template == nil {
			continue
		}
		sentence := renderSentence(message.Template)
		if sentence == "" {
			if r.FailOnEmpty {
				return "", fmt.Errorf("rendering: empty sentence")
			}
			continue
		}
		out.WriteString(r.SentenceStart)
		out.WriteString(capitalize(sentence))
		out.WriteString(r.SentenceEnd)
	}
	return out.String(), nil
}

func renderSentence(template *model.Template) string {
	values := make([]string, 0, len(template.Components))
	for _, component := range template.Components {
		if value := component.Value(); value != "" {
			values = append(values, value)
		}
	}
	sentence := strings.TrimRight(strings.Join(values, " "), " ")

	// Realizers occasionally leave stray spaces around punctuation.
	sentence = openParenSpace.ReplaceAllString(sentence, "(")
	sentence = spaceCloseParen.ReplaceAllString(sentence, ")")
	sentence = spaceComma.ReplaceAllString(sentence, ",")
	return sentence
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
