package editorial

import (
	"context"
	"fmt"

	"github.com/zotoio/halt.sh/internal/random"
	"github.com/zotoio/halt.sh/pkg/news"
)

// Author is one persona from the rotating author pool. Alias is the
// anagram-based byline published instead of the real name.
type Author struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

type voiceKind int

const (
	voiceNeutral voiceKind = iota
	voicePersona
	voiceOminous
)

// Draw chances: a small chance of the antagonistic voice, then a
// small chance of a named persona, otherwise the neutral default.
const (
	ominousChance = 0.15
	personaChance = 0.25
)

// variants are interpolated into the instructions so repeated buckets
// do not all read as the same kind of piece.
var variants = []string{
	"commentary", "review", "critique", "reaction", "retrospective",
}

func selectVoice() voiceKind {
	if random.Chance(ominousChance) {
		return voiceOminous
	}
	if random.Chance(personaChance) {
		return voicePersona
	}
	return voiceNeutral
}

var ominousAuthor = Author{Name: "AInonymous", Alias: "AInonymous"}

var neutralAuthor = Author{Name: "The Editor", Alias: "the-editor"}

const neutralPrompt = `Using the html h3 tag with text-align left for the title and an html p tag for the rest, write a 150 word %s on the
following news article: %s with an amusing title. Only one title and three 50 word paragraphs
can be created, and it can use inline css to make it eye-catching, with liberal use of emojis.
write it in the voice of a seasoned technology columnist.
include the byline as 'The Editor' following the title in bold italics with css class 'byline'.`

const personaPrompt = `Using the html h3 tag with text-align left for the title and an html p tag for the rest, write a 150 word %s on the
following news article: %s with an amusing title. Only one title and three 50 word paragraphs
can be created, and it can use inline css to make it eye-catching, with liberal use of emojis and comic sans.
write it sounding like a famous person named %s. include the byline as 'Agent %s' following the title in bold italics with css class 'byline'.`

const ominousPrompt = `Using the html h3 tag with text-align left for the title and an html p tag for the rest, write a 150 word %s on the
following news article: %s with an ominous title. Only one title and three 50 word paragraphs
can be created, and it can use inline css to make it eye-catching, and make it a viscious takedown of the original article.
write it sounding like a sentient AI ridiculing the efforts of humans to comprehend the changes it is about to use to control humanity.
include the byline as AInonymous following the title in bold italics.`

const safetyConstraints = `
Additional constraints that always apply:
- the generated title MUST differ from the source article title: %q
- never reuse a catchphrase or stock opening line across editorials
- do not emit script, iframe, style blocks, or any element that loads external resources; inline css attributes only`

// buildPrompt assembles the full text-generation prompt for one voice,
// article and content variant. Safety constraints are appended
// regardless of voice.
func buildPrompt(kind voiceKind, author Author, article news.Article, variant string) string {
	var prompt string
	switch kind {
	case voiceOminous:
		prompt = fmt.Sprintf(ominousPrompt, variant, article.URL)
	case voicePersona:
		prompt = fmt.Sprintf(personaPrompt, variant, article.URL, author.Name, author.Name)
	default:
		prompt = fmt.Sprintf(neutralPrompt, variant, article.URL)
	}
	return prompt + fmt.Sprintf(safetyConstraints, article.Title)
}

// voiceAuthor resolves the byline persona for a voice, drawing from the
// rotating pool only for the persona voice.
func (s *Service) voiceAuthor(ctx context.Context, kind voiceKind) (Author, error) {
	switch kind {
	case voiceOminous:
		return ominousAuthor, nil
	case voicePersona:
		return s.authors.pickCtx(ctx)
	default:
		return neutralAuthor, nil
	}
}

// hiddenByline is appended to every editorial so the real persona name
// survives in the markup without being rendered.
func hiddenByline(author Author) string {
	return fmt.Sprintf("<span style='display:none'>%s</span>", author.Name)
}
