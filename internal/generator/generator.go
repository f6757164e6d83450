// Package generator turns a completed questionnaire into the final
// prompt string. Generation is a pure transformation: catalog content
// in, prompt out, with an injected clock so output is reproducible
// under test.
package generator

import (
	"strings"
	"time"

	"promptforge/internal/catalog"
	"promptforge/internal/logging"
)

// NotSpecified is the placeholder value for unanswered questions.
const NotSpecified = "Not specified"

const timestampLayout = "2006-01-02 15:04:05"

// Generator produces prompts from catalog templates and user answers.
type Generator struct {
	catalog *catalog.Catalog
	clock   func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source. Tests freeze it.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// New creates a Generator backed by the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Questions returns the ordered question list for a pair, falling back
// to the generic list when the pair has no catalog entry.
func (g *Generator) Questions(category, subcategory string) []string {
	qs, ok := g.catalog.Questions(category, subcategory)
	if !ok {
		logging.CatalogWarn("no questions for %s/%s, using generic fallback", category, subcategory)
		return catalog.GenericQuestions()
	}
	return qs
}

// Generate builds the final prompt for a pair from the answer set.
// Answers are keyed by question index; missing indices are treated as
// NotSpecified. The answer map is never mutated.
func (g *Generator) Generate(category, subcategory string, answers map[int]string) string {
	tpl, ok := g.catalog.Template(category, subcategory)
	if !ok {
		logging.CatalogWarn("no template for %s/%s, using generic fallback", category, subcategory)
		tpl = catalog.GenericTemplate()
	}

	questions := g.Questions(category, subcategory)

	// Dense positional answer list; gaps become NotSpecified.
	ordered := make([]string, len(questions))
	for i := range questions {
		if a, ok := answers[i]; ok {
			ordered[i] = a
		} else {
			ordered[i] = NotSpecified
		}
	}

	replacer := strings.NewReplacer(
		"{category}", titleCase(category),
		"{subcategory}", titleCase(subcategory),
		"{timestamp}", g.clock().Format(timestampLayout),
		"{answers_summary}", answersSummary(questions, ordered),
	)
	prompt := replacer.Replace(tpl)

	prompt += integrationSection(questions, ordered)

	logging.Generator("generated prompt for %s/%s (%d answers)", category, subcategory, len(answers))
	return prompt
}

// answersSummary builds the filtered bullet projection of the answers:
// one line per index with a real answer; skipped and empty indices are
// omitted entirely.
func answersSummary(questions, answers []string) string {
	var sb strings.Builder
	for i, question := range questions {
		answer := answers[i]
		if strings.TrimSpace(answer) == "" || answer == NotSpecified {
			continue
		}
		sb.WriteString("\n• ")
		sb.WriteString(question)
		sb.WriteString(": ")
		sb.WriteString(answer)
	}
	return strings.TrimSpace(sb.String())
}

// integrationSection classifies each answered question by the topical
// keywords in its text and emits one labeled line per matching topic.
// A question mentioning several topics emits under each of them; the
// classification is deliberately non-exclusive. Returns "" when nothing
// matched so the section header never appears empty.
func integrationSection(questions, answers []string) string {
	var lines []string
	for i, question := range questions {
		answer := answers[i]
		if strings.TrimSpace(answer) == "" || answer == NotSpecified {
			continue
		}
		for _, topic := range ClassifyQuestion(question) {
			lines = append(lines, topic.Label()+": "+answer)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\nSpecific Requirements:\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(line)
	}
	return sb.String()
}

// titleCase uppercases the first letter of every word, where words are
// separated by any non-letter. "web_app" becomes "Web_App", matching
// the historical output of the tool.
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		switch {
		case startOfWord && isLower:
			sb.WriteRune(r - 'a' + 'A')
		case !startOfWord && isUpper:
			sb.WriteRune(r - 'A' + 'a')
		default:
			sb.WriteRune(r)
		}
		startOfWord = !isLower && !isUpper
	}
	return sb.String()
}
