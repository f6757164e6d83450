package generator

import "strings"

// Topic is the closed set of answer classifications used to build the
// Specific Requirements section. The set is known at compile time, so
// it is an enumeration with explicit dispatch rather than a lookup
// table of handler functions.
type Topic int

const (
	TopicStyle Topic = iota
	TopicAudience
	TopicPurpose
	TopicFeatures
	TopicTechnology
	TopicColor
	TopicSize
	TopicTone
)

// Label returns the line prefix used in the Specific Requirements block.
func (t Topic) Label() string {
	switch t {
	case TopicStyle:
		return "Style requirements"
	case TopicAudience:
		return "Target audience"
	case TopicPurpose:
		return "Purpose"
	case TopicFeatures:
		return "Features"
	case TopicTechnology:
		return "Technology"
	case TopicColor:
		return "Color scheme"
	case TopicSize:
		return "Size specifications"
	case TopicTone:
		return "Tone/Mood"
	default:
		return "Requirement"
	}
}

// topicKeywords maps each topic to the words that trigger it, in the
// order topics are emitted. Matching is a case-insensitive substring
// scan of the question text.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicStyle, []string{"style", "aesthetic", "look", "appearance"}},
	{TopicAudience, []string{"audience", "target", "user", "viewer"}},
	{TopicPurpose, []string{"purpose", "goal", "objective", "aim"}},
	{TopicFeatures, []string{"feature", "functionality", "function"}},
	{TopicTechnology, []string{"technology", "tech", "platform", "framework"}},
	{TopicColor, []string{"color", "colour", "palette"}},
	{TopicSize, []string{"size", "length", "duration", "dimension"}},
	{TopicTone, []string{"tone", "mood", "feeling", "emotion"}},
}

// ClassifyQuestion returns every topic whose keywords appear in the
// question text. A question can match several topics; callers emit one
// line per match with no de-duplication.
func ClassifyQuestion(question string) []Topic {
	lower := strings.ToLower(question)
	var topics []Topic
	for _, entry := range topicKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, entry.topic)
				break
			}
		}
	}
	return topics
}
