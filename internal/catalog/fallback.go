package catalog

// Fallback content used when a (category, subcategory) pair is absent
// from the catalog. Returning fixed generic content instead of an error
// keeps the questionnaire flow always completable.

// GenericQuestions returns the fixed 10-item question list used for any
// pair with no catalog entry. Callers must not mutate the result of a
// prior call; a fresh slice is returned each time.
func GenericQuestions() []string {
	return []string{
		"What is the main purpose or goal of your content?",
		"Who is your target audience?",
		"What style or tone do you prefer?",
		"What are the key requirements or specifications?",
		"Are there any constraints or limitations?",
		"What is the intended use or application?",
		"Do you have any specific preferences for the output?",
		"What makes this content unique or special?",
		"Are there any examples or references you'd like to follow?",
		"What success criteria should the AI consider?",
	}
}

// GenericTemplate returns the template used for any pair with no
// catalog entry.
func GenericTemplate() string {
	return `Create {category} content of type {subcategory} with the following specifications:

{answers_summary}

Please ensure the output is:
- High quality and professional
- Tailored to the specified requirements
- Creative and engaging
- Technically sound

Generated on: {timestamp}`
}

// ResolveQuestions returns the question list for a pair, falling back
// to GenericQuestions when the pair is absent.
func (c *Catalog) ResolveQuestions(category, subcategory string) []string {
	if qs, ok := c.Questions(category, subcategory); ok {
		return qs
	}
	return GenericQuestions()
}

// ResolveTemplate returns the template for a pair, falling back to
// GenericTemplate when the pair is absent.
func (c *Catalog) ResolveTemplate(category, subcategory string) string {
	if tpl, ok := c.Template(category, subcategory); ok {
		return tpl
	}
	return GenericTemplate()
}
