package wizard

// readmeContent is shown on the readme page, rendered as markdown.
const readmeContent = `# promptforge

promptforge builds detailed, structured prompts for AI tools through a
guided questionnaire.

Pick a category (code, image, music, text, or video), pick a
subcategory, and answer a short series of questions. Your answers are
folded into a purpose-built template, and the finished prompt can be
copied to the clipboard, saved to a file, or pulled back up later from
history.

## Features

- Five built-in categories with 34 subcategories
- Ten focused questions per subcategory; every one is skippable
- Automatic requirement extraction from your answers
- Prompt history with search and statistics
- Custom categories and question lists via the settings page

## Data

Everything lives under ` + "`~/.promptforge`" + ` (override with
` + "`FORGE_DATA_DIR`" + `): configuration, history, and user catalogs.
Saved prompts go to the configured output directory.
`

// guideContent is shown on the guide page, rendered as markdown.
const guideContent = `# How to get a good prompt

1. **Pick the closest subcategory.** The questions and template are
   tailored to it. If nothing fits, a generic questionnaire still
   works.

2. **Answer in fragments, not essays.** Each answer is folded into a
   bullet list; "dark fantasy, oil painting texture" reads better than
   a paragraph.

3. **Skip freely.** Unanswered questions are simply left out of the
   prompt. A few strong answers beat ten vague ones.

4. **Mention style, audience, and tone explicitly.** Answers to
   questions containing those words are also lifted into a dedicated
   Specific Requirements section.

## Navigation

Every page accepts typed commands. The important ones:

| Command | Effect |
|---------|--------|
| ` + "`b`" + ` / ` + "`back`" + ` | previous question, or back one page |
| ` + "`sk`" + ` / ` + "`skip`" + ` | skip the current question |
| ` + "`r`" + ` / ` + "`restart`" + ` | restart the questionnaire |
| ` + "`h`" + ` / ` + "`home`" + ` | main menu |
| ` + "`q`" + ` / ` + "`quit`" + ` | exit |
| ` + "`?`" + ` | help |
`
