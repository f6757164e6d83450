package catalog

// Built-in content. Order matters everywhere: category order defines the
// menu, subcategory order defines the numeric selection, and question
// order defines the answer index used by the generator.

func builtinCategories() []Category {
	return []Category{
		{
			Key:         "code",
			Name:        "Code",
			Description: "Generate prompts for programming and development tasks",
			Subcategories: []string{
				"web_app", "mobile_app", "script", "backend", "debug", "code_analysis",
			},
		},
		{
			Key:         "image",
			Name:        "Image",
			Description: "Create prompts for visual and graphic content",
			Subcategories: []string{
				"fantasy", "social_media", "meme", "business", "marketing", "infographic", "character",
			},
		},
		{
			Key:         "music",
			Name:        "Music",
			Description: "Design prompts for audio and musical compositions",
			Subcategories: []string{
				"edm", "hip_hop", "country", "rnb_soul", "experimental", "vocal", "commercial", "voice_over",
			},
		},
		{
			Key:         "text",
			Name:        "Text",
			Description: "Build prompts for written content and copywriting",
			Subcategories: []string{
				"business", "blog", "social_media", "academic", "fiction", "nonfiction", "marketing",
			},
		},
		{
			Key:         "video",
			Name:        "Video",
			Description: "Develop prompts for video content and cinematography",
			Subcategories: []string{
				"documentary", "commercial", "tutorial", "entertainment", "explainer", "social_media",
			},
		},
	}
}

func builtinQuestions() map[string]map[string][]string {
	return map[string]map[string][]string{
		"code": {
			"web_app": {
				"What is the primary purpose of your web application?",
				"Who is your target audience?",
				"What main features should the application have?",
				"What technology stack do you prefer?",
				"Do you need user authentication?",
				"What is the expected user interface style?",
				"Do you need a database? What type?",
				"What are the performance requirements?",
				"Do you need responsive design for mobile devices?",
				"What are the security considerations?",
			},
			"mobile_app": {
				"What is the main goal of your mobile app?",
				"Which platform do you target: iOS, Android, or both?",
				"Who is the target user of the app?",
				"What core features must the first version have?",
				"What technology or framework do you prefer?",
				"What visual style should the interface follow?",
				"Does the app need to work offline?",
				"What device capabilities does it use (camera, GPS, push)?",
				"What are the performance and battery constraints?",
				"How should the app handle user data and privacy?",
			},
			"script": {
				"What task should the script automate?",
				"What language or runtime do you prefer?",
				"What inputs does the script take and in what format?",
				"What output should it produce?",
				"On which platform or environment will it run?",
				"How should the script handle errors and edge cases?",
				"Does it need to run on a schedule or on demand?",
				"What external tools or APIs does it interact with?",
				"Are there any constraints on dependencies?",
				"How will you verify the script works correctly?",
			},
			"backend": {
				"What is the primary purpose of the backend service?",
				"What API style do you need (REST, GraphQL, gRPC)?",
				"What technology stack or framework do you prefer?",
				"What data does the service store and in what database?",
				"What is the expected request volume and scale?",
				"What authentication and authorization model is required?",
				"What external services does it integrate with?",
				"What are the reliability and uptime requirements?",
				"How should the service be deployed and monitored?",
				"What are the security and compliance considerations?",
			},
			"debug": {
				"What is the observed incorrect behavior?",
				"What is the expected correct behavior?",
				"What language and framework is the code written in?",
				"Can you reproduce the issue consistently? How?",
				"What error messages or stack traces appear?",
				"What have you already tried to fix it?",
				"When did the issue start and what changed around then?",
				"What environment does the issue occur in?",
				"What is the relevant code or configuration?",
				"How critical is the issue and what is the impact?",
			},
			"code_analysis": {
				"What codebase or code sample should be analyzed?",
				"What language(s) is the code written in?",
				"What is the goal of the analysis (quality, security, performance)?",
				"What specific concerns or smells should be looked for?",
				"What coding standards or style guides apply?",
				"How large is the codebase?",
				"Are there known problem areas to focus on?",
				"What output format do you want for findings?",
				"Should the analysis suggest concrete fixes?",
				"What constraints limit possible refactoring?",
			},
		},
		"image": {
			"fantasy": {
				"What is the main subject of the image?",
				"What style of fantasy art do you prefer?",
				"What is the setting or environment?",
				"What mood or atmosphere should the image convey?",
				"What colors should be prominent?",
				"What level of detail do you want?",
				"Should there be any characters? Describe them.",
				"What lighting conditions do you want?",
				"What size/resolution do you need?",
				"Any specific artistic influences or references?",
			},
			"social_media": {
				"What platform is the image for?",
				"What is the purpose of the post?",
				"Who is your target audience?",
				"What visual style fits your brand?",
				"What text or caption appears on the image?",
				"What colors match your brand palette?",
				"What size and aspect ratio do you need?",
				"What mood should the image convey?",
				"What elements must be included?",
				"Any examples of posts you want to emulate?",
			},
			"meme": {
				"What is the joke or message of the meme?",
				"What meme format or template do you want?",
				"Who is the intended audience?",
				"What text goes on the image?",
				"What visual style should it have?",
				"What tone: absurdist, deadpan, wholesome, edgy?",
				"Any characters or subjects to include?",
				"What size or platform is it for?",
				"Should it reference current events or trends?",
				"Any examples of memes with the vibe you want?",
			},
			"business": {
				"What is the business purpose of the image?",
				"Who is the target audience?",
				"What should the image depict?",
				"What style fits your corporate identity?",
				"What colors align with your brand?",
				"Where will the image be used?",
				"What size and format do you need?",
				"What feeling should it convey to clients?",
				"What elements or logos must appear?",
				"Any visual references from your industry?",
			},
			"marketing": {
				"What product or service is being marketed?",
				"What is the goal of the campaign?",
				"Who is the target demographic?",
				"What is the key message of the visual?",
				"What style grabs your audience's attention?",
				"What colors support the campaign identity?",
				"Where will the creative run (web, print, outdoor)?",
				"What size and formats are required?",
				"What call to action accompanies the image?",
				"Any competitor visuals to differentiate from?",
			},
			"infographic": {
				"What topic does the infographic explain?",
				"What data or key points must it present?",
				"Who is the intended reader?",
				"What structure fits the content (timeline, comparison, flow)?",
				"What visual style do you prefer?",
				"What color palette should be used?",
				"What size and orientation do you need?",
				"What tone: playful, technical, editorial?",
				"What branding must be included?",
				"Any reference infographics you admire?",
			},
			"character": {
				"Who is the character (name, role, backstory)?",
				"What does the character look like physically?",
				"What clothing or equipment do they wear?",
				"What personality should their appearance convey?",
				"What art style do you prefer?",
				"What pose or action should they be shown in?",
				"What setting or backdrop surrounds them?",
				"What colors define the character design?",
				"What mood should the portrait have?",
				"Any character designs that inspire this one?",
			},
		},
		"music": {
			"edm": {
				"What EDM subgenre do you want (house, techno, dubstep)?",
				"What tempo or BPM range fits the track?",
				"What mood or energy should the track have?",
				"What is the track's intended use (club, festival, stream)?",
				"What synths or sound design elements do you want?",
				"Should there be vocals? Describe them.",
				"What song structure do you prefer?",
				"What duration should the track be?",
				"What artists or tracks inspire the sound?",
				"What makes this track stand out?",
			},
			"hip_hop": {
				"What hip hop style do you want (boom bap, trap, lo-fi)?",
				"What tempo and groove fits the track?",
				"What is the lyrical theme or subject?",
				"What mood should the beat convey?",
				"What instruments or samples do you want?",
				"Who is the target listener?",
				"Should there be a hook? Describe it.",
				"What duration should the track be?",
				"What artists inspire the sound?",
				"What is the intended use of the track?",
			},
			"country": {
				"What country style do you want (classic, modern, outlaw)?",
				"What is the song's story or theme?",
				"What mood should the song convey?",
				"What instruments should feature (steel guitar, fiddle, banjo)?",
				"What tempo fits the song?",
				"Describe the vocal style you want.",
				"Who is the target audience?",
				"What duration should the song be?",
				"What artists or songs inspire it?",
				"Where will the song be used?",
			},
			"rnb_soul": {
				"What era or style of R&B/soul do you want?",
				"What is the song about?",
				"What mood and feeling should it convey?",
				"Describe the vocal style and harmonies.",
				"What instrumentation do you want?",
				"What tempo and groove fits the song?",
				"Who is the target listener?",
				"What duration should the song be?",
				"What artists inspire the sound?",
				"What makes this song unique?",
			},
			"experimental": {
				"What conventions should this piece break?",
				"What textures or sound sources interest you?",
				"What emotional journey should the piece take?",
				"What structure, if any, should it follow?",
				"What duration do you envision?",
				"Should there be recognizable rhythm or melody?",
				"What techniques do you want explored (granular, musique concrete)?",
				"Who is the intended listener?",
				"What artists or works inspire this?",
				"Where will the piece be presented?",
			},
			"vocal": {
				"What style of vocal performance do you need?",
				"What is the lyrical content or message?",
				"What mood should the vocals convey?",
				"What vocal range and gender do you prefer?",
				"What backing arrangement supports the vocals?",
				"What tempo fits the performance?",
				"Who is the target audience?",
				"What duration should the piece be?",
				"What vocalists inspire the style?",
				"What is the recording's intended use?",
			},
			"commercial": {
				"What product or brand is the music for?",
				"What feeling should the music evoke about the brand?",
				"What duration does the spot require?",
				"What genre or style fits the brand identity?",
				"What energy curve should the music follow?",
				"What instruments define the sound?",
				"Who is the target demographic?",
				"Does it need space for a voice-over?",
				"What reference tracks capture the vibe?",
				"Where will the commercial air?",
			},
			"voice_over": {
				"What is the script or subject of the voice-over?",
				"What tone should the narrator have?",
				"What gender and age range fits the voice?",
				"What pacing do you need (calm, urgent, conversational)?",
				"What is the target audience?",
				"What duration is the recording?",
				"What accent or language is required?",
				"Where will the voice-over be used?",
				"Any voice actors whose style you want?",
				"What background music or sound accompanies it?",
			},
		},
		"text": {
			"business": {
				"What type of business document do you need?",
				"What is the purpose of the document?",
				"Who is the intended reader?",
				"What key points must be covered?",
				"What tone fits the situation (formal, direct, warm)?",
				"What length should the document be?",
				"What action should the reader take after reading?",
				"What context or background is relevant?",
				"Are there compliance or legal constraints?",
				"Any examples of documents you want to match?",
			},
			"blog": {
				"What topic does the blog post cover?",
				"What is the goal of the post (educate, entertain, convert)?",
				"Who is your target reader?",
				"What tone and voice fits your blog?",
				"What key points or sections should it include?",
				"What length do you want?",
				"What keywords should it target for SEO?",
				"What call to action ends the post?",
				"What makes your perspective unique?",
				"Any posts or writers that inspire the style?",
			},
			"social_media": {
				"What platform is the post for?",
				"What is the purpose of the post?",
				"Who is your audience?",
				"What is the core message?",
				"What tone fits your brand voice?",
				"What length or character limit applies?",
				"What hashtags or mentions should be included?",
				"What call to action do you want?",
				"Is this part of a series or campaign?",
				"Any example posts with the energy you want?",
			},
			"academic": {
				"What is the research topic or question?",
				"What type of academic text is it (essay, abstract, review)?",
				"What discipline and audience is it for?",
				"What key arguments or findings must be presented?",
				"What citation style is required?",
				"What length is required?",
				"What sources should be engaged with?",
				"What is your thesis or position?",
				"What level of technicality is appropriate?",
				"Any structural requirements from the venue?",
			},
			"fiction": {
				"What is the premise of the story?",
				"What genre and subgenre is it?",
				"Who is the protagonist and what do they want?",
				"What is the setting (time, place, world)?",
				"What tone and mood should the prose have?",
				"What point of view and tense do you prefer?",
				"What length is the piece?",
				"What themes should the story explore?",
				"Who is the intended reader?",
				"What authors or works inspire the style?",
			},
			"nonfiction": {
				"What subject does the piece cover?",
				"What is the purpose (inform, argue, narrate)?",
				"Who is the intended reader?",
				"What key facts or events must be included?",
				"What tone fits the subject?",
				"What length do you need?",
				"What structure should the piece follow?",
				"What sources or research inform it?",
				"What perspective or angle do you bring?",
				"Any writers whose style you want to echo?",
			},
			"marketing": {
				"What product or service is being promoted?",
				"What marketing asset do you need (ad copy, email, landing page)?",
				"Who is the target customer?",
				"What is the key benefit to communicate?",
				"What tone fits the brand voice?",
				"What length or format constraints apply?",
				"What objections must the copy overcome?",
				"What call to action drives conversion?",
				"What differentiates you from competitors?",
				"Any campaigns that inspire this one?",
			},
		},
		"video": {
			"documentary": {
				"What subject does the documentary explore?",
				"What is the central question or thesis?",
				"Who is the intended viewer?",
				"What tone should the film have?",
				"What visual style do you envision?",
				"What duration is the film?",
				"Who are the key subjects or interviewees?",
				"What archival or location footage is needed?",
				"What narration approach do you want?",
				"What documentaries inspire this one?",
			},
			"commercial": {
				"What product or service is advertised?",
				"What is the goal of the spot?",
				"Who is the target demographic?",
				"What is the key message in one sentence?",
				"What duration does the spot run?",
				"What visual style fits the brand?",
				"What mood should the spot convey?",
				"Where will the commercial air?",
				"What call to action closes the spot?",
				"Any commercials that inspire this one?",
			},
			"tutorial": {
				"What skill or process does the tutorial teach?",
				"Who is the learner and what do they already know?",
				"What are the steps to cover, in order?",
				"What duration should the video be?",
				"What visual aids do you need (screen capture, diagrams)?",
				"What tone fits the audience?",
				"What common mistakes should be addressed?",
				"What should the viewer be able to do afterward?",
				"What platform will host the video?",
				"Any tutorial channels whose style you like?",
			},
			"entertainment": {
				"What is the concept of the video?",
				"What format is it (sketch, vlog, short film)?",
				"Who is the target viewer?",
				"What tone and humor style do you want?",
				"What duration should it be?",
				"What visual style fits the concept?",
				"Who are the characters or personalities?",
				"What platform is it made for?",
				"What makes this concept fresh?",
				"Any creators who inspire the style?",
			},
			"explainer": {
				"What concept or product does the video explain?",
				"Who is the audience and what do they know already?",
				"What is the single takeaway message?",
				"What duration should it be?",
				"What visual style do you want (animation, live action)?",
				"What tone fits the subject?",
				"What structure should the explanation follow?",
				"What objections or confusions must be addressed?",
				"What call to action ends the video?",
				"Any explainer videos that inspire this one?",
			},
			"social_media": {
				"What platform is the video for?",
				"What is the purpose of the video?",
				"Who is your audience?",
				"What duration and aspect ratio fits the platform?",
				"What hook opens the first three seconds?",
				"What visual style matches your brand?",
				"What tone should the video have?",
				"What text overlays or captions are needed?",
				"What call to action do you want?",
				"Any viral videos with the energy you want?",
			},
		},
	}
}

// Templates are keyed per category and applied to every subcategory in
// it; the map form keeps the lookup shape identical for user overrides.
func builtinTemplates() map[string]map[string]string {
	categoryTemplates := map[string]string{
		"code": `Create a {subcategory} with the following specifications:

{answers_summary}

Please ensure the code is:
- Well-documented and clean
- Following best practices for {category}
- Scalable and maintainable
- Secure and optimized

Generated on: {timestamp}`,
		"image": `Generate a {subcategory} image with these characteristics:

{answers_summary}

Style: Professional digital art
Quality: High resolution, detailed
Format: Suitable for digital use

Generated on: {timestamp}`,
		"music": `Compose a {subcategory} track with these characteristics:

{answers_summary}

Production: Polished, release-ready
Mix: Balanced and dynamic

Generated on: {timestamp}`,
		"text": `Write {subcategory} content with the following specifications:

{answers_summary}

Please ensure the writing is:
- Clear and engaging
- Appropriate for the stated audience
- Free of filler and cliche

Generated on: {timestamp}`,
		"video": `Produce a {subcategory} video concept with these specifications:

{answers_summary}

Deliverable: Shot-ready creative brief
Quality: Professional production standard

Generated on: {timestamp}`,
	}

	out := make(map[string]map[string]string)
	for _, cat := range builtinCategories() {
		tpl, ok := categoryTemplates[cat.Key]
		if !ok {
			continue
		}
		subs := make(map[string]string, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			subs[sub] = tpl
		}
		out[cat.Key] = subs
	}
	return out
}
