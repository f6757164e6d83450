package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptforge/internal/catalog"
	"promptforge/internal/generator"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	cat := catalog.New()
	gen := generator.New(cat)
	return New(cat, gen)
}

// startQuestionnaire drives a fresh machine to the first question of
// code/web_app.
func startQuestionnaire(t *testing.T, m *Machine) {
	t.Helper()
	require.Equal(t, EventNone, m.Handle("start").Kind)
	require.Equal(t, EventNone, m.Handle("code").Kind)
	require.Equal(t, EventNone, m.Handle("web_app").Kind)
	require.Equal(t, PageQuestionnaire, m.Page())
	require.Equal(t, 0, m.Index())
	require.NotEmpty(t, m.Questions())
}

func TestMainMenuTransitions(t *testing.T) {
	cases := []struct {
		input string
		page  Page
	}{
		{"start", PageCategorySelect},
		{"s", PageCategorySelect},
		{"readme", PageReadme},
		{"r", PageReadme},
		{"guide", PageGuide},
		{"g", PageGuide},
		{"history", PageHistory},
		{"h", PageHistory},
		{"settings", PageSettings},
		{"set", PageSettings},
		{"stats", PageStats},
		{"st", PageStats},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			m := newTestMachine(t)
			ev := m.Handle(tc.input)
			assert.Equal(t, EventNone, ev.Kind)
			assert.Equal(t, tc.page, m.Page())
		})
	}

	t.Run("quit", func(t *testing.T) {
		m := newTestMachine(t)
		assert.Equal(t, EventQuit, m.Handle("quit").Kind)
	})

	t.Run("invalid input stays put", func(t *testing.T) {
		m := newTestMachine(t)
		assert.Equal(t, EventInvalid, m.Handle("bogus").Kind)
		assert.Equal(t, PageMainMenu, m.Page())
	})

	t.Run("case insensitive", func(t *testing.T) {
		m := newTestMachine(t)
		assert.Equal(t, EventNone, m.Handle("  START  ").Kind)
		assert.Equal(t, PageCategorySelect, m.Page())
	})
}

func TestInfoPagesReturnHome(t *testing.T) {
	for _, entry := range []string{"readme", "guide"} {
		t.Run(entry, func(t *testing.T) {
			m := newTestMachine(t)
			require.Equal(t, EventNone, m.Handle(entry).Kind)
			assert.Equal(t, EventNone, m.Handle("anything").Kind)
			assert.Equal(t, PageMainMenu, m.Page())
		})
	}

	t.Run("quit exits from readme", func(t *testing.T) {
		m := newTestMachine(t)
		require.Equal(t, EventNone, m.Handle("readme").Kind)
		assert.Equal(t, EventQuit, m.Handle("q").Kind)
	})
}

func TestCategorySelection(t *testing.T) {
	t.Run("by index", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		ev := m.Handle("1")
		assert.Equal(t, EventNone, ev.Kind)
		assert.Equal(t, PageSubcategorySelect, m.Page())
		assert.Equal(t, "code", m.Category().Key)
	})

	t.Run("by name", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		m.Handle("image")
		assert.Equal(t, "image", m.Category().Key)
	})

	t.Run("invalid selection re-prompts", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		assert.Equal(t, EventInvalid, m.Handle("99").Kind)
		assert.Equal(t, PageCategorySelect, m.Page())
	})

	t.Run("home returns to main menu", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		assert.Equal(t, EventNone, m.Handle("home").Kind)
		assert.Equal(t, PageMainMenu, m.Page())
	})
}

func TestSubcategorySelection(t *testing.T) {
	t.Run("back returns to category select", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		m.Handle("code")
		assert.Equal(t, EventNone, m.Handle("back").Kind)
		assert.Equal(t, PageCategorySelect, m.Page())
	})

	t.Run("selection starts questionnaire at zero", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		assert.Empty(t, m.Answers())
		assert.Zero(t, m.SkippedCount())
	})

	t.Run("invalid subcategory re-prompts", func(t *testing.T) {
		m := newTestMachine(t)
		m.Handle("start")
		m.Handle("code")
		assert.Equal(t, EventInvalid, m.Handle("nonsense").Kind)
		assert.Equal(t, PageSubcategorySelect, m.Page())
	})
}

func TestQuestionnaireAnswers(t *testing.T) {
	t.Run("answer records and advances", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		ev := m.Handle("a social network")
		assert.Equal(t, EventNone, ev.Kind)
		assert.Equal(t, 1, m.Index())
		assert.Equal(t, "a social network", m.Answers()[0])
	})

	t.Run("blank input advances without recording", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("   ")
		assert.Equal(t, 1, m.Index())
		assert.Empty(t, m.Answers())
	})

	t.Run("next advances without recording", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("next")
		assert.Equal(t, 1, m.Index())
		assert.Empty(t, m.Answers())
		assert.Zero(t, m.SkippedCount())
	})

	t.Run("skip advances and counts", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		ev := m.Handle("skip")
		assert.Equal(t, EventNotice, ev.Kind)
		assert.Equal(t, 1, m.Index())
		assert.Equal(t, 1, m.SkippedCount())
	})

	t.Run("answer text is trimmed", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("  padded answer  ")
		assert.Equal(t, "padded answer", m.Answers()[0])
	})
}

func TestQuestionnaireBack(t *testing.T) {
	t.Run("back at zero exits to subcategory select", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		ev := m.Handle("back")
		assert.Equal(t, EventNone, ev.Kind)
		assert.Equal(t, PageSubcategorySelect, m.Page())
		assert.Equal(t, 0, m.Index())
	})

	t.Run("back decrements and removes the answer", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("first answer")
		m.Handle("second answer")
		require.Equal(t, 2, m.Index())

		m.Handle("back")
		assert.Equal(t, 1, m.Index())
		assert.Equal(t, PageQuestionnaire, m.Page())
		answers := m.Answers()
		assert.Equal(t, "first answer", answers[0])
		_, exists := answers[1]
		assert.False(t, exists, "answer at the revisited index must be removed")
	})

	t.Run("back clears a skip mark", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("skip")
		require.Equal(t, 1, m.SkippedCount())
		m.Handle("back")
		assert.Zero(t, m.SkippedCount())
	})

	t.Run("back never drives the index negative", func(t *testing.T) {
		m := newTestMachine(t)
		startQuestionnaire(t, m)
		m.Handle("back")
		require.Equal(t, PageSubcategorySelect, m.Page())
		m.Handle("web_app")
		m.Handle("back")
		assert.Equal(t, 0, m.Index())
	})
}

func TestQuestionnaireRestart(t *testing.T) {
	m := newTestMachine(t)
	startQuestionnaire(t, m)
	m.Handle("one")
	m.Handle("skip")
	m.Handle("three")
	require.Equal(t, 3, m.Index())

	ev := m.Handle("restart")
	assert.Equal(t, EventNotice, ev.Kind)
	assert.Equal(t, PageQuestionnaire, m.Page())
	assert.Equal(t, 0, m.Index())
	assert.Empty(t, m.Answers())
	assert.Zero(t, m.SkippedCount())
	assert.NotEmpty(t, m.Questions(), "restart keeps the question list")
}

func TestQuestionnaireCompletion(t *testing.T) {
	m := newTestMachine(t)
	startQuestionnaire(t, m)
	total := len(m.Questions())

	var ev Event
	for i := 0; i < total; i++ {
		ev = m.Handle("answer")
	}
	assert.Equal(t, EventGenerated, ev.Kind)
	assert.Equal(t, PageResult, m.Page())
	assert.NotEmpty(t, m.Prompt())
}

func TestQuestionnaireCompletionViaSkips(t *testing.T) {
	m := newTestMachine(t)
	startQuestionnaire(t, m)
	total := len(m.Questions())

	var ev Event
	for i := 0; i < total; i++ {
		ev = m.Handle("sk")
	}
	assert.Equal(t, EventGenerated, ev.Kind)
	assert.Equal(t, PageResult, m.Page())
	assert.Equal(t, total, m.SkippedCount())
	assert.NotEmpty(t, m.Prompt())
}

func completeQuestionnaire(t *testing.T, m *Machine) {
	t.Helper()
	startQuestionnaire(t, m)
	for i := len(m.Questions()); i > 0; i-- {
		m.Handle("answer")
	}
	require.Equal(t, PageResult, m.Page())
}

func TestResultPage(t *testing.T) {
	t.Run("copy commits only after confirmation", func(t *testing.T) {
		m := newTestMachine(t)
		completeQuestionnaire(t, m)

		assert.Equal(t, EventCopy, m.Handle("copy").Kind)
		assert.False(t, m.Copied(), "copy is pending until the caller confirms it")

		// The caller never confirmed (clipboard write failed), so the
		// user can ask again.
		assert.Equal(t, EventCopy, m.Handle("copy").Kind)

		m.MarkCopied()
		assert.True(t, m.Copied())
		assert.Equal(t, EventInvalid, m.Handle("copy").Kind)
	})

	t.Run("save", func(t *testing.T) {
		m := newTestMachine(t)
		completeQuestionnaire(t, m)
		assert.Equal(t, EventSave, m.Handle("save").Kind)
		assert.Equal(t, PageResult, m.Page())
	})

	t.Run("restart reruns the questionnaire clean", func(t *testing.T) {
		m := newTestMachine(t)
		completeQuestionnaire(t, m)
		ev := m.Handle("restart")
		assert.Equal(t, EventNotice, ev.Kind)
		assert.Equal(t, PageQuestionnaire, m.Page())
		assert.Equal(t, 0, m.Index())
		assert.Empty(t, m.Answers())
	})

	t.Run("home", func(t *testing.T) {
		m := newTestMachine(t)
		completeQuestionnaire(t, m)
		m.Handle("home")
		assert.Equal(t, PageMainMenu, m.Page())
	})

	t.Run("quit", func(t *testing.T) {
		m := newTestMachine(t)
		completeQuestionnaire(t, m)
		assert.Equal(t, EventQuit, m.Handle("quit").Kind)
	})
}

func TestHistoryAndStatsReturnHome(t *testing.T) {
	for _, entry := range []string{"history", "stats"} {
		t.Run(entry, func(t *testing.T) {
			m := newTestMachine(t)
			m.Handle(entry)
			m.Handle("")
			assert.Equal(t, PageMainMenu, m.Page())
		})
	}
}

func TestSettingsOptions(t *testing.T) {
	m := newTestMachine(t)
	m.Handle("settings")
	for want := 1; want <= 4; want++ {
		ev := m.Handle(string(rune('0' + want)))
		assert.Equal(t, EventSettingsOption, ev.Kind)
		assert.Equal(t, want, ev.Option)
		assert.Equal(t, PageSettings, m.Page())
	}
	m.Handle("back")
	assert.Equal(t, PageMainMenu, m.Page())
}

func TestReset(t *testing.T) {
	m := newTestMachine(t)
	completeQuestionnaire(t, m)
	m.Reset()
	assert.Equal(t, PageMainMenu, m.Page())
	assert.Equal(t, 0, m.Index())
	assert.Empty(t, m.Answers())
	assert.Empty(t, m.Prompt())
}

func TestHelpDoesNotAdvance(t *testing.T) {
	m := newTestMachine(t)
	startQuestionnaire(t, m)
	ev := m.Handle("?")
	assert.Equal(t, EventHelp, ev.Kind)
	assert.Equal(t, 0, m.Index())
}
