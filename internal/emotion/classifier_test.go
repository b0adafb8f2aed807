package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lang     Language
		expected Emotion
	}{
		{
			name:     "single english keyword",
			text:     "I am so happy today",
			lang:     English,
			expected: Happy,
		},
		{
			name:     "priority order wins over later emotion",
			text:     "I feel so anxious and sad today",
			lang:     English,
			expected: Sad,
		},
		{
			name:     "spanish keyword",
			text:     "Estoy muy feliz",
			lang:     Spanish,
			expected: Happy,
		},
		{
			name:     "hindi keyword",
			text:     "मैं बहुत खुश हूं",
			lang:     Hindi,
			expected: Happy,
		},
		{
			name:     "no keyword returns neutral",
			text:     "the weather report for tomorrow",
			lang:     English,
			expected: Neutral,
		},
		{
			name:     "case insensitive",
			text:     "I AM FURIOUS",
			lang:     English,
			expected: Angry,
		},
		{
			name:     "substring match inside a longer word",
			text:     "I'm feeling downhearted",
			lang:     English,
			expected: Sad,
		},
		{
			name:     "multi-word keyword",
			text:     "completely burned out after this week",
			lang:     English,
			expected: Tired,
		},
		{
			name:     "empty text returns neutral",
			text:     "",
			lang:     English,
			expected: Neutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text, tt.lang))
		})
	}
}

func TestClassifyUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Sad, Classify("I feel hopeless", Language("fr")))
}

func TestClassifyPriorityIsExhaustive(t *testing.T) {
	// One unambiguous keyword per emotion, each must classify to its own
	// label regardless of position in the priority order.
	samples := map[Emotion]string{
		Sad:      "heartbroken",
		Anxious:  "overwhelmed",
		Angry:    "furious",
		Happy:    "fantastic",
		Tired:    "exhausted",
		Confused: "puzzled",
		Grateful: "thankful",
		Calm:     "tranquil",
	}
	for want, text := range samples {
		assert.Equal(t, want, Classify(text, English), "keyword %q", text)
	}
}

func TestParseEmotion(t *testing.T) {
	e, ok := ParseEmotion("grateful")
	assert.True(t, ok)
	assert.Equal(t, Grateful, e)

	e, ok = ParseEmotion("ecstatic")
	assert.False(t, ok)
	assert.Equal(t, Neutral, e)

	_, ok = ParseEmotion("")
	assert.False(t, ok)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Spanish, ParseLanguage("es"))
	assert.Equal(t, Spanish, ParseLanguage("es-ES"))
	assert.Equal(t, Hindi, ParseLanguage("hi-IN"))
	assert.Equal(t, English, ParseLanguage("fr"))
	assert.Equal(t, English, ParseLanguage(""))
}
