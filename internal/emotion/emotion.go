package emotion

// Emotion is a closed-set label describing the user's inferred affective
// state. It is attached to a single request/response cycle and never
// persisted.
type Emotion string

const (
	Sad      Emotion = "sad"
	Anxious  Emotion = "anxious"
	Angry    Emotion = "angry"
	Happy    Emotion = "happy"
	Tired    Emotion = "tired"
	Confused Emotion = "confused"
	Grateful Emotion = "grateful"
	Calm     Emotion = "calm"
	Neutral  Emotion = "neutral"
)

// priority is the fixed classification order. When a text matches keywords
// for two emotions, the one earlier in this list wins.
var priority = []Emotion{Sad, Anxious, Angry, Happy, Tired, Confused, Grateful, Calm}

// ParseEmotion validates a client-supplied emotion label. Unknown or empty
// values return Neutral and false.
func ParseEmotion(s string) (Emotion, bool) {
	switch Emotion(s) {
	case Sad, Anxious, Angry, Happy, Tired, Confused, Grateful, Calm, Neutral:
		return Emotion(s), true
	}
	return Neutral, false
}

// Language selects both the keyword table and the language the assistant
// is asked to respond in.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	Hindi   Language = "hi"
)

// ParseLanguage maps a client-supplied language code to a supported
// language, defaulting to English. Locale suffixes ("es-ES") are accepted.
func ParseLanguage(s string) Language {
	if len(s) > 2 {
		s = s[:2]
	}
	switch Language(s) {
	case English, Spanish, Hindi:
		return Language(s)
	}
	return English
}

// Name returns the language name used in prompts.
func (l Language) Name() string {
	switch l {
	case Spanish:
		return "Spanish"
	case Hindi:
		return "Hindi"
	}
	return "English"
}
