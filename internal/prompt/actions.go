package prompt

import (
	"fmt"
	"math/rand"
)

// Canned quick actions selectable by tag.
const (
	ActionBreathing   = "breathing"
	ActionMeditation  = "meditation"
	ActionAffirmation = "affirmation"
)

const (
	breathingPrompt  = "Generate a simple, guided breathing exercise for stress relief. Keep it 4 steps, easy to follow."
	meditationPrompt = "Create a short, 1-minute mindfulness meditation script. Focus on present moment awareness."
)

// affirmationThemes vary the affirmation prompt between calls so repeated
// requests don't converge on the same stock phrase.
var affirmationThemes = []string{
	"self-love",
	"inner strength",
	"gratitude",
	"forgiveness",
	"courage",
	"peace",
	"resilience",
	"abundance",
}

// ActionPrompt returns the user prompt for a canned action tag. The
// affirmation prompt picks a random theme on every call. Returns false for
// unknown tags.
func ActionPrompt(action string) (string, bool) {
	switch action {
	case ActionBreathing:
		return breathingPrompt, true
	case ActionMeditation:
		return meditationPrompt, true
	case ActionAffirmation:
		theme := affirmationThemes[rand.Intn(len(affirmationThemes))]
		return fmt.Sprintf("Provide one empowering positive affirmation focused on %s. Make it unique and uplifting, varying from common phrases.", theme), true
	}
	return "", false
}
