package game

import "potionhouse/internal/story"

// selectEnding picks the terminal branch for the session. Evaluated only on
// day 4's brew, in strict priority order over the keepsakes in the cauldron
// and the accumulated history. Exactly one ending is selected and selection
// is final until a full restart.
func selectEnding(ingredients []string, history History) story.EndingID {
	hasFeather := contains(ingredients, ItemFeather)
	hasBroom := contains(ingredients, ItemBroom)
	hasDagger := contains(ingredients, ItemDagger)

	switch {
	case contains(ingredients, ItemCat):
		return story.EndingCat
	case hasFeather && hasBroom:
		return story.EndingGodhead
	case hasBroom && hasDagger:
		return story.EndingGodhead
	case history.Day3Result == VerdictFreedom:
		return story.EndingEscape
	default:
		return story.EndingPyre
	}
}
