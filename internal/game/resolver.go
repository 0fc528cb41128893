package game

import "potionhouse/internal/story"

// Outcome is the classification of one brew: the verdict written into
// history and the key of the result sequence deferred to the next morning.
type Outcome struct {
	Verdict Verdict
	Key     string

	// Rescue marks the day-3 feigned-death outcome, which sets the
	// cross-day rescue flag in history.
	Rescue bool
}

// resolveBrew classifies an ingredient multiset against the day's rule
// table. Rules are evaluated in order, first match wins, and every multiset
// of size up to three falls into exactly one outcome. Day 4 never reaches
// this: its brew selects an ending instead (see selectEnding).
func resolveBrew(day int, ingredients []string) Outcome {
	switch day {
	case 1:
		return resolveDay1(ingredients)
	case 2:
		return resolveDay2(ingredients)
	case 3:
		return resolveDay3(ingredients)
	}
	return Outcome{}
}

// Day 1: the lovesick boy. Aloe purges; chamomile with sea holly kindles.
func resolveDay1(ingredients []string) Outcome {
	switch {
	case contains(ingredients, HerbAloe):
		return Outcome{Verdict: VerdictPoisoned, Key: story.SeqDay1ResultBad}
	case contains(ingredients, HerbEryngium) && contains(ingredients, HerbChamomile):
		return Outcome{Verdict: VerdictCured, Key: story.SeqDay1ResultLove}
	default:
		return Outcome{Verdict: VerdictFail, Key: story.SeqDay1ResultFail}
	}
}

// Day 2: the beaten woman. Aloe with sea holly mends (chamomile welcome);
// aconite with a double dose of hemlock kills; either toxin alone is a
// half-measure. The half-measure rule sits after the poison rule and before
// the default, matching the game's observed behavior.
func resolveDay2(ingredients []string) Outcome {
	hasAconite := contains(ingredients, HerbAconite)
	hasHemlock := contains(ingredients, HerbHemlock)
	switch {
	case contains(ingredients, HerbAloe) && contains(ingredients, HerbEryngium):
		return Outcome{Verdict: VerdictHeal, Key: story.SeqDay2ResultHeal}
	case hasAconite && countOf(ingredients, HerbHemlock) >= 2:
		return Outcome{Verdict: VerdictPoison, Key: story.SeqDay2ResultPoison}
	case hasAconite || hasHemlock:
		return Outcome{Verdict: VerdictFail, Key: story.SeqDay2ResultFail}
	default:
		return Outcome{Verdict: VerdictHealFail, Key: story.SeqDay2ResultHealFail}
	}
}

// Day 3: the girl who asked for death. Exact counts matter here: one measure
// of each toxin and nothing else feigns death; a full poison dose with no
// filler kills; everything else changes nothing.
func resolveDay3(ingredients []string) Outcome {
	aconite := countOf(ingredients, HerbAconite)
	hemlock := countOf(ingredients, HerbHemlock)
	others := len(ingredients) - aconite - hemlock
	switch {
	case aconite == 1 && hemlock == 1 && others == 0:
		return Outcome{Verdict: VerdictFreedom, Key: story.SeqDay3ResultFake, Rescue: true}
	case aconite >= 1 && hemlock >= 2 && others == 0:
		return Outcome{Verdict: VerdictDeath, Key: story.SeqDay3ResultDeath}
	default:
		return Outcome{Verdict: VerdictMarriage, Key: story.SeqDay3ResultFail}
	}
}

// immediateReactionKey names the same-day reaction sequence played right
// after a brew, before the outcome itself is revealed next morning.
func immediateReactionKey(day int) string {
	switch day {
	case 1:
		return story.SeqDay1Result
	case 2:
		return story.SeqDay2Result
	case 3:
		return story.SeqDay3BrewComplete
	}
	return ""
}
