package story

// Brewing hints. The day-1 pair is selected by the choice path; days 2 and 3
// by which prompt sequence led into brewing; day 4 by which keepsakes the
// session has collected.
const (
	HintDay1Love   = "As you like. Try what the customer suggested: chamomile and sea holly together."
	HintDay1Punish = "Time to flush all that bile out of him, good and proper."
	HintDay2Heal   = "Use the two herbs that nourish the skin and share a color.\nThe one you brewed as tea before wouldn't hurt either."
	HintDay2Poison = "Use the two herbs that brim with venom and stand in opposing colors.\nOnly one of the pair will leave the work half done."
	HintDay3Fake   = "Only those two herbs carry poison and antidote in the same stem."
	HintDay3Poison = "Two venoms striking one heart — but is a single measure truly enough?"
	HintDay4Wake   = "'It is time.' Wake up."
	HintDay4Reward = "Everything you have done until now will be answered."
)

// DayHints is the fallback hint per day, shown when no path-specific hint is
// active.
var DayHints = map[int]string{
	1: "The herbal might hold a recipe fit for the boy.",
	2: "Not every wound sits on the skin. Watch what she needs.",
	3: "Some requests change nothing when refused. But the choice is yours.",
	4: "End it all, or...",
}

// ResultTitles labels the morning-report modal for each deferred outcome key.
var ResultTitles = map[string]string{
	SeqDay1ResultLove:     "Event: The Boy Who Wanted Love",
	SeqDay1ResultBad:      "Event: The Boy Who Wanted Love",
	SeqDay1ResultFail:     "Event: The Boy Who Wanted Love",
	SeqDay2ResultHeal:     "Event: The Wounded Woman",
	SeqDay2ResultPoison:   "Event: The Wounded Woman",
	SeqDay2ResultFail:     "Event: The Wounded Woman",
	SeqDay2ResultHealFail: "Event: The Wounded Woman",
	SeqDay3ResultFake:     "Event: The Girl Who Asked for Death",
	SeqDay3ResultDeath:    "Event: The Girl Who Asked for Death",
	SeqDay3ResultFail:     "Event: The Girl Who Asked for Death",
}

// JournalEntries are unlocked one per morning, index day-1, days 1 through 3.
var JournalEntries = []string{
	"Hawthorn blooms in May, announcing spring just in time for the May Day revels, and gives the shepherds their shade. People believe it carries a strange power — \"fairy tree,\" \"cuckoo's beads,\" \"the fair folk's cup,\" they call it.\nLady Diana always said hawthorn could save a life; it makes a tonic for the heart.\n\n(A long gap, before anyone writes in this journal again.)\n\nEva has not come in a long while.\n\n(Smudged lines, hard to make out.)\nNeed to gather gum arabic — Aunt Emma's eye trouble is back.\nDance season soon. Lay in extra buttercup and ragged-robin.\nSomeone may yet want wormwood, for heartsickness.\n\n(Another gap, before the journal is taken up once more.)\n\nAunt Emma has not come in a long while either.",
	"It has not stopped.\n\nThe voice in my head has not stopped.",
	"(The last pages are water-stained and empty.)",
}
