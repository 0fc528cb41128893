package story

// IntroLines are shown one at a time on the intro screen before day one. They
// are plain narration, not nodes, so the intro never enters the cursor.
var IntroLines = []string{
	"...",
	"...",
	"In the dream: narcissus bulbs and the smell of a coming storm.",
	"The scent of moss-green soil.",
	"You drift awake. Cold settles against your chest. Winter is close.",
	"\"The fog is in.\"",
}

// scriptSequences returns every dialogue sequence in the game. Node ids are
// globally unique; several choices jump across sequence boundaries by id.
func scriptSequences() map[string][]*Node {
	return map[string][]*Node{
		SeqDay1Start: {
			{ID: "d1_wake", Speaker: SpeakerSystem, Text: "\"Ah...\""},
			{ID: "d1_1", Speaker: SpeakerSystem, Text: "Woken, you stare idly out the window. The sky has been darkening for days now.\nThe banked clouds look like a black cat asleep with its belly to the air."},
			{ID: "d1_2", Speaker: SpeakerCat, Text: "Mrow—"},
			{ID: "d1_3", Speaker: SpeakerSystem, Text: "...As if unwilling to be outdone, a sound rises outside, close behind the lazy cry of the cat."},
			{ID: "d1_4", Speaker: SpeakerSystem, Text: "You step to the window, and a long, rain-soaked figure is drawn inside like a ghost returning to a house it once loved."},
		},
		SeqDay1Guest: {
			{ID: "d1_g1", Speaker: "Boy", Text: "Good evening, madam."},
			{ID: "d1_g2", Speaker: "Boy", Text: "The watch on the forest road has tightened lately. I barely slipped past the nightmen.\nYou are the herbalist everyone speaks of, aren't you?"},
			{ID: "d1_g3", Speaker: "Boy", Text: "I came through the storm on the strength of your name. I hope you can help me."},
			{ID: "d1_g4", Speaker: SpeakerSystem, Text: "You pour your visitor a cup of chamomile tea.\nChamomile settles the nerves. There is no better opening for an honest conversation."},
			{ID: "d1_g5", Speaker: "Boy", Text: "It's good! ...Ah..."},
			{ID: "d1_g6", Speaker: "Boy", Text: "Madam, please hear me out...\nIt's like this. A girl who cannot make up her mind has given me lovesickness."},
			{ID: "d1_g7", Speaker: "Boy", Text: "She and I grew up together.\nWe played nearly every day on the little hill behind the village, the one with the apple tree."},
			{ID: "d1_g8", Speaker: "Boy", Text: "I still remember the day we tried to climb it for apples and couldn't even reach the lowest branch.\nShe wouldn't give up — she circled the tree, shaking it, fuming, and got nothing for it."},
			{ID: "d1_g9", Speaker: "Boy", Text: "The light was going, the sun nearly down...\nAny later and we'd lose the path home! I wanted to tell her to stop without spoiling it for her, so I just stood there, watching..."},
			{ID: "d1_g10", Speaker: "Boy", Text: "Then from somewhere she dragged up a long branch,\nswung it hard a few times, and knocked down two or three apples after all."},
			{ID: "d1_g11", Speaker: "Boy", Text: "I have never forgotten how she laughed, holding the apples up — her cheeks redder and fuller than any apple.\nI have loved her since that moment."},
			{ID: "d1_g12", Speaker: "Boy", Text: "We are both fifteen now. A proper age to marry."},
			{ID: "d1_g13", Speaker: "Boy", Text: "And yet, though I keep my pockets full of ragged-robin, she never sees what I mean by it.\nNo — perhaps she is only shy. Perhaps she cannot bring herself to face my feelings."},
			{ID: "d1_g14", Speaker: "Boy", Text: "So I hoped you might give her—"},
			{ID: "d1_g15", Speaker: SpeakerSystem, Text: "Wasn't the cure meant for his lovesickness?—\nCatching the question in your eyes, the boy says, gravely:"},
			{ID: "d1_g16", Speaker: "Boy", Text: "Who else could she love, if not me? We grew up together."},
			{ID: "d1_g17", Speaker: SpeakerSystem, Text: "Not knowing what face to make, you murmur: \"The world is large.\""},
			{ID: "d1_g18", Speaker: "Boy", Text: "It is because the world is large that I can't let her lose her way.\nMadam, let your potion point her true. Let her see that I am worth loving."},
			{ID: "d1_g19", Speaker: "Boy", Text: "Here — an herb you may need. It is sea holly.\nIt blends with chamomile, but must never be mixed with aloe."},
			{ID: "d1_guest_choices", Speaker: SpeakerWhisper, Text: "...", Choices: []Choice{
				{Text: "Such green, unripe love", Target: EnterBrewing(BrewPathLove)},
				{Text: "Teach this presumptuous fool a lesson!", Target: EnterBrewing(BrewPathPunish)},
			}},
		},
		SeqDay1Result: {
			{ID: "d1_r_end", Speaker: "Boy", Text: "Thank you!\nWith this, tomorrow's meeting is sure to go well!"},
			{ID: "d1_r_end2", Speaker: SpeakerSystem, Text: "You watch in silence as the boy hurries off, delighted."},
		},
		SeqDay1ResultLove: {
			{ID: "d1_r1", Speaker: SpeakerSystem, Text: "No lark sang this morning, though the cuckoo called with unusual vigor."},
			{ID: "d1_r2", Speaker: SpeakerSystem, Text: "You wonder how the boy and his \"beloved\" are getting on."},
			{ID: "d1_r3", Speaker: SpeakerSystem, Text: "On the porch you find a cuckoo's tail feather."},
		},
		SeqDay1ResultBad: {
			{ID: "d1_r4", Speaker: SpeakerSystem, Text: "You wish them both swift and thorough digestion."},
			{ID: "d1_r5", Speaker: SpeakerSystem, Text: "Perhaps, in its way, that helps the nameless girl."},
			{ID: "d1_r6", Speaker: SpeakerSystem, Text: "Tonight, at least, romance is out of the question for them."},
		},
		SeqDay1ResultFail: {
			{ID: "d1_r7", Speaker: SpeakerSystem, Text: "A dull thud wakes you before dawn — something struck the door, hard."},
			{ID: "d1_r8", Speaker: SpeakerSystem, Text: "You light a torch, carefully, and ease the door open."},
			{ID: "d1_r9", Speaker: SpeakerSystem, Text: "A dagger stands buried in the wood outside."},
			{ID: "d1_r10", Speaker: SpeakerSystem, Text: "It seems someone thinks little of your craft."},
		},

		SeqDay2Start: {
			{ID: "d2_1", Speaker: SpeakerSystem, Text: "Today the sky is yellow. Sickly, bruised.\nIt reminds you of a stray cat the whole street has learned to kick."},
			{ID: "d2_2", Speaker: SpeakerCat, Text: "Mrow—"},
			{ID: "d2_3", Speaker: SpeakerSystem, Text: "There is a commotion outside. Through the window: a woman.\nHaggard, pale, uneasy — she makes you think of box leaves shivering in wind."},
		},
		SeqDay2Guest: {
			{ID: "d2_g1", Speaker: "Woman", Text: "Good evening."},
			{ID: "d2_g2", Speaker: "Woman", Text: "I've come for some... salve. For wounds."},
			{ID: "d2_g3", Speaker: SpeakerSystem, Text: "Angry red weals stand out against her pale skin."},
			{ID: "d2_g4", Speaker: SpeakerSystem, Text: "You recognize them. Birch. Someone beat her with birch rods."},
			{ID: "d2_g5", Speaker: SpeakerSystem, Text: "Lady Diana's broom was bound from birch twigs; you took your share of it as a child."},
			{ID: "d2_g6", Speaker: SpeakerSystem, Text: "You remember what Lady Diana used to say: \"Never take a man who whips his wife with birch—\"\nIn the memory she rolls her eyes, hugely: \"—finding one who doesn't is rarer than Persian dates.\""},
			{ID: "d2_choices", Speaker: SpeakerWhisper, Text: "You have no idea what a Persian date is.\nBut you know, here and now, that something about this woman is very wrong.", Choices: []Choice{
				{Text: "Are you alright?", Target: Goto("d2_b1")},
				{Text: "Mix the salve", Target: Goto("d2_bhp_1")},
			}},
		},
		SeqDay2Breakdown: {
			{ID: "d2_b1", Speaker: SpeakerSystem, Text: "You only meant to test the waters, but the woman seizes on the question like a breach in a wall, and suddenly she is weeping."},
			{ID: "d2_b2", Speaker: SpeakerSystem, Text: "She tells you all of it —\nhow her drunkard husband treats her,\nhow her small son tried to shield her and nearly lost an eye for it."},
			{ID: "d2_b_choices", Speaker: SpeakerWhisper, Text: "Shock, alarm — and then a single anger burns through every other thought—", Choices: []Choice{
				{Text: "Mix the salve", Target: Goto("d2_bhp_1")},
				{Text: "Mix a poison", Target: Goto("d2_bpp_1")},
			}},
		},
		SeqDay2HealPrompt: {
			{ID: "d2_bhp_1", Speaker: SpeakerSystem, Text: "\"What you need is rest, and care.\"\nThink: herbs that soothe, herbs that mend..."},
		},
		SeqDay2PoisonPrompt: {
			{ID: "d2_bpp_1", Speaker: SpeakerSystem, Text: "\"What you need is a reckoning.\"\nThink: the more venom the better."},
		},
		SeqDay2Result: {
			{ID: "d2_r_end", Speaker: SpeakerSystem, Text: "The woman buys the bottle, and you watch the fog swallow her back."},
			{ID: "d2_r_end2", Speaker: SpeakerSystem, Text: "You look up at the heavy grey sky. Under this one roof of cloud, how many houses hold the same story?"},
		},
		SeqDay2ResultHeal: {
			{ID: "d2_rh1", Speaker: SpeakerSystem, Text: "The morning air is a little cleaner than it has been."},
			{ID: "d2_rh2", Speaker: SpeakerSystem, Text: "You hear a woman left the village with her child in the night. No one knows where she went."},
			{ID: "d2_rh3", Speaker: SpeakerSystem, Text: "Perhaps that is the best ending there was."},
		},
		SeqDay2ResultPoison: {
			{ID: "d2_rp1", Speaker: SpeakerSystem, Text: "The village bell is ringing hard this morning."},
			{ID: "d2_rp2", Speaker: SpeakerSystem, Text: "They say a drunkard died in his own house, face gone blue, as if something had claimed him."},
			{ID: "d2_rp3", Speaker: SpeakerSystem, Text: "You rub the smell of herbs from your fingertips and say nothing either way."},
		},
		SeqDay2ResultFail: {
			{ID: "d2_rf1", Speaker: SpeakerSystem, Text: "Everything is as it was."},
			{ID: "d2_rf2", Speaker: SpeakerSystem, Text: "The woman never comes back."},
			{ID: "d2_rf3", Speaker: SpeakerSystem, Text: "Some wounds are beyond any medicine."},
		},
		SeqDay2ResultHealFail: {
			{ID: "d2_rhf1", Speaker: SpeakerSystem, Text: "The salve did nothing. The weals will fade on their own time, not yours."},
			{ID: "d2_rhf2", Speaker: SpeakerSystem, Text: "The woman never comes back."},
			{ID: "d2_rhf3", Speaker: SpeakerSystem, Text: "Some wounds are beyond any medicine."},
		},

		SeqDay3Start: {
			{ID: "d3_1", Speaker: SpeakerSystem, Text: "Today the sky is black. Starless.\nIt reminds you of a black cat already stiff with death."},
			{ID: "d3_2", Speaker: SpeakerCat, Text: "Mrow—"},
			{ID: "d3_3", Speaker: SpeakerSystem, Text: "A crisp knocking at the window. A girl stands outside."},
		},
		SeqDay3Guest: {
			{ID: "d3_g1", Speaker: SpeakerSystem, Text: "The cold wind has reddened her cheeks; against the grey fog her eyes are strikingly clear."},
			{ID: "d3_g2", Speaker: "Girl", Text: "I need a draught of feigned death."},
			{ID: "d3_g3", Speaker: SpeakerSystem, Text: "\"There is no such thing.\"\nAnother young woman led astray by playwrights, you decide, and answer with care."},
			{ID: "d3_g4", Speaker: SpeakerSystem, Text: "In truth the draught exists. A deep enough numbness passes for death —\nbut it is treacherous, and a careless dose kills in earnest."},
			{ID: "d3_g5", Speaker: "Girl", Text: "Then give me a poison."},
			{ID: "d3_g6", Speaker: SpeakerSystem, Text: "Seeing your face, she adds quickly: \"It's for myself. Don't worry.\""},
			{ID: "d3_g7", Speaker: SpeakerWhisper, Text: "No — that is not reassuring in the least!", Choices: []Choice{
				{Text: "What happened?", Target: Goto("d3_story_1")},
				{Text: "Mix the poison", Target: Goto("d3_bpp_1")},
			}},
		},
		SeqDay3Story: {
			{ID: "d3_story_1", Speaker: "Girl", Text: "My parents mean to marry me to a man I do not want."},
			{ID: "d3_story_2", Speaker: SpeakerSystem, Text: "The girl smiles, sly."},
			{ID: "d3_story_3", Speaker: "Girl", Text: "Refuse me the draught and I will simply go begging for it elsewhere."},
			{ID: "d3_story_choices", Speaker: SpeakerWhisper, Text: "...", Choices: []Choice{
				{Text: "Attempt the feigned-death draught", Target: Goto("d3_bfp_1")},
				{Text: "Mix the poison", Target: Goto("d3_bpp_1")},
			}},
		},
		SeqDay3FakePrompt: {
			{ID: "d3_bfp_1", Speaker: SpeakerSystem, Text: "A draught of feigned death needs the numbing of a poison\nand the restraint of an antidote, both at once..."},
		},
		SeqDay3PoisonPrompt: {
			{ID: "d3_bpp_1", Speaker: SpeakerSystem, Text: "Some herbs falter at a low dose,\nand fail to finish what they start. Take care."},
		},
		SeqDay3BrewComplete: {
			{ID: "d3_bc1", Speaker: "Girl", Text: "...Thank you."},
			{ID: "d3_bc2", Speaker: SpeakerSystem, Text: "She looks at you, earnest, then turns — her back as resolute as a wild goose flying north into spring."},
		},
		SeqDay3ResultFake: {
			{ID: "d3_r1_1", Speaker: SpeakerWitch, Text: "You sent her to the underworld to wait out the storm."},
			{ID: "d3_r1_2", Speaker: SpeakerWitch, Text: "The wedding, of course, was called off."},
			{ID: "d3_r1_3", Speaker: SpeakerWitch, Text: "They say the bride's body vanished from under her family's weeping."},
		},
		SeqDay3ResultDeath: {
			{ID: "d3_r2_1", Speaker: SpeakerWitch, Text: "You gave her what she asked for: rest without end."},
			{ID: "d3_r2_2", Speaker: SpeakerWitch, Text: "The wedding, of course, was called off. You imagine you can hear the family's thunderous grief."},
		},
		SeqDay3ResultFail: {
			{ID: "d3_r3_1", Speaker: SpeakerWitch, Text: "The wedding went ahead as planned."},
			{ID: "d3_r3_2", Speaker: SpeakerWitch, Text: "You made the coward's choice."},
		},

		SeqDay4Start: {
			{ID: "d4_1", Speaker: SpeakerSystem, Text: "Rain falls in sheets, a dirge played without pause.\nThe dark sky thunders like fury held at the back of a throat."},
			{ID: "d4_2", Speaker: SpeakerCat, Text: "Mrow, mrow—"},
			{ID: "d4_3", Speaker: SpeakerSystem, Text: "As if to answer the dread already in you, a knocking begins at the door."},
			{ID: "d4_4", Speaker: SpeakerSystem, Text: "Before you can reach it,\nbroad-shouldered men burst in, pin your arms, and haul you out of the house."},
			{ID: "d4_5", Speaker: SpeakerSystem, Text: "They force you to your knees in the mud of the little flower bed.\nBefore you stands a white-haired man in a long black robe.\nHe holds a scroll at arm's length and reads your crimes aloud:"},
			{ID: "d4_6", Speaker: "Inquisitor", Text: "Upon inquiry, the testimony is consistent: the accused, under the pretense of herb-craft, has practiced witchcraft.\nSuch conduct blasphemes against God, and she is hereby remanded to the secular power."},
			{ID: "d4_7", Speaker: SpeakerSystem, Text: "In the moment before they decide to march you off,\nyou beg a little time to set the house in order, and scramble back inside."},
			{ID: "d4_8", Speaker: SpeakerSystem, Text: "Everywhere you look — the shelves, the walls, the corners of the room —\nare the things that carried you through all these years."},
			{ID: "d4_9", Speaker: SpeakerSystem, Text: "You and the heavy cauldron by the window regard one another in silence."},
			{ID: "d4_choices", Speaker: SpeakerWhisper, Text: "...", Choices: []Choice{
				{Text: "'It is time.' Wake up.", Target: Goto("d4_brew_prompt_1")},
			}},
		},
		SeqDay4BrewPrompt: {
			{ID: "d4_brew_prompt_1", Speaker: SpeakerSystem, Text: "After everything — what is left that you can do?"},
		},

		SeqTrueEnding: {
			{ID: "te_1", Speaker: SpeakerSystem, Text: "\"Oh — the voice in my head. God!\nI have found you at last.\""},
			{ID: "te_2", Speaker: SpeakerSystem, Text: "\"Please, tell me what I must do.\nIs this suffering a trial you have set for me?\""},
			{ID: "te_3", Speaker: SpeakerSystem, Text: "\"Ah, I want so badly to run.\nShow me the way through this ordeal.\"", Choices: []Choice{
				{Text: "I cannot simply tell you what to do.", Target: Goto("te_4")},
			}},
			{ID: "te_4", Speaker: SpeakerSystem, Text: "\"...Why not?\nIt was your guidance that led me to the right herbs,\nand now you refuse to deliver me...\""},
			{ID: "te_5", Speaker: SpeakerSystem, Text: "\"Mother guided me from the time I was small — step by step, what to do, what was right.\nThat is how I came this far.\nCan an almighty God truly not do the same?\"", Choices: []Choice{
				{Text: "I'm sorry. That is not how I work.", Target: Goto("te_6")},
			}},
			{ID: "te_6", Speaker: SpeakerSystem, Text: "", Choices: []Choice{
				{Text: "By way of apology, let me share something this age does not yet know.", Target: Goto("te_7")},
			}},
			{ID: "te_7", Speaker: SpeakerSystem, Text: "\"...\""},
			{ID: "te_8", Speaker: SpeakerSystem, Text: "\"What is it you want to say?\""},
			{ID: "te_9", Speaker: SpeakerSystem, Text: "", Choices: []Choice{
				{Text: "You can become any kind of woman. You can make any choice.", Target: CompleteEnding()},
			}},
		},
	}
}
