package story

// EndingID names one of the four terminal branches.
type EndingID string

const (
	EndingPyre    EndingID = "ending1" // default: the fire that would not obey
	EndingEscape  EndingID = "ending2" // rescued from the pyre
	EndingGodhead EndingID = "ending3" // the golden draught, forbidden knowledge
	EndingCat     EndingID = "ending4" // hidden: the cat
)

// EndingTitles maps ending ids to their display titles.
var EndingTitles = map[EndingID]string{
	EndingPyre:    "Ending One: The Unending Fire",
	EndingEscape:  "Ending Two: An Unknown Road",
	EndingGodhead: "Ending Three: The Voice of God",
	EndingCat:     "Ending Four: The Mighty Cat God",
}

// EndingPage is one screenful of ending narration, shown line by line.
type EndingPage []string

// EndingScripts holds the paged terminal narration for each ending.
var EndingScripts = map[EndingID][]EndingPage{
	EndingPyre: {
		{
			"Without hesitating, you drink the last draught you will ever mix.",
			"Then, as if settling an old debt, you let the guards lead you away to somewhere unknown.",
		},
		{
			"Weeks later, a strange story travels the countryside:",
			"in a certain village, on the day of a burning, the fire refused to catch.",
			"The young executioner, terrified of being blamed,",
			"bent over his flint and struck it again and again,",
		},
		{
			"and when the pyre finally took,",
			"he looked up to find the inquisitor and every gawking onlooker clutching their throats,",
			"foaming, toppling to the ground.",
			"And the girl burning on the frame, he swore,",
			"was wreathed in an unholy glow of green...",
		},
		{
			"The executioner fled the square on hands and knees, and so was the only one spared.",
			"They say the village drowned in fire after that —",
			"seven days and seven nights of it, and days of thunderstorms could not put it out.",
		},
	},
	EndingEscape: {
		{
			"You can hardly say what happened; it was decided in the space of a spark.",
			"Looking back much later,",
			"the memory is always patchy, splintered, out of order.",
			"Tangled as a dream.",
			"The only thing that stays sharp is the scent of the rider's hair at her temple.",
		},
		{
			"Yes — just as the torch came down toward your feet,",
			"a commotion broke through the crowd.",
			"A white horse came drumming in, parting the people, screams on every side.",
			"And on its back, a girl bright as high noon caught your eye and held it.",
		},
		{
			"Perhaps the crowd was simply too stunned —",
			"the girl cut the rope, swung you up behind her,",
			"and you were seated and away before the first shout of anger reached you.",
		},
	},
	EndingGodhead: {
		{
			"Following the murmur in your skull, you mix a golden draught you have never seen before.",
			"Before the guards outside can sense something wrong and rise to stop you,",
			"you drink it down in one swallow—",
		},
		{
			"Light lifts its head over the far rim of the world,",
			"then spreads fast, like a casting net flung open.",
			"The brightness forces tears from your eyes.",
		},
		{
			"Through the blur, you cannot say why,",
			"the snarling men before you become weevil-eaten wheat,",
			"dissolving into the light, little by little.",
		},
		{
			"No — not only the people. The houses that hold the people, the beliefs that hold the houses,",
			"all of it is swallowed by a vast, temperatureless light—",
		},
	},
	EndingCat: {
		{
			"As you cast about, helpless, the black cat at your ankles catches your eye.",
			"Whether to save the cat, or on the principle that a dead horse may as well be doctored,",
			"you grit your teeth and drop the cat into the cauldron.",
		},
		{
			"A yowl, a thunderclap,",
			"and the room disappears in smoke.",
			"When it clears, you are facing a wall of densely furred, extremely solid abdomen.",
			"You tilt your head back, trembling, and meet the eyes of the dear pet that used to curl at your feet.",
		},
		{
			"It is now a muscled colossus some twenty feet tall,",
			"chest thrown out with unreasonable confidence —",
			"its head wearing the roof it has just burst through like a hat.",
			"In a silence fit to kill,",
			"you watch the great beast hammer the surrounding guards flat, one punch each.",
		},
		{
			"Decades on, a legend still walks the hills:",
			"climb them by night,",
			"and you may meet a red-haired woman riding a giant black beast of muscle.",
			"Those lucky enough to have met them say:",
			"\"They're no omen, good or ill. You just catch their happiness a little, whether you mean to or not.\"",
		},
	},
}
