package game

// Herb identifiers. These are the only things a visitor-day brew understands;
// anything else that lands in the cauldron is a keepsake.
const (
	HerbChamomile = "chamomile"
	HerbAconite   = "aconite"
	HerbAloe      = "aloe"
	HerbEryngium  = "eryngium"
	HerbHemlock   = "hemlock"
	HerbMandrake  = "mandrake"
	HerbValerian  = "valerian"
	HerbSage      = "sage"
)

// Keepsake identifiers: special items placed in the scene as days pass.
// They may only enter the cauldron during day-4 brewing.
const (
	ItemCat     = "cat"
	ItemBroom   = "broom"
	ItemBook    = "book"
	ItemFeather = "feather"
	ItemDagger  = "dagger"
	ItemMirror  = "mirror"
)

// Herbs lists every herb on the shelf, in display order.
var Herbs = []string{
	HerbChamomile, HerbAconite, HerbAloe, HerbEryngium,
	HerbHemlock, HerbMandrake, HerbValerian, HerbSage,
}

var keepsakes = map[string]bool{
	ItemCat:     true,
	ItemBroom:   true,
	ItemBook:    true,
	ItemFeather: true,
	ItemDagger:  true,
	ItemMirror:  true,
}

// IsKeepsake reports whether id names a restricted special item rather than
// an herb.
func IsKeepsake(id string) bool { return keepsakes[id] }

func countOf(ingredients []string, id string) int {
	n := 0
	for _, ing := range ingredients {
		if ing == id {
			n++
		}
	}
	return n
}

func contains(ingredients []string, id string) bool {
	return countOf(ingredients, id) > 0
}
