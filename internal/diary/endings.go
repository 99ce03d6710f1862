package diary

import "github.com/appengine-ltd/planet-aqua/internal/game"

type Narrative struct {
	Title string
	Body  string
}

var endings = map[game.Ending]Narrative{
	game.EndingEcosystemCollapse: {
		Title: "THE SILENT DEPTHS",
		Body: `The once-teeming waters of Planet Aqua have been emptied of life. The food
chain has collapsed, the fishing villages stand abandoned and the ocean's song
has gone quiet.

The Council of Depths has stripped the Guardian of their title. The Great
Garbage Vortex keeps growing, a monument to the stewardship that failed.`,
	},
	game.EndingToxicSeas: {
		Title: "THE POISONED REALM",
		Body: `The ocean is now too polluted to support life. The waters that sustained
Planet Aqua poison everything they touch.

The Council of Depths has banished the Guardian to the deepest trenches, to
watch from the abyss as the surface struggles on.`,
	},
	game.EndingUprising: {
		Title: "THE PEOPLE'S REVOLT",
		Body: `The citizens stopped believing in their Guardian and took the council
halls themselves. The Council of Depths has been overthrown.

From exile, the last Guardian watches new leaders try to undo the damage. A
Guardian who loses the people's trust is no Guardian at all.`,
	},
	game.EndingStalemate: {
		Title: "THE LONG GREY TIDE",
		Body: `Thirty generations have passed and the ocean still lives, but only just.
The fish are too few or the water too foul for anyone to call it a recovery.

The diary is sealed and placed in the archive. Whoever opens it next will
inherit an ocean that was neither saved nor lost.`,
	},
	game.EndingVictory: {
		Title: "THE ETERNAL GUARDIAN",
		Body: `Through thirty generations of patient decrees the ocean has come back. The
water runs clear, the shoals have returned and the floating cities prosper.

The Council of Depths names the line of Guardians Eternal. The currents
whisper their names in reverence.`,
	},
}

// Ending returns the narrative for a terminal outcome.
func Ending(o game.Outcome) Narrative {
	if n, ok := endings[o.Ending]; ok {
		return n
	}
	return Narrative{Title: "THE END", Body: o.Message}
}
