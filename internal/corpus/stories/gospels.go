package stories

import (
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var matthew = corpus.Partition{
	Book: "Matthew",
	Stories: []domain.Story{
		{
			ID:        "walking-on-water",
			Title:     "Walking on the Water",
			Reference: "Matthew 14:22-33",
			Volume:    VolumeNew,
			Category:  "Miracles",
			Summary: "In the fourth watch of a stormy night, Jesus comes to the disciples " +
				"across the sea; Peter steps out of the boat, walks, sees the wind, " +
				"sinks, and is caught.",
			KeyElements: []string{
				"the boat battered far from land",
				"the figure on the water mistaken for a ghost",
				"Peter's request: bid me come",
				"the sinking and the outstretched hand",
				"the wind ceasing as they board",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the night crossing", Application: "obedience that leads straight into the storm"},
				{Element: "stepping over the gunwale", Application: "the moment commitment becomes physical"},
				{Element: "seeing the wind", Application: "attention shifting from the call to the conditions"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "Jesus walks across the storm-tossed sea and a sinking Peter is rescued mid-step.",
				Typological:    "Mastery of the sea, the Old Testament's symbol of untamable chaos, is a divine signature.",
				Personal:       "Faith and fear can occupy the same stride; the catch matters more than the sink.",
				Communal:       "The boat's whole crew ends the night in worship sparked by one man's soaked experiment.",
				Eschatological: "'It is I, do not be afraid' is the greeting reserved for the last morning as well.",
				Cosmic:         "The deep that swallowed Pharaoh's chariots becomes a walkway.",
			},
			RelatedStories: []string{
				"The calming of the storm",
				"The Red Sea crossing",
				"Peter's restoration by another shore",
			},
			KeyFigures: []string{"Jesus", "Peter"},
			Setting:    strptr("the Sea of Galilee, in the fourth watch"),
		},
	},
}

var luke = corpus.Partition{
	Book: "Luke",
	Stories: []domain.Story{
		{
			ID:        "good-samaritan",
			Title:     "The Good Samaritan",
			Reference: "Luke 10:25-37",
			Volume:    VolumeNew,
			Category:  "Parables",
			Summary: "Answering a lawyer's self-justifying question, Jesus tells of a " +
				"traveler left half dead on the Jericho road, passed by priest and " +
				"Levite, and rescued at cost by a despised Samaritan.",
			KeyElements: []string{
				"the question: who is my neighbor",
				"the traveler stripped and beaten",
				"priest and Levite passing on the other side",
				"the Samaritan's oil, wine, and denarii",
				"the reversal: which one proved neighbor",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the other side of the road", Application: "the respectable distance kept from inconvenient need"},
				{Element: "the Samaritan", Application: "compassion arriving from the category one despises"},
				{Element: "the two denarii", Application: "mercy that leaves a deposit and promises to return"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A parable redefining neighbor by mercy shown rather than proximity or kinship.",
				Typological:    "The outsider who binds wounds, pays the debt, and promises to come back carries a familiar profile.",
				Personal:       "The question shifts from 'who deserves my help' to 'what kind of neighbor am I'.",
				Communal:       "Ethnic and religious boundary lines are crossed by a wine-soaked bandage.",
				Eschatological: "'Go and do likewise' is a standing command until the innkeeper is repaid.",
				Cosmic:         "Humanity itself lies beaten on the road between the cities.",
			},
			RelatedStories: []string{
				"The lawyer's question and the great commandment",
				"The sheep and the goats",
			},
			KeyFigures: []string{"Jesus"},
			Setting:    strptr("the road from Jerusalem down to Jericho"),
		},
		{
			ID:        "prodigal-son",
			Title:     "The Prodigal Son",
			Reference: "Luke 15:11-32",
			Volume:    VolumeNew,
			Category:  "Parables",
			Summary: "A younger son demands his inheritance, wastes it in a far country, " +
				"and rehearses a servant's speech on the road home — only to be met at a " +
				"run, robed, and feasted, while his elder brother stands outside.",
			KeyElements: []string{
				"the demanded inheritance",
				"the famine and the pig pods",
				"the rehearsed confession",
				"the father running",
				"the elder brother outside the feast",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the far country", Application: "the distance one travels to avoid being known"},
				{Element: "the father's run", Application: "grace that closes the gap before the speech is finished"},
				{Element: "the elder brother", Application: "resentment that keeps its own exile while standing in the yard"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A parable of a lost son restored and a found son lost, told against grumbling about table company.",
				Typological:    "The robe, the ring, and the fatted calf are restoration imagery drawn from Israel's own homecomings.",
				Personal:       "Coming to oneself in the pigsty is the turn; everything after is the father's doing.",
				Communal:       "The feast is communal by design — celebration that refuses to stay private.",
				Eschatological: "The open door to the elder brother is the parable's unresolved last word, aimed at its hearers.",
				Cosmic:         "Dead and alive again, lost and found: the oldest arc there is.",
			},
			RelatedStories: []string{
				"The lost sheep and the lost coin, told in the same breath",
				"Jacob's homecoming to a feared brother",
			},
			KeyFigures: []string{"Jesus"},
			Setting:    strptr("a far country, and the road back from it"),
		},
	},
}

var john = corpus.Partition{
	Book: "John",
	Stories: []domain.Story{
		{
			ID:        "feeding-five-thousand",
			Title:     "The Feeding of the Five Thousand",
			Reference: "John 6:1-14",
			Volume:    VolumeNew,
			Category:  "Miracles",
			Summary: "Facing a hungry crowd on a Galilean hillside, Jesus takes a boy's " +
				"five barley loaves and two fish, gives thanks, and feeds five thousand " +
				"with twelve baskets left over.",
			KeyElements: []string{
				"the crowd following for the signs",
				"Philip's impossible arithmetic",
				"the boy's five loaves and two fish",
				"the thanksgiving and the distribution",
				"twelve baskets of fragments",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the boy's lunch", Application: "the offering too small to be worth offering"},
				{Element: "the arithmetic of Philip", Application: "budgets that prove only what is impossible alone"},
				{Element: "the twelve baskets", Application: "abundance that outlasts the need"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A multiplication miracle feeds a multitude from one small meal.",
				Typological:    "Bread multiplied in the wilderness deliberately recalls the manna, as the chapter itself goes on to say.",
				Personal:       "What is handed over gets multiplied; what is clutched stays five loaves.",
				Communal:       "Everyone sits down together on the grass; distribution is part of the miracle.",
				Eschatological: "The hillside meal is a rehearsal for the banquet at the end of the age.",
				Cosmic:         "The giver of grain in every harvest briefly works without the intermediary of seasons.",
			},
			RelatedStories: []string{
				"Manna in the wilderness",
				"The bread of life discourse that follows",
				"Elisha feeding a hundred with twenty loaves",
			},
			KeyFigures: []string{"Jesus", "Philip", "Andrew"},
			Setting:    strptr("a hillside across the Sea of Galilee, near Passover"),
		},
		{
			ID:        "lazarus-raised",
			Title:     "The Raising of Lazarus",
			Reference: "John 11",
			Volume:    VolumeNew,
			Category:  "Miracles",
			Summary: "Jesus delays two days, arrives to find Lazarus four days buried, " +
				"weeps at the tomb, and calls the dead man out by name still wrapped in " +
				"his grave clothes.",
			KeyElements: []string{
				"the deliberate two-day delay",
				"Martha's 'if you had been here'",
				"the shortest verse: Jesus wept",
				"the stone rolled from the cave",
				"'Lazarus, come out'",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the delay", Application: "timing that feels like absence"},
				{Element: "the tears at the tomb", Application: "grief fully shared even by one about to end it"},
				{Element: "the grave clothes", Application: "the bindings of a former state, removed by others"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "The climactic sign of the fourth gospel: a four-day corpse summoned back to life.",
				Typological:    "Calling a named man from a sealed tomb is the rehearsal of the event it triggers.",
				Personal:       "'I am the resurrection' is addressed to a grieving sister, not a lecture hall.",
				Communal:       "One raising turns many mourners into witnesses, and authorities into plotters.",
				Eschatological: "The general resurrection Martha postpones to the last day steps into the present tense.",
				Cosmic:         "Death receives a contested jurisdiction notice, four days past its deadline.",
			},
			RelatedStories: []string{
				"The widow of Nain's son",
				"The empty tomb of the one who wept here",
			},
			KeyFigures: []string{"Jesus", "Lazarus", "Martha", "Mary of Bethany"},
			Setting:    strptr("Bethany, two miles from Jerusalem"),
		},
	},
}
