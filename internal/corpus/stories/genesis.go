package stories

import (
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var genesis = corpus.Partition{
	Book: "Genesis",
	Stories: []domain.Story{
		{
			ID:        "creation",
			Title:     "The Creation",
			Reference: "Genesis 1–2",
			Volume:    VolumeOld,
			Category:  "Origins",
			Summary: "God speaks the world into being over six days, forms humanity in " +
				"his own image, and rests on the seventh, declaring all of it very good.",
			KeyElements: []string{
				"light separated from darkness",
				"the ordering of sky, sea, and land",
				"humanity made in God's image",
				"the seventh-day rest",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the formless deep", Application: "chaos that precedes every new beginning"},
				{Element: "the divine word", Application: "speech that brings order rather than noise"},
				{Element: "the sabbath rest", Application: "work that knows when to stop"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "An ordered account of the world's origin, moving from chaos to a completed, blessed cosmos.",
				Typological:    "The first creation anticipates the new creation; the first Adam points forward to the second.",
				Personal:       "Being made in the image of God grounds individual worth before any achievement.",
				Communal:       "Humanity is created male and female together, a community from the very first page.",
				Eschatological: "The unbroken seventh day foreshadows the rest still awaited at history's end.",
				Cosmic:         "The taming of the primordial deep is the oldest pattern: order called out of chaos.",
			},
			RelatedStories: []string{
				"The Fall in the garden",
				"Noah and the un-creation of the flood",
				"John's prologue: in the beginning was the Word",
			},
			KeyFigures: []string{"Adam", "Eve"},
			Setting:    strptr("the garden in Eden, east of nowhere yet mapped"),
		},
		{
			ID:        "noah-flood",
			Title:     "Noah and the Flood",
			Reference: "Genesis 6–9",
			Volume:    VolumeOld,
			Category:  "Judgment and Mercy",
			Summary: "As violence fills the earth, Noah builds an ark at God's command, " +
				"rides out the flood with his family and the animals, and steps into a " +
				"washed world under the sign of the rainbow.",
			KeyElements: []string{
				"the corruption of the earth",
				"the building of the ark",
				"forty days of rain",
				"the dove and the olive leaf",
				"the rainbow covenant",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the ark", Application: "refuge prepared before the storm arrives"},
				{Element: "the flood waters", Application: "judgment and cleansing as one event"},
				{Element: "the rainbow", Application: "a promise hung where the threat used to be"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A worldwide deluge destroys corrupt humanity while one obedient family is preserved.",
				Typological:    "The ark prefigures salvation through water, a pattern the New Testament links to baptism.",
				Personal:       "Obedience can look absurd for decades before it looks wise.",
				Communal:       "One household's faithfulness carries the future of the whole race.",
				Eschatological: "The flood stands as the type of final judgment, and the ark of final refuge.",
				Cosmic:         "Creation is partially undone and remade; the waters of chaos return and are again restrained.",
			},
			RelatedStories: []string{
				"The Creation, whose waters return here",
				"Jonah, another man carried through the deep",
			},
			KeyFigures: []string{"Noah"},
			Setting:    strptr("the antediluvian world, and one wooden vessel upon it"),
		},
		{
			ID:        "abraham-isaac",
			Title:     "The Binding of Isaac",
			Reference: "Genesis 22",
			Volume:    VolumeOld,
			Category:  "Faith and Courage",
			Summary: "Abraham is told to offer his long-promised son on Moriah; at the " +
				"last moment the knife is stayed and a ram caught in the thicket takes " +
				"Isaac's place.",
			KeyElements: []string{
				"the command to go to Moriah",
				"the three-day journey",
				"Isaac carrying the wood",
				"the ram caught in the thicket",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the beloved son", Application: "what is held dearest, held with open hands"},
				{Element: "the ram in the thicket", Application: "provision discovered only at the point of need"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "Abraham's faith is tested to its limit and answered with substitution.",
				Typological:    "A father offering his only son on a hill prefigures the central event of the gospels.",
				Personal:       "Trust is proven in what one is willing to release.",
				Communal:       "The covenant promise to bless all nations is reaffirmed through this single act.",
				Eschatological: "'The LORD will provide' names a mountain and a future.",
				Cosmic:         "Substitution enters the story of the world: one life given in place of another.",
			},
			RelatedStories: []string{
				"The call of Abram out of Ur",
				"The crucifixion, where no substitute appears",
			},
			KeyFigures: []string{"Abraham", "Isaac"},
			Setting:    strptr("Mount Moriah"),
		},
	},
}
