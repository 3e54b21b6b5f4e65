package stories

import (
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var joshua = corpus.Partition{
	Book: "Joshua",
	Stories: []domain.Story{
		{
			ID:        "jericho-walls",
			Title:     "The Fall of Jericho",
			Reference: "Joshua 6",
			Volume:    VolumeOld,
			Category:  "Faith and Courage",
			Summary: "Israel circles the fortified city once a day for six days and seven " +
				"times on the seventh; at the trumpet blast and the shout, the walls " +
				"collapse flat.",
			KeyElements: []string{
				"the city shut up tight",
				"six silent daily circuits",
				"seven circuits on the seventh day",
				"the trumpet blast and the shout",
				"the scarlet cord in Rahab's window",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the marching in silence", Application: "obedience that looks like doing nothing"},
				{Element: "the falling walls", Application: "barriers that give way all at once, not gradually"},
				{Element: "Rahab's cord", Application: "mercy found inside the judged city"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "The first Canaanite stronghold falls to Israel without a siege engine.",
				Typological:    "Victory by trumpet and shout rather than sword prefigures triumphs won by proclamation.",
				Personal:       "Some walls fall only after days of circling that achieve nothing visible.",
				Communal:       "The whole camp marches together; no soldier's effort distinguishes itself.",
				Eschatological: "The last trumpet of this story points to the last trumpet of all.",
				Cosmic:         "Fortifications raised against the divine purpose prove to be already rubble.",
			},
			RelatedStories: []string{
				"Rahab and the spies",
				"The Jordan crossing just before",
			},
			KeyFigures: []string{"Joshua", "Rahab"},
			Setting:    strptr("the plain of Jericho, west of the Jordan"),
		},
	},
}

var firstSamuel = corpus.Partition{
	Book: "1 Samuel",
	Stories: []domain.Story{
		{
			ID:        "david-goliath",
			Title:     "David and Goliath",
			Reference: "1 Samuel 17",
			Volume:    VolumeOld,
			Category:  "Faith and Courage",
			Summary: "While Israel's army cowers for forty days before the Philistine " +
				"champion, a shepherd boy refuses the king's armor, takes five smooth " +
				"stones from the brook, and fells the giant with a single sling stone.",
			KeyElements: []string{
				"Goliath's forty-day challenge",
				"David sent with bread and cheese",
				"the refusal of Saul's armor",
				"five smooth stones from the brook",
				"the giant felled by one stone",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the giant", Application: "the problem everyone has agreed is unbeatable"},
				{Element: "Saul's armor", Application: "borrowed strengths that do not fit"},
				{Element: "the sling", Application: "the small practiced skill nobody respected"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "Israel's untried youngest defeats Philistia's champion in single combat.",
				Typological:    "The anointed-but-unrecognized king wins alone the battle his people could not fight.",
				Personal:       "Past private faithfulness — lions and bears — is the training for public giants.",
				Communal:       "One person's courage routs an army's forty-day paralysis.",
				Eschatological: "The champion's defeat of the accuser foreshadows a greater single combat.",
				Cosmic:         "A head-wound to the serpent-like challenger echoes the oldest promise in the book.",
			},
			RelatedStories: []string{
				"David anointed by Samuel in secret",
				"Saul's rejection as king",
				"David sparing Saul in the cave",
			},
			KeyFigures: []string{"David", "Goliath", "Saul"},
			Setting:    strptr("the Valley of Elah"),
		},
	},
}

var firstKings = corpus.Partition{
	Book: "1 Kings",
	Stories: []domain.Story{
		{
			ID:        "elijah-carmel",
			Title:     "Elijah on Mount Carmel",
			Reference: "1 Kings 18",
			Volume:    VolumeOld,
			Category:  "Prophets",
			Summary: "Before all Israel, Elijah challenges four hundred fifty prophets of " +
				"Baal to a contest of altars; after their day of futile shouting, fire " +
				"falls on his water-drenched sacrifice.",
			KeyElements: []string{
				"the challenge: the God who answers by fire",
				"Baal's prophets raving until evening",
				"the twelve-stone altar rebuilt",
				"twelve jars of water poured on the offering",
				"the fire that consumes even the stones",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the limping between opinions", Application: "indecision dressed up as open-mindedness"},
				{Element: "the water-soaked altar", Application: "removing every explanation except the true one"},
				{Element: "the fire from heaven", Application: "the answer that ends the argument"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A public contest on Carmel vindicates the LORD against Baal during the great drought.",
				Typological:    "The lone prophet standing against the crowd prefigures every witness who stands alone.",
				Personal:       "Conviction sometimes requires soaking the altar — closing one's own exits.",
				Communal:       "The people's 'The LORD, he is God' is a nation turning on one afternoon.",
				Eschatological: "Fire deciding between true and false worship anticipates the final testing of all works.",
				Cosmic:         "The storm-god's own weather — fire and then rain — obeys the God of Israel.",
			},
			RelatedStories: []string{
				"The ravens feeding Elijah at Cherith",
				"The still small voice at Horeb, immediately after",
			},
			KeyFigures: []string{"Elijah", "Ahab", "Jezebel"},
			Setting:    strptr("Mount Carmel, above the Kishon"),
		},
	},
}

var daniel = corpus.Partition{
	Book: "Daniel",
	Stories: []domain.Story{
		{
			ID:        "daniel-lions-den",
			Title:     "Daniel in the Lions' Den",
			Reference: "Daniel 6",
			Volume:    VolumeOld,
			Category:  "Faith and Courage",
			Summary: "Trapped by a law engineered against his prayers, Daniel keeps his " +
				"window open toward Jerusalem, spends a night among lions, and is drawn " +
				"out at dawn without a scratch.",
			KeyElements: []string{
				"the decree signed against petition",
				"the open window toward Jerusalem",
				"the king's sleepless night",
				"the sealed stone over the den",
				"the angel who shut the lions' mouths",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the rigged law", Application: "systems designed to penalize integrity"},
				{Element: "the open window", Application: "practiced habits kept under pressure"},
				{Element: "the sealed den", Application: "the situation officially declared hopeless"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A Judean exile's faithfulness survives a Persian execution chamber.",
				Typological:    "The innocent man sealed under a stone overnight and found alive at dawn needs little commentary.",
				Personal:       "Integrity is what one does at the window when the decree is already signed.",
				Communal:       "One exile's constancy moves an empire to acknowledge the living God.",
				Eschatological: "Daniel's deliverance anticipates the vindication of all the faithful at the end.",
				Cosmic:         "Even the mouths of beasts answer to an authority above every empire.",
			},
			RelatedStories: []string{
				"The three friends in the furnace",
				"The writing on Belshazzar's wall",
			},
			KeyFigures: []string{"Daniel", "Darius"},
			Setting:    strptr("Babylon under Persian rule"),
		},
	},
}

var jonah = corpus.Partition{
	Book: "Jonah",
	Stories: []domain.Story{
		{
			ID:        "jonah-great-fish",
			Title:     "Jonah and the Great Fish",
			Reference: "Jonah 1–4",
			Volume:    VolumeOld,
			Category:  "Judgment and Mercy",
			Summary: "A prophet flees his commission by sea, is thrown overboard in the " +
				"storm he caused, spends three days inside a great fish, and finally " +
				"preaches to Nineveh — then sulks when the city repents.",
			KeyElements: []string{
				"the flight to Tarshish",
				"the storm and the lot falling on Jonah",
				"three days in the fish",
				"Nineveh's repentance in sackcloth",
				"the plant, the worm, and the east wind",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the ship to Tarshish", Application: "running in the exact opposite direction of a clear duty"},
				{Element: "the fish's belly", Application: "the strange mercy hidden inside a catastrophe"},
				{Element: "the withered plant", Application: "grieving comforts while begrudging others compassion"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "A disobedient prophet is carried back to his task and a violent city repents.",
				Typological:    "Three days in the deep, then deliverance: the sign later invoked by name in the gospels.",
				Personal:       "One can obey the command and still resent the mercy it produces.",
				Communal:       "God's compassion extends to the enemy capital, and to its cattle.",
				Eschatological: "Nineveh's repentance stands as a witness against every later generation that heard more and did less.",
				Cosmic:         "Wind, sea, fish, plant, and worm are all conscripted; only the prophet resists.",
			},
			RelatedStories: []string{
				"Noah and the waters of judgment",
				"Nahum, Nineveh's later reckoning",
			},
			KeyFigures: []string{"Jonah"},
			Setting:    strptr("the sea lanes to Tarshish, and Nineveh the great city"),
		},
	},
}
