package stories

import (
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var exodus = corpus.Partition{
	Book: "Exodus",
	Stories: []domain.Story{
		{
			ID:        "burning-bush",
			Title:     "Moses and the Burning Bush",
			Reference: "Exodus 3–4",
			Volume:    VolumeOld,
			Category:  "Calling",
			Summary: "A fugitive shepherd turns aside to see a bush that burns without " +
				"being consumed, hears the divine name, and is sent back to the Egypt " +
				"he fled to demand his people's release.",
			KeyElements: []string{
				"the bush that burns unconsumed",
				"removing sandals on holy ground",
				"the revelation of the name I AM",
				"Moses' five objections",
				"the staff that becomes a serpent",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the burning bush", Application: "the ordinary place that turns out to be holy"},
				{Element: "Moses' slow tongue", Application: "inadequacy as no excuse from a calling"},
				{Element: "the staff", Application: "the tool already in hand, repurposed"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "God commissions Moses at Horeb to lead Israel out of Egyptian slavery.",
				Typological:    "The reluctant deliverer sent to his own people anticipates the prophets after him and the prophet like him.",
				Personal:       "A calling tends to arrive mid-failure, not mid-success.",
				Communal:       "The name is revealed for the sake of a people's rescue, not private enlightenment.",
				Eschatological: "'I will be with you' is the promise that carries every later sending.",
				Cosmic:         "The self-naming of I AM anchors all being in one who simply is.",
			},
			RelatedStories: []string{
				"Moses drawn from the Nile",
				"Elijah at the same mountain, generations later",
			},
			KeyFigures: []string{"Moses"},
			Setting:    strptr("the far side of the wilderness, at Horeb"),
		},
		{
			ID:        "red-sea-crossing",
			Title:     "The Crossing of the Red Sea",
			Reference: "Exodus 14",
			Volume:    VolumeOld,
			Category:  "Deliverance",
			Summary: "Trapped between Pharaoh's chariots and the sea, Israel watches the " +
				"waters divide, walks through on dry ground, and sees the pursuing army " +
				"swallowed behind them.",
			KeyElements: []string{
				"Israel pinned against the sea",
				"the pillar of cloud moving behind the camp",
				"the east wind dividing the waters",
				"walls of water on the right and left",
				"the song of Miriam on the far shore",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the dead-end shore", Application: "the situation with no visible exit"},
				{Element: "the parted sea", Application: "a way through made where none existed"},
				{Element: "the drowned army", Application: "the pursuing past that cannot follow"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "Israel escapes Egypt through the divided sea; Pharaoh's army is destroyed in it.",
				Typological:    "Passage through water out of slavery into freedom became the Bible's master image of salvation.",
				Personal:       "Standing still and going forward can both be acts of faith, in sequence.",
				Communal:       "A crowd of slaves walks out of the water as a nation.",
				Eschatological: "The defeated sea anticipates the day when there is 'no more sea' at all.",
				Cosmic:         "The waters of chaos split on command, as they did on creation's third day.",
			},
			RelatedStories: []string{
				"The ten plagues that preceded the night of departure",
				"The Jordan crossing under Joshua, the pattern repeated",
				"Noah carried through the flood",
			},
			KeyFigures: []string{"Moses", "Miriam", "Pharaoh"},
			Setting:    strptr("the shore of the Red Sea, by Pi-hahiroth"),
		},
	},
}
