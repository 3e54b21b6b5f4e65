package stories

import (
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

var acts = corpus.Partition{
	Book: "Acts",
	Stories: []domain.Story{
		{
			ID:        "pentecost",
			Title:     "The Day of Pentecost",
			Reference: "Acts 2",
			Volume:    VolumeNew,
			Category:  "The Early Church",
			Summary: "Fifty days after Passover, wind and fire fall on the gathered " +
				"disciples; they speak in the languages of every nation present, Peter " +
				"preaches, and three thousand are added in a day.",
			KeyElements: []string{
				"the sound of a rushing wind",
				"divided tongues as of fire",
				"the crowd hearing their own languages",
				"Peter's sermon from Joel and the Psalms",
				"three thousand baptized",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the upper room waiting", Application: "the commanded pause before the commissioned work"},
				{Element: "the many languages", Application: "a message refusing to require one culture"},
				{Element: "the fire on each head", Application: "empowerment distributed, not centralized"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "The Spirit is poured out in Jerusalem and the church is born in public.",
				Typological:    "Wind, fire, and a mountain of the law given at this same feast stand behind the scene.",
				Personal:       "The one who denied by a fire preaches by this one.",
				Communal:       "The first act of the Spirit is to create a community holding everything in common.",
				Eschatological: "'In the last days' — Peter declares the final era already begun.",
				Cosmic:         "Babel's scattering of languages is answered, not erased: every tongue kept, all hearing one word.",
			},
			RelatedStories: []string{
				"The tower of Babel",
				"The ascension ten days earlier",
			},
			KeyFigures: []string{"Peter"},
			Setting:    strptr("Jerusalem, at the feast of weeks"),
		},
		{
			ID:        "damascus-road",
			Title:     "The Road to Damascus",
			Reference: "Acts 9:1-19",
			Volume:    VolumeNew,
			Category:  "Calling",
			Summary: "Breathing threats against the church, Saul is thrown down by a " +
				"light from heaven outside Damascus, hears himself addressed by the one " +
				"he persecutes, and is led in blind to be baptized by a man he came to " +
				"arrest.",
			KeyElements: []string{
				"the letters for the synagogues of Damascus",
				"the light brighter than noon",
				"'Saul, Saul, why do you persecute me'",
				"three days blind on Straight Street",
				"Ananias's reluctant obedience",
			},
			CrossPattern: []domain.CrossRef{
				{Element: "the interrupted journey", Application: "momentum stopped mid-stride by a truth"},
				{Element: "the three blind days", Application: "the disorientation between an old certainty and a new one"},
				{Element: "Ananias's visit", Application: "welcoming yesterday's enemy as today's brother"},
			},
			Dimensions: domain.Dimensions{
				Literal:        "The church's fiercest persecutor is converted and commissioned in a single encounter.",
				Typological:    "A prophet's call narrative — light, voice, commission, objection — transplanted onto an enemy.",
				Personal:       "No record disqualifies; the direction of travel can reverse in a flash.",
				Communal:       "Conversion is completed not on the road but in a house, at the hands of the community.",
				Eschatological: "The persecutor turned apostle carries the name to the ends of the earth, and of the age.",
				Cosmic:         "'Why do you persecute me' — the head names the body's wounds as its own.",
			},
			RelatedStories: []string{
				"The stoning of Stephen, with Saul minding the coats",
				"The burning bush, another interrupted shepherd",
			},
			KeyFigures: []string{"Saul of Tarsus", "Ananias"},
			Setting:    strptr("the highway approaching Damascus"),
		},
	},
}
