package resource

import (
	"github.com/jtoivan/statnews/internal/aggregate"
	"github.com/jtoivan/statnews/internal/morph"
	"github.com/jtoivan/statnews/internal/realize"
)

var conjunctions = map[string]aggregate.Conjunctions{
	"en": {Default: "and", Inverse: "but"},
	"fi": {Default: "ja", Inverse: "mutta"},
	"de": {Default: "und", Inverse: "aber"},
}

var errorTexts = map[string]map[string]string{
	"en": {
		"no-messages-for-selection": "<p>We are unable to write an article on your selection.</p>",
		"general-error":             "<p>Something went wrong. Please try again later.</p>",
		"no-template":               "[<i>I don't know how to express my thoughts here</i>]",
	},
	"fi": {
		"no-messages-for-selection": "<p>Valinnastasi ei osata kirjoittaa uutista.</p>",
		"general-error":             "<p>Jotain meni vikaan. Yritäthän hetken kuluttua uudelleen.</p>",
		"no-template":               "[<i>Haluaisin ilmaista jotain tässä mutten osaa</i>]",
	},
	"de": {
		"no-messages-for-selection": "<p>Zu dieser Auswahl können wir keinen Artikel schreiben.</p>",
		"general-error":             "<p>Etwas ist schiefgelaufen. Bitte versuchen Sie es später erneut.</p>",
		"no-template":               "[<i>Ich weiß nicht, wie ich das hier ausdrücken soll</i>]",
	},
}

func dateVocabs() map[string]realize.DateVocab {
	return map[string]realize.DateVocab{
		"en": {
			Months: map[string]string{
				"01": "January", "02": "February", "03": "March", "04": "April",
				"05": "May", "06": "June", "07": "July", "08": "August",
				"09": "September", "10": "October", "11": "November", "12": "December",
			},
			MonthReference:      []string{"the same month"},
			YearReference:       []string{"the same year"},
			MonthExpression:     "{month}",
			MonthYearExpression: "{month} {year}",
			YearExpression:      "{year}",
		},
		"fi": {
			Months: map[string]string{
				"01": "tammikuu", "02": "helmikuu", "03": "maaliskuu", "04": "huhtikuu",
				"05": "toukokuu", "06": "kesäkuu", "07": "heinäkuu", "08": "elokuu",
				"09": "syyskuu", "10": "lokakuu", "11": "marraskuu", "12": "joulukuu",
			},
			MonthReference:      []string{"kyseisessä kuussa", "samaan aikaan"},
			YearReference:       []string{"samana vuonna", "myös samana vuonna"},
			MonthExpression:     "{month}",
			MonthYearExpression: "{month} {year}",
			YearExpression:      "vuonna {year}",
		},
		"de": {
			Months: map[string]string{
				"01": "Januar", "02": "Februar", "03": "März", "04": "April",
				"05": "Mai", "06": "Juni", "07": "Juli", "08": "August",
				"09": "September", "10": "Oktober", "11": "November", "12": "Dezember",
			},
			MonthReference:      []string{"auch im selben Monat", "gleichzeitig"},
			YearReference:       []string{"auch im selben Jahr", "gleichzeitig"},
			MonthExpression:     "{month}",
			MonthYearExpression: "{month} {year}",
			YearExpression:      "Jahr {year}",
		},
	}
}

// dateAttach lists, per language and timestamp type, the expression tokens
// that keep the slot attributes. Finnish case-marks the month or year word.
var dateAttach = map[string]map[string][]int{
	"fi": {"month": {0}, "year": {0}},
}

var countryNamesEnglish = map[string]string{
	"AT": "Austria", "BE": "Belgium", "BG": "Bulgaria", "CH": "Switzerland",
	"CY": "Cyprus", "CZ": "Czechia", "DE": "Germany", "DK": "Denmark",
	"EE": "Estonia", "EL": "Greece", "ES": "Spain", "FI": "Finland",
	"FR": "France", "HR": "Croatia", "HU": "Hungary", "IE": "Ireland",
	"IS": "Iceland", "IT": "Italy", "LT": "Lithuania", "LU": "Luxembourg",
	"LV": "Latvia", "MT": "Malta", "NL": "the Netherlands", "NO": "Norway",
	"PL": "Poland", "PT": "Portugal", "RO": "Romania", "SE": "Sweden",
	"SI": "Slovenia", "SK": "Slovakia", "UK": "the United Kingdom",
	"US": "the United States", "EU28": "the European Union", "EA19": "the euro area",
}

var countryNamesFinnish = map[string]string{
	"AT": "Itävalta", "BE": "Belgia", "BG": "Bulgaria", "CH": "Sveitsi",
	"CY": "Kypros", "CZ": "Tšekki", "DE": "Saksa", "DK": "Tanska",
	"EE": "Viro", "EL": "Kreikka", "ES": "Espanja", "FI": "Suomi",
	"FR": "Ranska", "HR": "Kroatia", "HU": "Unkari", "IE": "Irlanti",
	"IS": "Islanti", "IT": "Italia", "LT": "Liettua", "LU": "Luxemburg",
	"LV": "Latvia", "MT": "Malta", "NL": "Alankomaat", "NO": "Norja",
	"PL": "Puola", "PT": "Portugali", "RO": "Romania", "SE": "Ruotsi",
	"SI": "Slovenia", "SK": "Slovakia", "UK": "Yhdistynyt kuningaskunta",
	"US": "Yhdysvallat", "EU28": "Euroopan unioni", "EA19": "euroalue",
}

var countryNamesGerman = map[string]string{
	"AT": "Österreich", "BE": "Belgien", "BG": "Bulgarien", "CH": "die Schweiz",
	"CY": "Zypern", "CZ": "Tschechien", "DE": "Deutschland", "DK": "Dänemark",
	"EE": "Estland", "EL": "Griechenland", "ES": "Spanien", "FI": "Finnland",
	"FR": "Frankreich", "HR": "Kroatien", "HU": "Ungarn", "IE": "Irland",
	"IS": "Island", "IT": "Italien", "LT": "Litauen", "LU": "Luxemburg",
	"LV": "Lettland", "MT": "Malta", "NL": "die Niederlande", "NO": "Norwegen",
	"PL": "Polen", "PT": "Portugal", "RO": "Rumänien", "SE": "Schweden",
	"SI": "Slowenien", "SK": "die Slowakei", "UK": "das Vereinigte Königreich",
	"US": "die USA", "EU28": "die Europäische Union", "EA19": "der Euroraum",
}

func entityResolvers() map[string]*realize.EntityResolver {
	return map[string]*realize.EntityResolver{
		"en": realize.NewEntityResolver(map[string]map[string]realize.NameResolver{
			"country": {
				"full":    realize.DictionaryNameResolver(countryNamesEnglish),
				"short":   realize.DictionaryNameResolver(countryNamesEnglish),
				"pronoun": realize.VariantsNameResolver{"the country"},
			},
		}),
		"fi": realize.NewEntityResolver(map[string]map[string]realize.NameResolver{
			"country": {
				"full":    realize.DictionaryNameResolver(countryNamesFinnish),
				"short":   realize.DictionaryNameResolver(countryNamesFinnish),
				"pronoun": realize.DictionaryNameResolver(countryNamesFinnish),
			},
		}),
		"de": realize.NewEntityResolver(map[string]map[string]realize.NameResolver{
			"country": {
				"full":    realize.DictionaryNameResolver(countryNamesGerman),
				"short":   realize.DictionaryNameResolver(countryNamesGerman),
				"pronoun": realize.DictionaryNameResolver(countryNamesGerman),
			},
		}),
	}
}

func ordinals() map[string]realize.OrdinalRealizer {
	return map[string]realize.OrdinalRealizer{
		"en": realize.EnglishOrdinals{},
		"fi": realize.FinnishOrdinals{},
		"de": realize.GermanOrdinals{},
	}
}

// finnishForms covers the surface forms the generator can ask for: the
// inessive ("ssa") and genitive ("gen") of country names and month words.
func finnishForms() map[string]map[string]string {
	ssa := map[string]string{
		"Itävalta": "Itävallassa", "Belgia": "Belgiassa", "Bulgaria": "Bulgariassa",
		"Sveitsi": "Sveitsissä", "Kypros": "Kyproksella", "Tšekki": "Tšekissä",
		"Saksa": "Saksassa", "Tanska": "Tanskassa", "Viro": "Virossa",
		"Kreikka": "Kreikassa", "Espanja": "Espanjassa", "Suomi": "Suomessa",
		"Ranska": "Ranskassa", "Kroatia": "Kroatiassa", "Unkari": "Unkarissa",
		"Irlanti": "Irlannissa", "Islanti": "Islannissa", "Italia": "Italiassa",
		"Liettua": "Liettuassa", "Luxemburg": "Luxemburgissa", "Latvia": "Latviassa",
		"Malta": "Maltalla", "Alankomaat": "Alankomaissa", "Norja": "Norjassa",
		"Puola": "Puolassa", "Portugali": "Portugalissa", "Romania": "Romaniassa",
		"Ruotsi": "Ruotsissa", "Slovenia": "Sloveniassa", "Slovakia": "Slovakiassa",
		"Yhdistynyt kuningaskunta": "Yhdistyneessä kuningaskunnassa",
		"Yhdysvallat":              "Yhdysvalloissa",
		"Euroopan unioni":          "Euroopan unionissa",
		"euroalue":                 "euroalueella",

		"tammikuu": "tammikuussa", "helmikuu": "helmikuussa", "maaliskuu": "maaliskuussa",
		"huhtikuu": "huhtikuussa", "toukokuu": "toukokuussa", "kesäkuu": "kesäkuussa",
		"heinäkuu": "heinäkuussa", "elokuu": "elokuussa", "syyskuu": "syyskuussa",
		"lokakuu": "lokakuussa", "marraskuu": "marraskuussa", "joulukuu": "joulukuussa",
	}
	gen := map[string]string{
		"Itävalta": "Itävallan", "Belgia": "Belgian", "Bulgaria": "Bulgarian",
		"Sveitsi": "Sveitsin", "Kypros": "Kyproksen", "Tšekki": "Tšekin",
		"Saksa": "Saksan", "Tanska": "Tanskan", "Viro": "Viron",
		"Kreikka": "Kreikan", "Espanja": "Espanjan", "Suomi": "Suomen",
		"Ranska": "Ranskan", "Kroatia": "Kroatian", "Unkari": "Unkarin",
		"Irlanti": "Irlannin", "Islanti": "Islannin", "Italia": "Italian",
		"Liettua": "Liettuan", "Luxemburg": "Luxemburgin", "Latvia": "Latvian",
		"Malta": "Maltan", "Alankomaat": "Alankomaiden", "Norja": "Norjan",
		"Puola": "Puolan", "Portugali": "Portugalin", "Romania": "Romanian",
		"Ruotsi": "Ruotsin", "Slovenia": "Slovenian", "Slovakia": "Slovakian",
		"Yhdistynyt kuningaskunta": "Yhdistyneen kuningaskunnan",
		"Yhdysvallat":              "Yhdysvaltojen",
		"Euroopan unioni":          "Euroopan unionin",
		"euroalue":                 "euroalueen",

		"tammikuu": "tammikuun", "helmikuu": "helmikuun", "maaliskuu": "maaliskuun",
		"huhtikuu": "huhtikuun", "toukokuu": "toukokuun", "kesäkuu": "kesäkuun",
		"heinäkuu": "heinäkuun", "elokuu": "elokuun", "syyskuu": "syyskuun",
		"lokakuu": "lokakuun", "marraskuu": "marraskuun", "joulukuu": "joulukuun",
	}
	return map[string]map[string]string{"ssa": ssa, "gen": gen}
}

func morphologies() map[string]morph.Morphology {
	return map[string]morph.Morphology{
		"en": morph.English{},
		"fi": morph.NewFinnish(finnishForms()),
	}
}
