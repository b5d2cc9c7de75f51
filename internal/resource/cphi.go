package resource

import (
	"strings"

	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/realize"
)

// maybeRankOrComp matches the optional analysis suffix of a value type.
const maybeRankOrComp = ":?(rank|rank_reverse|comp_eu|comp_us)?"

func cphiEnglishTemplates() map[string][]*model.Template {
	body := concat(
		// Present value.
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit()),
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("it was"), value(), unit()),

		// Comparison against the EU average.
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit(), txt("more than the EU average")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value("abs", "true"), unit(), txt("less than the EU average")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was the same as the EU average")),

		// Comparison against the United States.
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit(), txt("more than in US")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value("abs", "true"), unit(), txt("less than in US")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was the same as in US")),

		// Rankings.
		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			location(), txt("had the"), value("ord", "true"), txt("highest"), valueType(),
			txt("across the observed countries")),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			location(), txt("had the"), value("ord", "true"), txt("lowest"), valueType(),
			txt("across the observed countries")),
	)

	head := concat(
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			txt("in"), location(), txt(", in"), timeOf(), txt(", the"), valueType(),
			txt("was"), value(), unit()),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(", the"), valueType(),
			txt("was"), value(), unit(), txt("over EU average")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("at"), value("abs", "true"), unit(), txt("below EU average")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("tied with EU average")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("at"), value(), unit(), txt("over US")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("at"), value("abs", "true"), unit(), txt("below US")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("tied with US")),
		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location("case", "gen"), value("ord", "true"),
			valueType(), txt("highest")),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location("case", "gen"), value("ord", "true"),
			valueType(), txt("lowest")),
	)

	return map[string][]*model.Template{"en": body, "en-head": head}
}

func cphiFinnishTemplates() map[string][]*model.Template {
	body := concat(
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(location("case", "ssa"), txt(",")),
			txt("se oli"), value(), unit(), opt(timeOf("case", "ssa"))),

		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), txt("enemmän kuin EU:n keskiarvo"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value("abs", "true"), unit(), txt("vähemmän kuin EU:n keskiarvo"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli sama kuin EU:n keskiarvo"), opt(timeOf("case", "ssa"))),

		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), txt("enemmän kuin Yhdysvalloissa"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value("abs", "true"), unit(), txt("vähemmän kuin Yhdysvalloissa"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli sama kuin Yhdysvalloissa"), opt(timeOf("case", "ssa"))),

		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(location("case", "gen")),
			valueType(), txt("oli"), value("ord", "true"), txt("korkein"), opt(timeOf("case", "ssa"))),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			opt(location("case", "gen")),
			valueType(), txt("oli"), value("ord", "true"), txt("matalin"), opt(timeOf("case", "ssa"))),
	)

	head := concat(
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit()),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit(), txt("yli EU:n keskiarvon")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value("abs", "true"), unit(), txt("ali EU:n keskiarvon")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), txt("sama kuin EU:n keskiarvon")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit(), txt("yli Yhdysvaltojen tason")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value("abs", "true"), unit(), txt("vähemmän kuin Yhdysvalloissa")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), txt("sama kuin Yhdysvalloissa")),
		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(timeOf("case", "ssa")), opt(location("case", "ssa")),
			value("ord", "true"), txt("korkein"), valueType()),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			opt(timeOf("case", "ssa")), opt(location("case", "ssa")),
			value("ord", "true"), txt("matalin"), valueType()),
	)

	return map[string][]*model.Template{"fi": body, "fi-head": head}
}

func cphiGermanTemplates() map[string][]*model.Template {
	body := concat(
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("war der"), valueType(), value(), unit()),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("lag der"), valueType(), value(), unit(), txt("über dem EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("lag der"), valueType(), value("abs", "true"), unit(), txt("unter dem EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("entsprach der"), valueType(), txt("dem EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("lag der"), valueType(), value(), unit(), txt("über dem US-Wert")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("lag der"), valueType(), value("abs", "true"), unit(), txt("unter dem US-Wert")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("entsprach der"), valueType(), txt("dem US-Wert")),
		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			txt("hatte"), location(), txt("den"), value("ord", "true"), txt("höchsten"), valueType(),
			txt("der beobachteten Länder")),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			txt("hatte"), location(), txt("den"), value("ord", "true"), txt("niedrigsten"), valueType(),
			txt("der beobachteten Länder")),
	)

	head := concat(
		build(where(typeIs("cphi:.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("bei"), value(), unit()),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			value(), unit(), txt("über EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			value("abs", "true"), unit(), txt("unter EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("gleichauf mit EU-Durchschnitt")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			value(), unit(), txt("über US-Wert")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			value("abs", "true"), unit(), txt("unter US-Wert")),
		build(where(typeIs("cphi:.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("gleichauf mit US-Wert")),
		build(where(typeIs("cphi:.*:rank.*"), typeNot(".*rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location(), txt("mit"), value("ord", "true"),
			txt("höchstem"), valueType()),
		build(where(typeIs("cphi:.*:rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location(), txt("mit"), value("ord", "true"),
			txt("niedrigstem"), valueType()),
	)

	return map[string][]*model.Template{"de": body, "de-head": head}
}

var cphiCategoriesEnglish = map[string]string{
	"hicp2015":    "harmonized consumer price index",
	"rt1":         "monthly growth rate",
	"rt12":        "yearly growth rate",
	"cp-hi00":     "'all items'",
	"cp-hi01":     "'food and non-alcoholic beverages'",
	"cp-hi02":     "'alcoholic beverages and tobacco'",
	"cp-hi03":     "'clothing and footwear'",
	"cp-hi04":     "'housing, water, electricity, gas and other fuels'",
	"cp-hi05":     "'furnishings, household equipment and maintenance'",
	"cp-hi06":     "'health'",
	"cp-hi07":     "'transport'",
	"cp-hi08":     "'communication'",
	"cp-hi09":     "'recreation and culture'",
	"cp-hi10":     "'education'",
	"cp-hi11":     "'hotels, cafes and restaurants'",
	"cp-hi12":     "'miscellaneous goods and services'",
	"cp-hi00xef":  "'all items excluding energy, food, alcohol and tobacco'",
	"cp-hi00xtb":  "'all items excluding tobacco'",
	"cp-hie":      "'energy'",
	"cp-hif":      "'food'",
	"cp-hifu":     "'unprocessed food'",
	"cp-hig":      "'total goods'",
	"cp-hiig":     "'industrial goods'",
	"cp-his":      "'total services'",
	"cp-hiigxe":   "'non-energy industrial goods'",
	"cp-hi00xe":   "'all items excluding energy'",
	"cp-hi00xefu": "'all items excluding energy and unprocessed food'",
	"cp-hi00xes":  "'all items excluding energy and seasonal food'",
}

var cphiCategoriesFinnish = map[string]string{
	"hicp2015":    "kuluttajahintaindeksi",
	"rt1":         "kuukausittainen kasvu",
	"rt12":        "vuosittainen kasvu",
	"cp-hi00":     "'kaikki osiot'",
	"cp-hi01":     "'ruoka ja alkoholittomat juomat'",
	"cp-hi02":     "'alkoholi ja tupakka'",
	"cp-hi03":     "'vaatteet ja jalkineet'",
	"cp-hi04":     "'asuminen, vesi, sähkö ja lämmitys'",
	"cp-hi05":     "'huonekalut, talousesineet ja kunnossapito'",
	"cp-hi06":     "'terveys'",
	"cp-hi07":     "'liikenne'",
	"cp-hi08":     "'viestintä'",
	"cp-hi09":     "'vapaa-aika ja kulttuuri'",
	"cp-hi10":     "'koulutus'",
	"cp-hi11":     "'hotellit, kahvilat ja ravintolat'",
	"cp-hi12":     "'sekalaiset'",
	"cp-hi00xef":  "'kaikki paitsi energia, ruoka, alkoholi ja tupakka'",
	"cp-hi00xtb":  "'kaikki paitsi tupakka'",
	"cp-hie":      "'energia'",
	"cp-hif":      "'ruoka'",
	"cp-hifu":     "'prosessoimaton ruoka'",
	"cp-hig":      "'kaikki tavarat'",
	"cp-hiig":     "'teollisuuden tavarat'",
	"cp-his":      "'kaikki palvelut'",
	"cp-hiigxe":   "'teolliset tavarat pl. energia'",
	"cp-hi00xe":   "'kaikki pl. energia'",
	"cp-hi00xefu": "'kaikki paitsi energia ja prosessoimaton ruoka'",
	"cp-hi00xes":  "'kaikki paitsi energia ja kausiluontoinen ruoka'",
}

var cphiCategoriesGerman = map[string]string{
	"hicp2015":    "harmonisierte Verbraucherpreisindex",
	"rt1":         "monatliche Wachstumsrate",
	"rt12":        "jährliche Wachstumsrate",
	"cp-hi00":     "'alle Posten'",
	"cp-hi01":     "'Nahrungsmittel und alkoholfreie Getränke'",
	"cp-hi02":     "'alkoholische Getränke und Tabak'",
	"cp-hi03":     "'Bekleidung und Schuhe'",
	"cp-hi04":     "'Wohnung, Wasser, Strom, Gas und andere Brennstoffe'",
	"cp-hi05":     "'Hausrat und laufende Instandhaltung'",
	"cp-hi06":     "'Gesundheit'",
	"cp-hi07":     "'Verkehr'",
	"cp-hi08":     "'Kommunikation'",
	"cp-hi09":     "'Freizeit und Kultur'",
	"cp-hi10":     "'Bildung'",
	"cp-hi11":     "'Hotels, Cafés und Restaurants'",
	"cp-hi12":     "'verschiedene Waren und Dienstleistungen'",
	"cp-hie":      "'Energie'",
	"cp-hif":      "'Nahrungsmittel'",
	"cp-hifu":     "'unverarbeitete Nahrungsmittel'",
	"cp-hig":      "'Waren insgesamt'",
	"cp-hiig":     "'Industriegüter'",
	"cp-his":      "'Dienstleistungen insgesamt'",
	"cp-hiigxe":   "'Industriegüter ohne Energie'",
	"cp-hi00xe":   "'alle Posten ohne Energie'",
	"cp-hi00xef":  "'alle Posten ohne Energie, Nahrungsmittel, Alkohol und Tabak'",
	"cp-hi00xtb":  "'alle Posten ohne Tabak'",
	"cp-hi00xefu": "'alle Posten ohne Energie und unverarbeitete Nahrungsmittel'",
	"cp-hi00xes":  "'alle Posten ohne Energie und Saisonware'",
}

// rateUnit reports whether the tagged value type talks about a growth rate
// rather than an index level.
func rateUnit(slot *model.Slot) bool {
	for _, component := range strings.Split(strings.Trim(slot.Value(), "[]"), ":") {
		if component == "rt1" || component == "rt12" {
			return true
		}
	}
	return false
}

func indexUnit(slot *model.Slot) bool { return !rateUnit(slot) }

func cphiRealizers() []realize.SlotRealizer {
	percentEN := realize.NewRegexRealizer([]string{"en"}, `\[UNIT:cphi:.*\]`, "percentage points")
	percentEN.SlotRequirement = rateUnit
	pointsEN := realize.NewRegexRealizer([]string{"en"}, `\[UNIT:cphi:.*\]`, "points")
	pointsEN.SlotRequirement = indexUnit

	percentFI := realize.NewRegexRealizer([]string{"fi"}, `\[UNIT:cphi:.*\]`, "prosenttiyksikköä")
	percentFI.SlotRequirement = rateUnit
	pointsFI := realize.NewRegexRealizer([]string{"fi"}, `\[UNIT:cphi:.*\]`, "yksikköä")
	pointsFI.SlotRequirement = indexUnit

	percentDE := realize.NewRegexRealizer([]string{"de"}, `\[UNIT:cphi:.*\]`, "Prozentpunkte")
	percentDE.SlotRequirement = rateUnit
	pointsDE := realize.NewRegexRealizer([]string{"de"}, `\[UNIT:cphi:.*\]`, "Punkte")
	pointsDE.SlotRequirement = indexUnit

	return []realize.SlotRealizer{
		realize.NewRegexRealizer([]string{"en"},
			`cphi:([^:]*):([^:]*)`+maybeRankOrComp, "{} for the category {}"),
		realize.NewRegexRealizer([]string{"en"},
			`cphi:([^:]*):([^:]*):(rt12?)`+maybeRankOrComp, "{2} of the {0} for the category {1}"),
		realize.NewLookupRealizer([]string{"en"}, cphiCategoriesEnglish),
		percentEN,
		pointsEN,

		realize.NewRegexRealizer([]string{"fi"},
			`cphi:([^:]*):([^:]*)`+maybeRankOrComp, "{} kategoriassa {}"),
		realize.NewRegexRealizer([]string{"fi"},
			`cphi:([^:]*):([^:]*):(rt12?)`+maybeRankOrComp, "{2} kuluttajahintaindeksissä {1}"),
		realize.NewLookupRealizer([]string{"fi"}, cphiCategoriesFinnish),
		percentFI,
		pointsFI,

		realize.NewRegexRealizer([]string{"de"},
			`cphi:([^:]*):([^:]*)`+maybeRankOrComp, "{} für die Kategorie {}"),
		realize.NewRegexRealizer([]string{"de"},
			`cphi:([^:]*):([^:]*):(rt12?)`+maybeRankOrComp, "{2} des {0} für die Kategorie {1}"),
		realize.NewLookupRealizer([]string{"de"}, cphiCategoriesGerman),
		percentDE,
		pointsDE,
	}
}

func concat(groups ...[]*model.Template) []*model.Template {
	var out []*model.Template
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
