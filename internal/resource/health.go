package resource

import (
	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/realize"
)

// healthEnglishTemplates covers one health dataset; the cost and funding
// variants differ only in the value type prefix.
func healthEnglishTemplates(prefix string) map[string][]*model.Template {
	body := concat(
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit()),
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("it was"), value(), unit()),

		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit(), txt("more than the EU average")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value("abs", "true"), unit(), txt("less than the EU average")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was the same as the EU average")),

		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value(), unit(), txt("more than in US")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was"), value("abs", "true"), unit(), txt("less than in US")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			opt(txt("in"), timeOf(), txt(",")), opt(txt("in"), location(), txt(",")),
			txt("the"), valueType(), txt("was the same as in US")),

		build(where(typeIs(prefix+":.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			location(), txt("had the"), value("ord", "true"), txt("highest"), valueType(),
			txt("across the observed countries")),
		build(where(typeIs(prefix+":.*:rank_reverse.*")),
			opt(txt("in"), timeOf(), txt(",")),
			location(), txt("had the"), value("ord", "true"), txt("lowest"), valueType(),
			txt("across the observed countries")),
	)

	head := concat(
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			txt("in"), location(), txt(", in"), timeOf(), txt(", the"), valueType(),
			txt("was"), value(), unit()),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(", the"), valueType(),
			txt("at"), value(), unit(), txt("over EU average")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(", the"), valueType(),
			txt("at"), value("abs", "true"), unit(), txt("below EU average")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("tied with EU average")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("at"), value(), unit(), txt("over US")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("at"), value("abs", "true"), unit(), txt("below US")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			txt("in"), location(), txt(", in"), timeOf(), txt(","), valueType(),
			txt("tied with US")),
		build(where(typeIs(prefix+":.*:rank.*"), typeNot(".*rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location("case", "gen"), value("ord", "true"),
			txt("highest"), valueType()),
		build(where(typeIs(prefix+":.*:rank_reverse.*")),
			txt("in"), timeOf(), txt(","), location("case", "gen"), value("ord", "true"),
			txt("lowest"), valueType()),
	)

	return map[string][]*model.Template{"en": body, "en-head": head}
}

func healthFinnishTemplates(prefix string) map[string][]*model.Template {
	body := concat(
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			opt(location("case", "ssa"), txt(",")),
			txt("se oli"), value(), unit(), opt(timeOf("case", "ssa"))),

		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), txt("enemmän kuin EU:n keskiarvo"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value("abs", "true"), unit(), txt("vähemmän kuin EU:n keskiarvo"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli sama kuin EU:n keskiarvo"), opt(timeOf("case", "ssa"))),

		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value(), unit(), txt("enemmän kuin Yhdysvalloissa"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli"), value("abs", "true"), unit(), txt("vähemmän kuin Yhdysvalloissa"),
			opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			opt(location("case", "ssa"), txt(",")),
			valueType(), txt("oli sama kuin Yhdysvalloissa"), opt(timeOf("case", "ssa"))),

		build(where(typeIs(prefix+":.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(location("case", "gen")),
			valueType(), txt("oli"), value("ord", "true"), txt("korkein"), opt(timeOf("case", "ssa"))),
		build(where(typeIs(prefix+":.*:rank_reverse.*")),
			opt(location("case", "gen")),
			valueType(), txt("oli"), value("ord", "true"), txt("matalin"), opt(timeOf("case", "ssa"))),
	)

	head := concat(
		build(where(typeIs(prefix+":.*"), typeNot(".*:rank.*"), typeNot(".*:comp_.*")),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit()),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueAbove(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit(), txt("yli EU:n keskiarvon")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueBelow(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value("abs", "true"), unit(), txt("ali EU:n keskiarvon")),
		build(where(typeIs(prefix+":.*:comp_eu"), typeNot(".*:rank.*"), valueIs(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), txt("sama kuin EU:n keskiarvon")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueAbove(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value(), unit(), txt("yli Yhdysvaltojen tason")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueBelow(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), value("abs", "true"), unit(), txt("vähemmän kuin Yhdysvalloissa")),
		build(where(typeIs(prefix+":.*:comp_us"), typeNot(".*:rank.*"), valueIs(0)),
			location("case", "ssa"), txt(","), timeOf("case", "ssa"), txt(","),
			valueType(), txt("sama kuin Yhdysvalloissa")),
		build(where(typeIs(prefix+":.*:rank.*"), typeNot(".*rank_reverse.*")),
			opt(timeOf("case", "ssa")), opt(location("case", "ssa")),
			value("ord", "true"), txt("korkein"), valueType()),
		build(where(typeIs(prefix+":.*:rank_reverse.*")),
			opt(timeOf("case", "ssa")), opt(location("case", "ssa")),
			value("ord", "true"), txt("matalin"), valueType()),
	)

	return map[string][]*model.Template{"fi": body, "fi-head": head}
}

var healthCostPartialsEnglish = map[string]string{
	"tot-hc":  "current health care expenditure",
	"hc1-2":   "cost of curative care and rehabilitative care",
	"hc1":     "cost of curative care",
	"hc11-21": "cost of inpatient curative and rehabilitative care",
	"hc11":    "cost of inpatient curative care",
	"hc12-22": "cost of day curative and rehabilitative care",
	"hc12":    "cost of day curative care",
	"hc13-23": "cost of outpatient curative and rehabilitative care",
	"hc13":    "cost of outpatient curative care",
	"hc131":   "cost of general outpatient curative care",
	"hc132":   "cost of dental outpatient curative care",
	"hc133":   "cost of specialised outpatient curative care",
	"hc139":   "cost of all other outpatient curative care n.e.c.",
	"hc14-24": "cost of home-based curative and rehabilitative care",
	"hc14":    "cost of home-based curative care",
	"hc2":     "cost of rehabilitative care",
	"hc21":    "cost of inpatient rehabilitative care",
	"hc22":    "cost of day rehabilitative care",
	"hc23":    "cost of outpatient rehabilitative care",
	"hc24":    "cost of home-based rehabilitative care",
	"hc3":     "cost of long-term health care",
	"hc31":    "cost of inpatient long-term health care",
	"hc32":    "cost of day long-term health care",
	"hc33":    "cost of outpatient long-term health care",
	"hc34":    "cost of home-based long-term health care",
	"hc4":     "cost of ancillary health services",
	"hc41":    "cost of laboratory services",
	"hc42":    "cost of imaging services",
	"hc43":    "cost of patient transportation",
	"hc5":     "cost of medical goods",
	"hc51":    "cost of pharmaceuticals and other medical non-durable goods",
	"hc511":   "cost of prescribed medicines",
	"hc512":   "cost of over-the-counter medicines",
	"hc513":   "cost of other medical non-durable goods",
	"hc52":    "cost of therapeutic appliances and other medical durable goods",
	"hc6":     "cost of preventive care",
	"hc61":    "cost of information, education and counseling programmes",
	"hc62":    "cost of immunisation programmes",
	"hc63":    "cost of early disease detection programmes",
	"hc64":    "cost of healthy condition monitoring programmes",
	"hc65":    "cost of epidemiological surveillance and risk and disease control programmes",
	"hc66":    "cost of preparing for disaster and emergency response programmes",
	"hc7":     "cost of governance and health system and financing administration",
	"hc71":    "cost of governance and health system administration",
	"hc72":    "cost of administration of health financing",
	"hc-unk":  "cost of other, unknown, health care services",
	"hcr1":    "cost of long-term social care",
}

var healthCostPartialsFinnish = map[string]string{
	"tot-hc":  "terveydenhuollon kokonaiskustannus",
	"hc1-2":   "parantavan ja kuntouttavan hoidon hinta",
	"hc1":     "parantavan hoidon hinta",
	"hc11-21": "laitos- ja kuntouttavan hoidon hinta",
	"hc11":    "parantavan laitoshoidon hinta",
	"hc12-22": "parantavan ja kuntouttavan päivittäishoidon hinta",
	"hc12":    "parantavan päivittäishoidon hinta",
	"hc13-23": "parantavan ja kuntouttavan avohoidon hinta",
	"hc13":    "parantavan avohoidon hinta",
	"hc131":   "yleisen parantavan avohoidon hinta",
	"hc132":   "parantavan avohammashuollon hinta",
	"hc133":   "erikoistuneen parantavan avohoidon hinta",
	"hc139":   "muun parantavan avohoidon hinta",
	"hc14-24": "parantavan ja kuntouttavan kotihoidon hinta",
	"hc14":    "parantavan kotihoidon hinta",
	"hc2":     "kuntouttavan hoidon hinta",
	"hc21":    "kuntouttavan laitoshuollon hinta",
	"hc22":    "kuntouttavan päivittäishoidon hinta",
	"hc23":    "kuntouttavan avohoidon hinta",
	"hc24":    "kuntouttavan kotihoidon hinta",
	"hc3":     "pitkäjänteisen terveydenhuollon hinta",
	"hc31":    "pitkäjänteisen laitosterveydenhuollon hinta",
	"hc32":    "pitkäjänteisen päivittäisterveydenhuollon hinta",
	"hc33":    "pitkäjänteisen avohuollon hinta",
	"hc34":    "pitkäjänteisen kotihoidon hinta",
	"hc4":     "tukevien lääkintäpalveluiden hinta",
	"hc41":    "laboratoriopalveluiden hinta",
	"hc42":    "kuvantamispalveluiden hinta",
	"hc43":    "potilassiirtojen hinta",
	"hc5":     "lääkintätarvikkeiden hinta",
	"hc51":    "lääkkeiden ja muiden kertakäyttöisten välineiden hinta",
	"hc511":   "reseptilääkkeiden hinta",
	"hc512":   "reseptivapaiden lääkkeiden hinta",
	"hc513":   "lääkinnällisten kertakäyttövälineiden hinta",
	"hc52":    "terapiavälineiden ja muiden kestotuotteiden hinta",
	"hc6":     "ennaltaehkäisevän terveydenhuollon hinta",
	"hc61":    "tiedotus-, koulutus- ja neuvontapalveluiden hinta",
	"hc62":    "rokotusohjelmien hinta",
	"hc63":    "tautien aikaisen havaitsemisen ohjelmien hinta",
	"hc64":    "terveystilan seurantapalveluiden hinta",
	"hc65":    "epidemiologisen seurannan sekä riskien ja tautien ehkäisyn hinta",
	"hc66":    "suuronnettomuus- ja onnettomuusvarautumisen hinta",
	"hc7":     "lääke-, kustannus- ja hoitopalveluiden hallintokulut",
	"hc71":    "terveydenhuollon hallintokulut",
	"hc72":    "terveydenhuollon rahoitushallinnon kulut",
	"hc-unk":  "muiden, tuntemattomien palveluiden hinta",
	"hcr1":    "pitkäaikaisen sosiaalihuollon hinta",
}

var healthFundingPartialsEnglish = map[string]string{
	"tot-hf":  "total health care funding",
	"hf1":     "health care funding from government schemes and compulsory contributory health care financing schemes",
	"hf11":    "health care funding from government schemes",
	"hf12-13": "health care funding from compulsory contributory health insurance schemes and compulsory medical saving accounts",
	"hf121":   "health care funding from social health insurance schemes",
	"hf122":   "health care funding from compulsory private insurance schemes",
	"hf13":    "health care funding from compulsory medical savings accounts (CMSA)",
	"hf2":     "health care funding from voluntary health care payment schemes",
	"hf21":    "health care funding from voluntary health insurance schemes",
	"hf22":    "health care funding from NPISH financing schemes",
	"hf23":    "health care funding from enterprise financing schemes",
	"hf3":     "household out-of-pocket health care payments",
	"hf31":    "out-of-pocket payments excluding cost-sharing",
	"hf32":    "health care funding from cost sharing with third-party payers",
	"hf4":     "health care funding from rest of the world financing schemes (non-resident)",
	"hf41":    "health care funding from compulsory schemes (non-resident)",
	"hf42":    "health care funding from voluntary schemes (non-resident)",
	"hf-unk":  "health care funding from other, unknown, schemes",
}

var healthFundingPartialsFinnish = map[string]string{
	"tot-hf":  "terveydenhuollon kokonaisrahoitus",
	"hf1":     "terveydenhuollon rahoitus hallituksen järjestämistä ja pakollisista järjestelmistä",
	"hf11":    "hallituksen järjestämä terveydenhuollon rahoitus",
	"hf12-13": "pakollisten sairasvakuutuksien ja lääkinnällisten säästötilien kautta järjestetty rahoitus",
	"hf121":   "terveydenhuollon rahoitus sosiaaliterveyden vakuutusten kautta",
	"hf122":   "terveydenhuollon rahoitus pakollisten yksityisten sairasvakuutuksien kautta",
	"hf13":    "terveydenhuollon rahoitus pakollisten sairassäästötilien kautta",
	"hf2":     "vapaaehtoisten maksujärjestelmien kautta järjestetty terveydenhuollon rahoitus",
	"hf21":    "vapaaehtoisten sairasvakuutusten kautta järjestetty terveydenhuollon rahoitus",
	"hf22":    "NPISH-rahoituksen kautta järjestetty terveydenhuollon rahoitus",
	"hf23":    "terveydenhuollon yhtiörahoitus",
	"hf3":     "talouksien itse maksaman terveydenhuollon hinta",
	"hf31":    "talouksien itse maksaman terveydenhuollon hinta pl. kulujenjako",
	"hf32":    "terveydenhuollon rahoitus kolmansien osapuolien kulujenjakosopimusten kautta",
	"hf4":     "terveydenhuollon rahoitus muun maailman rahoituksen kautta",
	"hf41":    "terveydenhuollon rahoitus pakollisten maksujen kautta (ei-pysyvät asukkaat)",
	"hf42":    "terveydenhuollon rahoitus vapaaehtoisten maksujen kautta (ei-pysyvät asukkaat)",
	"hf-unk":  "terveydenhuollon rahoitus muiden, tuntemattomien, tapojen kautta",
}

func healthUnitsEnglish(prefix string) map[string]string {
	return map[string]string{
		"[UNIT:" + prefix + ":mio-eur]": "million euro",
		"[UNIT:" + prefix + ":eur-hab]": "euro per inhabitant",
		"[UNIT:" + prefix + ":mio-nac]": "million units of national currency",
		"[UNIT:" + prefix + ":nac-hab]": "national currency per inhabitant",
		"[UNIT:" + prefix + ":mio-pps]": "million purchasing power standards (PPS)",
		"[UNIT:" + prefix + ":pps-hab]": "purchasing power standards (PPS) per inhabitant",
		"[UNIT:" + prefix + ":pc-gdp]":  "percent of the gross domestic product",
		"[UNIT:" + prefix + ":pc-che]":  "percent of the total current health expenditure",
	}
}

func healthUnitsFinnish(prefix string) map[string]string {
	return map[string]string{
		"[UNIT:" + prefix + ":mio-eur]": "miljoonaa euroa",
		"[UNIT:" + prefix + ":eur-hab]": "euroa per asukas",
		"[UNIT:" + prefix + ":mio-nac]": "miljoonaa paikallisessa valuutassa",
		"[UNIT:" + prefix + ":nac-hab]": "paikallista valuuttayksikköä per asukas",
		"[UNIT:" + prefix + ":mio-pps]": "miljoonaa ostovoimastandardia (OVS)",
		"[UNIT:" + prefix + ":pps-hab]": "ostovoimastandardia (OVS) per asukas",
		"[UNIT:" + prefix + ":pc-gdp]":  "prosenttia bruttokansantuotteesta",
		"[UNIT:" + prefix + ":pc-che]":  "prosenttia terveydenhuollon kokonaismenoista",
	}
}

func healthRealizers() []realize.SlotRealizer {
	var out []realize.SlotRealizer
	for _, prefix := range []string{"health:cost", "health:funding"} {
		// The raw realizer keeps only the scheme code; the partial lookup
		// then expands the code into a phrase.
		out = append(out,
			realize.NewRegexRealizer([]string{"en", "fi"},
				prefix+`:([^:]*):[^:]*`+maybeRankOrComp, "{}"),
			// Strip the scheme code out of the unit tag so a fixed unit
			// table can resolve it on the next pass.
			realize.NewRegexRealizer([]string{"en", "fi"},
				`\[UNIT:`+prefix+`:[^:]*:([^:]*):?.*\]`, "[UNIT:"+prefix+":{}]"),
			realize.NewLookupRealizer([]string{"en"}, healthUnitsEnglish(prefix)),
			realize.NewLookupRealizer([]string{"fi"}, healthUnitsFinnish(prefix)),
		)
	}
	out = append(out,
		realize.NewLookupRealizer([]string{"en"}, healthCostPartialsEnglish),
		realize.NewLookupRealizer([]string{"en"}, healthFundingPartialsEnglish),
		realize.NewLookupRealizer([]string{"fi"}, healthCostPartialsFinnish),
		realize.NewLookupRealizer([]string{"fi"}, healthFundingPartialsFinnish),
	)
	return out
}
