package vehicle

// makeModels is the reference table of canonical makes and their canonical models.
// Order is significant: the fuzzy and partial make passes walk makes in this order
// and the first hit wins.
var makeModels = []struct {
	Make   string
	Models []string
}{
	{"ACURA", []string{
		"CL", "CSX", "EL", "ILX", "INTEGRA", "LEGEND", "MDX", "NSX", "RDX", "RL", "RLX",
		"RSX", "SLX", "TL", "TLX", "TSX", "VIGOR", "ZDX",
	}},
	{"AUDI", []string{
		"100", "200", "80", "90", "A1", "A3", "A4", "A5", "A6", "A7", "A8", "ALLROAD",
		"CABRIOLET", "COUPE", "E-TRON", "Q3", "Q5", "Q7", "Q8", "QUATTRO", "R8", "RS3",
		"RS4", "RS5", "RS6", "RS7", "S3", "S4", "S5", "S6", "S7", "S8", "SQ5", "SQ7",
		"SQ8", "TT", "V8",
	}},
	{"BMW", []string{
		"1 SERIES", "2 SERIES", "3 SERIES", "4 SERIES", "5 SERIES", "6 SERIES", "7 SERIES",
		"8 SERIES", "ALPINA", "I3", "I4", "I8", "IX", "M1", "M2", "M3", "M4", "M5", "M6",
		"M8", "X1", "X2", "X3", "X4", "X5", "X6", "X7", "Z3", "Z4", "Z8",
	}},
	{"BUICK", []string{
		"CASCADA", "CENTURY", "ELECTRA", "ENCLAVE", "ENCORE", "ENVISION", "LACROSSE",
		"LESABRE", "LUCERNE", "PARK AVENUE", "RAINIER", "REGAL", "RENDEZVOUS", "RIVIERA",
		"ROADMASTER", "SKYLARK", "TERRAZA", "VERANO",
	}},
	{"CADILLAC", []string{
		"ATS", "CATERA", "CTS", "CT4", "CT5", "CT6", "DEVILLE", "DTS", "ELDORADO",
		"ESCALADE", "EXT", "FLEETWOOD", "SEVILLE", "SRX", "STS", "XLR", "XT4", "XT5",
		"XT6", "XTS",
	}},
	{"CHEVROLET", []string{
		"ASTRO", "AVALANCHE", "AVEO", "BLAZER", "BOLT", "CAMARO", "CAPRICE", "CAPTIVA",
		"CAVALIER", "COLORADO", "CORVETTE", "CRUZE", "EQUINOX", "EXPRESS", "HHR", "IMPALA",
		"LUMINA", "MALIBU", "METRO", "MONTE CARLO", "ORLANDO", "SILVERADO", "SONIC",
		"SPARK", "SUBURBAN", "TAHOE", "TRACKER", "TRAILBLAZER", "TRAVERSE", "TRAX",
		"UPLANDER", "VENTURE", "VOLT",
	}},
	{"CHRYSLER", []string{
		"200", "300", "300C", "300M", "ASPEN", "CIRRUS", "CONCORDE", "CROSSFIRE",
		"INTREPID", "LEBARON", "LHS", "NEON", "PACIFICA", "PT CRUISER", "SEBRING",
		"TOWN & COUNTRY", "VOYAGER",
	}},
	{"DODGE", []string{
		"AVENGER", "CALIBER", "CARAVAN", "CHALLENGER", "CHARGER", "DART", "DURANGO",
		"GRAND CARAVAN", "INTREPID", "JOURNEY", "MAGNUM", "NEON", "NITRO", "RAM",
		"STEALTH", "STRATUS", "VIPER",
	}},
	{"FORD", []string{
		"AEROSTAR", "BRONCO", "C-MAX", "CONTOUR", "CROWN VICTORIA", "E-SERIES", "ECONOLINE",
		"EDGE", "ESCAPE", "ESCORT", "EXCURSION", "EXPEDITION", "EXPLORER", "F-150", "F-250",
		"F-350", "F-450", "FIESTA", "FIVE HUNDRED", "FLEX", "FOCUS", "FREESTAR", "FREESTYLE",
		"FUSION", "MUSTANG", "RANGER", "TAURUS", "THUNDERBIRD", "TRANSIT", "WINDSTAR",
	}},
	{"GMC", []string{
		"ACADIA", "CANYON", "ENVOY", "JIMMY", "SAFARI", "SAVANA", "SIERRA", "SONOMA",
		"SUBURBAN", "TERRAIN", "VANDURA", "YUKON",
	}},
	{"HONDA", []string{
		"ACCORD", "CIVIC", "CLARITY", "CR-V", "CR-Z", "CROSSTOUR", "ELEMENT", "FIT",
		"HR-V", "INSIGHT", "ODYSSEY", "PASSPORT", "PILOT", "PRELUDE", "RIDGELINE", "S2000",
	}},
	{"HYUNDAI", []string{
		"ACCENT", "AZERA", "ELANTRA", "ENTOURAGE", "GENESIS", "IONIQ", "KONA", "NEXO",
		"PALISADE", "SANTA FE", "SONATA", "TIBURON", "TUCSON", "VELOSTER", "VENUE", "VERACRUZ",
	}},
	{"INFINITI", []string{
		"EX35", "EX37", "FX35", "FX37", "FX45", "FX50", "G20", "G25", "G35", "G37",
		"I30", "I35", "J30", "JX35", "M30", "M35", "M37", "M45", "M56", "Q30", "Q40",
		"Q45", "Q50", "Q60", "Q70", "QX30", "QX4", "QX50", "QX56", "QX60", "QX70", "QX80",
	}},
	{"JAGUAR", []string{
		"E-PACE", "F-PACE", "F-TYPE", "I-PACE", "S-TYPE", "X-TYPE", "XE", "XF", "XJ",
		"XJR", "XJS", "XK", "XKR",
	}},
	{"JEEP", []string{
		"CHEROKEE", "COMMANDER", "COMPASS", "GLADIATOR", "GRAND CHEROKEE", "GRAND WAGONEER",
		"LIBERTY", "PATRIOT", "RENEGADE", "TJ", "WAGONEER", "WRANGLER", "YJ",
	}},
	{"KIA", []string{
		"AMANTI", "BORREGO", "CADENZA", "CARNIVAL", "FORTE", "K5", "K900", "MAGENTIS",
		"NIRO", "OPTIMA", "RIO", "RONDO", "SEDONA", "SELTOS", "SORENTO", "SOUL",
		"SPECTRA", "SPORTAGE", "STINGER", "TELLURIDE",
	}},
	{"LAND ROVER", []string{
		"DEFENDER", "DISCOVERY", "DISCOVERY SPORT", "EVOQUE", "FREELANDER", "LR2", "LR3",
		"LR4", "RANGE ROVER", "RANGE ROVER SPORT", "RANGE ROVER VELAR", "RANGE ROVER EVOQUE",
	}},
	{"LEXUS", []string{
		"CT", "ES", "GS", "GX", "HS", "IS", "LC", "LS", "LX", "NX", "RC", "RX", "SC", "UX",
	}},
	{"LINCOLN", []string{
		"AVIATOR", "BLACKWOOD", "CONTINENTAL", "CORSAIR", "LS", "MARK", "MKC", "MKS",
		"MKT", "MKX", "MKZ", "NAUTILUS", "NAVIGATOR", "TOWN CAR", "ZEPHYR",
	}},
	{"MAZDA", []string{
		"2", "3", "5", "6", "626", "929", "B-SERIES", "CX-3", "CX-30", "CX-5", "CX-7",
		"CX-9", "MAZDASPEED3", "MAZDASPEED6", "MILLENIA", "MIATA", "MPV", "MX-5", "PROTEGE",
		"RX-7", "RX-8", "TRIBUTE",
	}},
	{"MERCEDES-BENZ", []string{
		"190", "200", "220", "230", "240", "250", "260", "280", "300", "320", "350",
		"380", "400", "420", "430", "450", "500", "560", "600", "A-CLASS", "B-CLASS",
		"C-CLASS", "CL-CLASS", "CLA-CLASS", "CLS-CLASS", "E-CLASS", "G-CLASS", "GL-CLASS",
		"GLA-CLASS", "GLB-CLASS", "GLC-CLASS", "GLE-CLASS", "GLK-CLASS", "GLS-CLASS",
		"M-CLASS", "ML-CLASS", "R-CLASS", "S-CLASS", "SL-CLASS", "SLK-CLASS", "SLR",
		"SLS", "SPRINTER",
	}},
	{"MINI", []string{
		"CLUBMAN", "CONVERTIBLE", "COOPER", "COUNTRYMAN", "COUPE", "HARDTOP", "PACEMAN",
		"ROADSTER",
	}},
	{"MITSUBISHI", []string{
		"3000GT", "DIAMANTE", "ECLIPSE", "ENDEAVOR", "GALANT", "LANCER", "MIRAGE",
		"MONTERO", "OUTLANDER", "OUTLANDER SPORT", "PAJERO", "RVR",
	}},
	{"NISSAN", []string{
		"200SX", "240SX", "300ZX", "350Z", "370Z", "ALTIMA", "ARMADA", "CUBE", "FRONTIER",
		"GT-R", "JUKE", "KICKS", "LEAF", "MAXIMA", "MURANO", "NAVARA", "PATHFINDER",
		"QUEST", "ROGUE", "SENTRA", "TITAN", "VERSA", "XTERRA",
	}},
	{"PONTIAC", []string{
		"AZTEK", "BONNEVILLE", "FIREBIRD", "G3", "G5", "G6", "G8", "GRAND AM", "GRAND PRIX",
		"GTO", "MONTANA", "SOLSTICE", "SUNBIRD", "SUNFIRE", "TORRENT", "TRANS AM", "VIBE", "WAVE",
	}},
	{"PORSCHE", []string{
		"911", "918", "924", "928", "944", "968", "BOXSTER", "CAYENNE", "CAYMAN", "MACAN",
		"PANAMERA", "TAYCAN",
	}},
	{"RAM", []string{
		"1500", "2500", "3500", "CARGO VAN", "PROMASTER", "PROMASTER CITY",
	}},
	{"SAAB", []string{
		"9-2X", "9-3", "9-4X", "9-5", "9-7X", "900", "9000",
	}},
	{"SATURN", []string{
		"ASTRA", "AURA", "ION", "L-SERIES", "OUTLOOK", "RELAY", "S-SERIES", "SKY", "VUE",
	}},
	{"SUBARU", []string{
		"ASCENT", "BAJA", "BRZ", "CROSSTREK", "FORESTER", "IMPREZA", "JUSTY", "LEGACY",
		"OUTBACK", "SVX", "TRIBECA", "WRX", "XV",
	}},
	{"SUZUKI", []string{
		"AERIO", "EQUATOR", "ESTEEM", "FORENZA", "GRAND VITARA", "KIZASHI", "RENO",
		"RIDGELINE", "SAMURAI", "SIDEKICK", "SWIFT", "SX4", "VERONA", "VITARA", "XL7",
	}},
	{"TESLA", []string{
		"MODEL 3", "MODEL S", "MODEL X", "MODEL Y", "ROADSTER", "CYBERTRUCK",
	}},
	{"TOYOTA", []string{
		"4RUNNER", "86", "AVALON", "AVENSIS", "AYGO", "C-HR", "CAMRY", "CELICA", "COROLLA",
		"ECHO", "FJ CRUISER", "HIGHLANDER", "LAND CRUISER", "MATRIX", "PRIUS", "RAV4",
		"SEQUOIA", "SIENNA", "SOLARA", "SUPRA", "TACOMA", "TERCEL", "TUNDRA", "VENZA", "YARIS",
	}},
	{"VOLKSWAGEN", []string{
		"ATLAS", "BEETLE", "CABRIO", "CC", "CORRADO", "EOS", "EUROVAN", "GOLF", "GTI",
		"JETTA", "PASSAT", "PHAETON", "RABBIT", "ROUTAN", "TIGUAN", "TOUAREG", "TOURAN",
	}},
	{"VOLVO", []string{
		"240", "260", "740", "760", "780", "850", "940", "960", "C30", "C70", "S40",
		"S60", "S70", "S80", "S90", "V40", "V50", "V60", "V70", "V90", "XC40", "XC60",
		"XC70", "XC90",
	}},
	// Alias targets that previously had no model list.
	{"MERCURY", []string{
		"COUGAR", "GRAND MARQUIS", "MARINER", "MARAUDER", "MILAN", "MONTEGO", "MOUNTAINEER",
		"MYSTIQUE", "SABLE", "TRACER", "VILLAGER",
	}},
	{"FIAT", []string{
		"124 SPIDER", "500", "500E", "500L", "500X",
	}},
	{"ALFA ROMEO", []string{
		"4C", "GIULIA", "GIULIETTA", "STELVIO", "TONALE",
	}},
}

// makeAliases maps brand shorthand and common spellings to canonical makes.
// The fuzzy make pass walks this slice in order, so keep it ordered.
var makeAliases = []struct {
	Alias string
	Make  string
}{
	{"MERC", "MERCEDES-BENZ"},
	{"MERCEDES", "MERCEDES-BENZ"},
	{"BENZ", "MERCEDES-BENZ"},
	{"BMW", "BMW"},
	{"VW", "VOLKSWAGEN"},
	{"VOLKSWAGEN", "VOLKSWAGEN"},
	{"CHEV", "CHEVROLET"},
	{"CHEVY", "CHEVROLET"},
	{"FORD", "FORD"},
	{"HONDA", "HONDA"},
	{"TOYOTA", "TOYOTA"},
	{"NISSAN", "NISSAN"},
	{"HYUNDAI", "HYUNDAI"},
	{"KIA", "KIA"},
	{"SUBARU", "SUBARU"},
	{"MAZDA", "MAZDA"},
	{"MITSUBISHI", "MITSUBISHI"},
	{"INFINITI", "INFINITI"},
	{"LEXUS", "LEXUS"},
	{"ACURA", "ACURA"},
	{"AUDI", "AUDI"},
	{"VOLVO", "VOLVO"},
	{"SAAB", "SAAB"},
	{"JEEP", "JEEP"},
	{"DODGE", "DODGE"},
	{"CHRYSLER", "CHRYSLER"},
	{"BUICK", "BUICK"},
	{"CADILLAC", "CADILLAC"},
	{"GMC", "GMC"},
	{"PONTIAC", "PONTIAC"},
	{"SATURN", "SATURN"},
	{"LINCOLN", "LINCOLN"},
	{"MERCURY", "MERCURY"},
	{"JAGUAR", "JAGUAR"},
	{"LANDROVER", "LAND ROVER"},
	{"LAND-ROVER", "LAND ROVER"},
	{"PORSCHE", "PORSCHE"},
	{"TESLA", "TESLA"},
	{"MINI", "MINI"},
	{"FIAT", "FIAT"},
	{"ALFA", "ALFA ROMEO"},
	{"ALFA-ROMEO", "ALFA ROMEO"},
}

// modelAliases maps shorthand model tokens to canonical models. It is not scoped
// by make; ExtractModel only accepts a hit that is in the detected make's list.
var modelAliases = map[string]string{
	// BMW
	"3": "3 SERIES",
	"5": "5 SERIES",
	"7": "7 SERIES",

	// Mercedes-Benz
	"C":  "C-CLASS",
	"E":  "E-CLASS",
	"S":  "S-CLASS",
	"ML": "ML-CLASS",
	"GL": "GL-CLASS",

	"ACCORD":     "ACCORD",
	"CIVIC":      "CIVIC",
	"CAMRY":      "CAMRY",
	"COROLLA":    "COROLLA",
	"ALTIMA":     "ALTIMA",
	"SENTRA":     "SENTRA",
	"ELANTRA":    "ELANTRA",
	"SONATA":     "SONATA",
	"OPTIMA":     "OPTIMA",
	"FORTE":      "FORTE",
	"IMPREZA":    "IMPREZA",
	"OUTBACK":    "OUTBACK",
	"LEGACY":     "LEGACY",
	"CX-5":       "CX-5",
	"CX-9":       "CX-9",
	"RAV4":       "RAV4",
	"HIGHLANDER": "HIGHLANDER",
	"CR-V":       "CR-V",
	"PILOT":      "PILOT",
	"ROGUE":      "ROGUE",
	"PATHFINDER": "PATHFINDER",
	"MURANO":     "MURANO",
	"TUCSON":     "TUCSON",
	"SANTA FE":   "SANTA FE",
	"SORENTO":    "SORENTO",
	"SPORTAGE":   "SPORTAGE",
	"FORESTER":   "FORESTER",
	"XV":         "XV",
	"CROSSTREK":  "CROSSTREK",
}

var (
	// modelSets maps make -> set of its canonical models
	modelSets map[string]map[string]struct{}
	// makeAliasIndex maps alias -> canonical make
	makeAliasIndex map[string]string
	// makeNames holds canonical makes in reference order
	makeNames []string
)

func init() {
	modelSets = make(map[string]map[string]struct{}, len(makeModels))
	makeNames = make([]string, 0, len(makeModels))
	for _, entry := range makeModels {
		set := make(map[string]struct{}, len(entry.Models))
		for _, m := range entry.Models {
			set[m] = struct{}{}
		}
		modelSets[entry.Make] = set
		makeNames = append(makeNames, entry.Make)
	}

	makeAliasIndex = make(map[string]string, len(makeAliases))
	for _, a := range makeAliases {
		makeAliasIndex[a.Alias] = a.Make
	}
}

// Makes returns the canonical make names in reference order.
func Makes() []string {
	out := make([]string, len(makeNames))
	copy(out, makeNames)
	return out
}

// Models returns a copy of the canonical models for make, or nil if make is unknown.
func Models(canonicalMake string) []string {
	for _, entry := range makeModels {
		if entry.Make == canonicalMake {
			out := make([]string, len(entry.Models))
			copy(out, entry.Models)
			return out
		}
	}
	return nil
}

// IsMake reports whether name is a canonical make.
func IsMake(name string) bool {
	_, ok := modelSets[name]
	return ok
}

// HasModel reports whether model is listed under the canonical make.
func HasModel(canonicalMake, model string) bool {
	_, ok := modelSets[canonicalMake][model]
	return ok
}

// modelsOf returns the reference slice for make without copying.
func modelsOf(canonicalMake string) []string {
	for _, entry := range makeModels {
		if entry.Make == canonicalMake {
			return entry.Models
		}
	}
	return nil
}
