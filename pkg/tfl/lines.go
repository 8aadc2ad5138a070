package tfl

// UndergroundLines are the London Underground lines reported by the API.
var UndergroundLines = []string{
	"Bakerloo",
	"Central",
	"Circle",
	"District",
	"Hammersmith & City",
	"Jubilee",
	"Metropolitan",
	"Northern",
	"Piccadilly",
	"Victoria",
	"Waterloo & City",
}

// OvergroundLines are the Overground and other rail services.
var OvergroundLines = []string{
	"Liberty",
	"Lioness",
	"Mildmay",
	"Suffragette",
	"Weaver",
	"Windrush",
	"DLR",
	"Elizabeth line",
	"Tram",
	"IFS Cloud Cable Car",
}

// Lines is every line the bridge relays, Underground first.
var Lines = append(append([]string{}, UndergroundLines...), OvergroundLines...)

// LineColours maps line names to their official brand hex colours.
var LineColours = map[string]string{
	// Underground
	"Bakerloo":           "#B36305",
	"Central":            "#E32017",
	"Circle":             "#FFD300",
	"District":           "#00782A",
	"Hammersmith & City": "#F3A9BB",
	"Jubilee":            "#A0A5A9",
	"Metropolitan":       "#9B0056",
	"Northern":           "#000000",
	"Piccadilly":         "#003688",
	"Victoria":           "#0098D4",
	"Waterloo & City":    "#95CDBA",
	// London Overground lines (new branding)
	"Liberty":     "#6bcdb2",
	"Lioness":     "#fbb01c",
	"Mildmay":     "#137cbd",
	"Suffragette": "#6a9a3a",
	"Weaver":      "#9b4f7a",
	"Windrush":    "#e05206",
	// Other rail
	"DLR":                 "#00afad",
	"Elizabeth line":      "#6950a1",
	"Tram":                "#6fc42a",
	"IFS Cloud Cable Car": "#e21836",
}
