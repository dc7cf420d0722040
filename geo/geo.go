// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import "strings"

// locationToCountry maps well-known destinations (lower-cased) to their
// country. The cross-tabulation view uses it to fold city-level choices
// into regions; anything not listed passes through unchanged.
var locationToCountry = map[string]string{
	"paris":          "france",
	"nice":           "france",
	"lyon":           "france",
	"rome":           "italy",
	"venice":         "italy",
	"florence":       "italy",
	"milan":          "italy",
	"tokyo":          "japan",
	"kyoto":          "japan",
	"osaka":          "japan",
	"barcelona":      "spain",
	"madrid":         "spain",
	"seville":        "spain",
	"lisbon":         "portugal",
	"porto":          "portugal",
	"london":         "united kingdom",
	"edinburgh":      "united kingdom",
	"new york":       "united states",
	"los angeles":    "united states",
	"san francisco":  "united states",
	"miami":          "united states",
	"hawaii":         "united states",
	"amsterdam":      "netherlands",
	"berlin":         "germany",
	"munich":         "germany",
	"vienna":         "austria",
	"prague":         "czechia",
	"budapest":       "hungary",
	"athens":         "greece",
	"santorini":      "greece",
	"crete":          "greece",
	"istanbul":       "turkey",
	"dubai":          "united arab emirates",
	"bangkok":        "thailand",
	"phuket":         "thailand",
	"bali":           "indonesia",
	"singapore":      "singapore",
	"seoul":          "south korea",
	"sydney":         "australia",
	"melbourne":      "australia",
	"auckland":       "new zealand",
	"queenstown":     "new zealand",
	"vancouver":      "canada",
	"toronto":        "canada",
	"montreal":       "canada",
	"mexico city":    "mexico",
	"cancun":         "mexico",
	"rio de janeiro": "brazil",
	"buenos aires":   "argentina",
	"cape town":      "south africa",
	"marrakech":      "morocco",
	"cairo":          "egypt",
	"reykjavik":      "iceland",
	"oslo":           "norway",
	"stockholm":      "sweden",
	"copenhagen":     "denmark",
	"helsinki":       "finland",
	"dublin":         "ireland",
	"zurich":         "switzerland",
	"geneva":         "switzerland",
	"brussels":       "belgium",
	"krakow":         "poland",
	"warsaw":         "poland",
	"dubrovnik":      "croatia",
	"split":          "croatia",
	"havana":         "cuba",
	"kingston":       "jamaica",
	"mumbai":         "india",
	"delhi":          "india",
	"goa":            "india",
	"hanoi":          "vietnam",
	"ho chi minh":    "vietnam",
	"beijing":        "china",
	"shanghai":       "china",
	"hong kong":      "hong kong",
	"taipei":         "taiwan",
	"maldives":       "maldives",
	"fiji":           "fiji",
	"tahiti":         "french polynesia",
}

// Lookup resolves a destination to its country, case-insensitively.
// Unknown destinations pass through lower-cased, so unmapped entries still
// group with themselves.
func Lookup(destination string) string {
	key := strings.ToLower(strings.TrimSpace(destination))
	if country, ok := locationToCountry[key]; ok {
		return country
	}
	return key
}

// Title upper-cases the first letter only, matching the display convention
// for region labels.
func Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
