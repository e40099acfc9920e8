package airports

import "strings"

// nearby maps an airport code to alternative airports serving the same
// catchment area.
var nearby = map[string][]string{
	"FRA": {"MUC", "STR", "CGN", "DUS"},
	"MUC": {"FRA", "STR", "VIE"},
	"BER": {"HAM", "DUS", "FRA"},
	"JFK": {"EWR", "LGA"},
	"LHR": {"LGW", "STN", "LTN"},
	"CDG": {"ORY"},
	"DXB": {"AUH"},
	"IST": {"SAW"},
	"NYC": {"JFK", "LGA", "EWR"},
	"LON": {"LHR", "LGW", "STN", "LTN", "LCY"},
	"PAR": {"CDG", "ORY"},
	"MIL": {"MXP", "LIN"},
	"ROM": {"FCO", "CIA"},
	"SHA": {"PVG", "SHA"},
	"TOK": {"NRT", "HND"},
	"BUE": {"EZE", "AEP"},
}

// beyond maps a destination to cities that through-tickets commonly continue
// to, used for hidden-city candidates.
var beyond = map[string][]string{
	"JFK": {"BOS", "YUL", "YYZ"},
	"LHR": {"DUB", "MAN", "EDI"},
	"CDG": {"AMS", "BRU", "LUX"},
	"FRA": {"MUC", "VIE", "ZRH"},
	"DXB": {"DOH", "AUH", "MCT"},
}

// majorHubs are the connection points considered for multi-leg splits.
var majorHubs = []string{"FRA", "AMS", "CDG", "LHR", "MUC", "IST", "DXB", "DOH"}

// Nearby returns the alternative airports for a code, or nil when none are
// configured.
func Nearby(code string) []string {
	return nearby[strings.ToUpper(code)]
}

// CitiesBeyond returns hidden-city candidates past the given destination.
func CitiesBeyond(destination string) []string {
	return beyond[strings.ToUpper(destination)]
}

// Hubs returns the major hubs excluding the given origin and destination.
func Hubs(origin, destination string) []string {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	var hubs []string
	for _, h := range majorHubs {
		if h != origin && h != destination {
			hubs = append(hubs, h)
		}
	}
	return hubs
}
