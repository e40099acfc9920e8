package route

import (
	"fmt"
	"net/url"
	"time"
)

const compactDate = "20060102"

// BookingLinks builds search URLs for the supported booking platforms.
func BookingLinks(origin, destination string, departure time.Time, ret *time.Time) map[string]string {
	return map[string]string{
		"google_flights": googleFlightsLink(origin, destination, departure, ret),
		"skyscanner":     skyscannerLink(origin, destination, departure, ret),
		"kayak":          kayakLink(origin, destination, departure, ret),
		"momondo":        momondoLink(origin, destination, departure, ret),
		"kiwi":           kiwiLink(origin, destination, departure, ret),
		"expedia":        expediaLink(origin, destination, departure, ret),
	}
}

// PlatformDisplayNames maps booking-link keys to user-facing names.
func PlatformDisplayNames() map[string]string {
	return map[string]string{
		"google_flights": "Google Flights",
		"skyscanner":     "Skyscanner",
		"kayak":          "Kayak",
		"momondo":        "Momondo",
		"kiwi":           "Kiwi.com",
		"expedia":        "Expedia",
	}
}

func googleFlightsLink(origin, destination string, departure time.Time, ret *time.Time) string {
	dateStr := departure.Format(DateFormat)
	if ret != nil {
		dateStr = fmt.Sprintf("%s return %s", dateStr, ret.Format(DateFormat))
	}
	q := url.Values{}
	q.Set("q", fmt.Sprintf("Flights from %s to %s on %s", origin, destination, dateStr))
	return "https://www.google.com/travel/flights?" + q.Encode()
}

func skyscannerLink(origin, destination string, departure time.Time, ret *time.Time) string {
	base := "https://www.skyscanner.com/transport/flights"
	// Skyscanner wants YYMMDD path segments.
	dep := departure.Format(compactDate)[2:]
	if ret != nil {
		return fmt.Sprintf("%s/%s/%s/%s/%s", base, origin, destination, dep, ret.Format(compactDate)[2:])
	}
	return fmt.Sprintf("%s/%s/%s/%s", base, origin, destination, dep)
}

func kayakLink(origin, destination string, departure time.Time, ret *time.Time) string {
	base := "https://www.kayak.com/flights"
	dep := departure.Format(DateFormat)
	if ret != nil {
		return fmt.Sprintf("%s/%s-%s/%s/%s/1adults", base, origin, destination, dep, ret.Format(DateFormat))
	}
	return fmt.Sprintf("%s/%s-%s/%s/1adults", base, origin, destination, dep)
}

func momondoLink(origin, destination string, departure time.Time, ret *time.Time) string {
	base := "https://www.momondo.com/flight-search"
	dep := departure.Format(DateFormat)
	if ret != nil {
		return fmt.Sprintf("%s/%s-%s/%s/%s", base, origin, destination, dep, ret.Format(DateFormat))
	}
	return fmt.Sprintf("%s/%s-%s/%s", base, origin, destination, dep)
}

func kiwiLink(origin, destination string, departure time.Time, ret *time.Time) string {
	q := url.Values{}
	q.Set("sort", "price")
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("departure", departure.Format(compactDate))
	if ret != nil {
		q.Set("return", ret.Format(compactDate))
	}
	return "https://www.kiwi.com/en/search?" + q.Encode()
}

func expediaLink(origin, destination string, departure time.Time, ret *time.Time) string {
	q := url.Values{}
	trip := "oneway"
	if ret != nil {
		trip = "roundtrip"
	}
	q.Set("trip", trip)
	q.Set("leg1", fmt.Sprintf("from:%s,to:%s,departure:%s", origin, destination, departure.Format(compactDate)))
	if ret != nil {
		q.Set("leg2", fmt.Sprintf("from:%s,to:%s,departure:%s", destination, origin, ret.Format(compactDate)))
	}
	return "https://www.expedia.com/Flights-Search?" + q.Encode()
}
