package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

// ClassifyAirportSearch decides from the shape of the input which airport lookup to run.
// Uniform-case strings of length 3 are FAA codes, of length 4 ICAO codes; anything else is
// a partial airport name.
func ClassifyAirportSearch(search string) AirportQuery {
	if isUniformCase(search) {
		switch len([]rune(search)) {
		case 3:
			return AirportQuery{Kind: AirportByFAA, Value: strings.ToUpper(search)}
		case 4:
			return AirportQuery{Kind: AirportByICAO, Value: strings.ToUpper(search)}
		}
	}
	return AirportQuery{Kind: AirportByName, Value: strings.ToLower(search)}
}

// isUniformCase reports whether every cased letter in s is lower case, or every one is upper case.
// Strings without any cased letter count as uniform.
func isUniformCase(s string) bool {
	return s == strings.ToLower(s) || s == strings.ToUpper(s)
}

// ConvertDate turns a mm/dd/yyyy date into its weekday number, Monday=0 .. Sunday=6
func ConvertDate(raw string) (int, error) {
	day, err := time.Parse(DATE_LAYOUT, strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected mm/dd/yyyy: %w", raw, err)
	}
	return (int(day.Weekday()) + 6) % 7, nil
}

// FlightPrice derives a price from a flight time, rounded up to the nearest cent
func FlightPrice(flightTime int) float64 {
	return math.Ceil(float64(flightTime)/8*100) / 100
}

// FlightTime maps a random value in [0,1) onto 1..MAX_FLIGHT_TIME
func FlightTime(r float64) int {
	t := int(math.Ceil(r * MAX_FLIGHT_TIME))
	if t < 1 {
		return 1
	}
	if t > MAX_FLIGHT_TIME {
		return MAX_FLIGHT_TIME
	}
	return t
}

// IsWildcard reports whether a filter value means "no filter"
func IsWildcard(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == WILDCARD
}

// JoinNonEmpty joins the parts that contain something other than white space
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimFunc(p, unicode.IsSpace) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// NormalizeUsername returns the storage key form of a username
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
