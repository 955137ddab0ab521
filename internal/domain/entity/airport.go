package entity

// Airport is the projection returned by airport searches
type Airport struct {
	AirportName string `json:"airportname"`
}

// Geo holds an airport position
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt"`
}

// AirportSide names which end of a flight path an airport resolves
type AirportSide string

const (
	FromAirport AirportSide = "fromAirport"
	ToAirport   AirportSide = "toAirport"
)

// ResolvedAirport is one row of the from/to code resolution, keyed by Side
type ResolvedAirport struct {
	Side AirportSide
	FAA  string
	Geo  Geo
}
