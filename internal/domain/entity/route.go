package entity

// FlightPath is one scheduled flight on a route, joined with its airline.
// FlightTime and Price are synthesized since the sample data carries no fares.
type FlightPath struct {
	Name               string  `json:"name"`
	Flight             string  `json:"flight"`
	Equipment          string  `json:"equipment"`
	Utc                string  `json:"utc"`
	SourceAirport      string  `json:"sourceairport"`
	DestinationAirport string  `json:"destinationairport"`
	FlightTime         int     `json:"flighttime"`
	Price              float64 `json:"price"`
}

// RouteQuery selects the flights of one weekday between two FAA codes
type RouteQuery struct {
	From string
	To   string
	Day  int
}
