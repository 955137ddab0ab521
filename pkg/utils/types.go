package utils

// AirportQueryKind tells which airport column a search string targets
type AirportQueryKind int

const (
	AirportByName AirportQueryKind = iota
	AirportByFAA
	AirportByICAO
)

func (k AirportQueryKind) String() string {
	switch k {
	case AirportByFAA:
		return "faa"
	case AirportByICAO:
		return "icao"
	default:
		return "name"
	}
}

// AirportQuery is the classified form of a free-text airport search.
// Value is already case-normalized for the column it targets.
type AirportQuery struct {
	Kind  AirportQueryKind
	Value string
}

// Constants
const (
	DATE_LAYOUT     = "1/2/2006" // month and day may be zero-padded
	WILDCARD        = "*"
	ADDRESS_SEP     = ", "
	MAX_FLIGHT_TIME = 8000
)
