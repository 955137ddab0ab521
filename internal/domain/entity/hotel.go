package entity

// Hotel holds the display fields fetched for a search hit
type Hotel struct {
	ID            string `bson:"_id"`
	Name          string `bson:"name"`
	Description   string `bson:"description"`
	Address       string `bson:"address"`
	City          string `bson:"city"`
	State         string `bson:"state"`
	Country       string `bson:"country"`
	FreeBreakfast bool   `bson:"free_breakfast"`
	FreeInternet  bool   `bson:"free_internet"`
	FreeParking   bool   `bson:"free_parking"`
	PetsOk        bool   `bson:"pets_ok"`
	Vacancy       bool   `bson:"vacancy"`
}

// HotelSummary is what hotel search returns per hit
type HotelSummary struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	FreeBreakfast bool   `json:"free_breakfast"`
	FreeInternet  bool   `json:"free_internet"`
	FreeParking   bool   `json:"free_parking"`
	PetsOk        bool   `json:"pets_ok"`
	Vacancy       bool   `json:"vacancy"`
}

// SearchHit is a matching document id. The regex-based search gives no relevance score,
// hits come back ordered by name.
type SearchHit struct {
	ID string
}
