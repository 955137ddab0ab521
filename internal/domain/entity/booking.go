package entity

// Booking is a booked flight, stored under its own key and referenced from the user document
type Booking struct {
	ID                 string  `json:"id,omitempty" bson:"_id"`
	Name               string  `json:"name" bson:"name" validate:"required"`
	Flight             string  `json:"flight" bson:"flight" validate:"required"`
	Price              float64 `json:"price" bson:"price" validate:"gte=0"`
	Date               string  `json:"date" bson:"date" validate:"required"`
	SourceAirport      string  `json:"sourceairport" bson:"sourceairport" validate:"required"`
	DestinationAirport string  `json:"destinationairport" bson:"destinationairport" validate:"required"`
	BookedOn           string  `json:"bookedon,omitempty" bson:"bookedon,omitempty"`
}
