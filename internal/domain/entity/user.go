package entity

// User is the account document. ID is the lowercased username.
type User struct {
	ID       string   `bson:"_id"`
	Username string   `bson:"username"`
	Password string   `bson:"password,omitempty"`
	Bookings []string `bson:"bookings,omitempty"`
}
