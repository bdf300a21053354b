package entity

// UserMatch pairs a user with its distance from the search origin.
type UserMatch struct {
	User           *User
	DistanceMeters float64
}

// ProductMatch pairs a product with its owner and the owner's distance from the search origin.
type ProductMatch struct {
	Product        *Product
	Owner          *User
	DistanceMeters float64
}
