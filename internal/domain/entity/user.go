// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a marketplace member. Users are the only entities that carry a position;
// a product is located wherever its owner is.
type User struct {
	ID        string      // Identifier assigned by the remote store on creation.
	Name      string      // Display name.
	Email     string      // Contact email.
	Phone     string      // Contact phone, may be empty.
	Image     string      // Avatar URL, may be empty.
	Location  *Coordinate // Last known position. Nil means the location is unknown.
	UpdatedAt time.Time   // Timestamp of the last modification seen by the store.
}

// HasLocation reports whether the user has a known position.
func (u *User) HasLocation() bool {
	return u != nil && u.Location != nil
}
