package handler

import (
	"time"

	"campusradar/internal/domain/entity"
)

// CoordinateResponse is a latitude/longitude pair in degrees.
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name,omitempty"`
	Email    string              `json:"email,omitempty"`
	Phone    string              `json:"phone,omitempty"`
	Image    string              `json:"image,omitempty"`
	Location *CoordinateResponse `json:"location,omitempty"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Status      string    `json:"status,omitempty"`
	Price       int       `json:"price"`
	BaseBid     int       `json:"base_bid"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserMatchResponse is a user and its distance from the query origin.
type UserMatchResponse struct {
	User           *UserResponse `json:"user"`
	DistanceMeters float64       `json:"distance_meters"`
}

// ProductMatchResponse is a product, its owner and the owner's distance from the query origin.
type ProductMatchResponse struct {
	Product        *ProductResponse `json:"product"`
	Owner          *UserResponse    `json:"owner"`
	DistanceMeters float64          `json:"distance_meters"`
}

func toCoordinateResponse(c *entity.Coordinate) *CoordinateResponse {
	if c == nil {
		return nil
	}

	return &CoordinateResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Image:    u.Image,
		Location: toCoordinateResponse(u.Location),
	}
}

func toProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	return &ProductResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Status:      p.Status,
		Price:       p.Price,
		BaseBid:     p.BaseBid,
		Tags:        p.Tags(),
		CreatedAt:   p.CreatedAt,
	}
}

func toUserMatchResponse(m *entity.UserMatch) *UserMatchResponse {
	if m == nil {
		return nil
	}

	return &UserMatchResponse{User: toUserResponse(m.User), DistanceMeters: m.DistanceMeters}
}

func toProductMatchResponse(m *entity.ProductMatch) *ProductMatchResponse {
	if m == nil {
		return nil
	}

	return &ProductMatchResponse{
		Product:        toProductResponse(m.Product),
		Owner:          toUserResponse(m.Owner),
		DistanceMeters: m.DistanceMeters,
	}
}
