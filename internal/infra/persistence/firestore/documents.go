package firestore

import (
	"time"

	"campusradar/internal/domain/entity"
	"campusradar/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userDocument mirrors a document of the users collection. The id lives in the document name.
type userDocument struct {
	Name      string         `firestore:"name"`
	Email     string         `firestore:"email"`
	Phone     string         `firestore:"phone,omitempty"`
	Image     string         `firestore:"image,omitempty"`
	Location  *latlng.LatLng `firestore:"location,omitempty"`
	UpdatedAt time.Time      `firestore:"updatedAt,omitempty"`
}

// productDocument mirrors a document of the products collection.
type productDocument struct {
	OwnerID     string           `firestore:"ownerId"`
	Title       string           `firestore:"title"`
	Description string           `firestore:"description"`
	Image       string           `firestore:"image"`
	Status      string           `firestore:"status"`
	Price       int              `firestore:"price"`
	BaseBid     int              `firestore:"baseBid"`
	Category    string           `firestore:"category"`
	Types       []string         `firestore:"type"`
	CreatedAt   time.Time        `firestore:"createdAt"`
	Clicks      map[string]int64 `firestore:"clicks,omitempty"`
}

func toUserDomain(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user document %s", snap.Ref.ID)
	}

	user := &entity.User{
		ID:        snap.Ref.ID,
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Image:     doc.Image,
		UpdatedAt: doc.UpdatedAt,
	}
	if doc.Location != nil {
		loc := entity.NewCoordinate(doc.Location.GetLatitude(), doc.Location.GetLongitude())
		user.Location = &loc
	}

	return user, nil
}

func toProductDomain(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var doc productDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product document %s", snap.Ref.ID)
	}

	return &entity.Product{
		ID:          snap.Ref.ID,
		OwnerID:     doc.OwnerID,
		Title:       doc.Title,
		Description: doc.Description,
		Image:       doc.Image,
		Status:      doc.Status,
		Price:       doc.Price,
		BaseBid:     doc.BaseBid,
		Category:    doc.Category,
		Types:       doc.Types,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

func toGeoPoint(c entity.Coordinate) *latlng.LatLng {
	return &latlng.LatLng{Latitude: c.Latitude, Longitude: c.Longitude}
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}
