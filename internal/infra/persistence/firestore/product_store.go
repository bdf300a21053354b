package firestore

import (
	"context"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"

	"cloud.google.com/go/firestore"
)

const clicksField = "clicks"

// productStore implements repository.RemoteProductStore on the products collection.
type productStore struct {
	client *firestore.Client
}

// NewProductStore is the constructor for productStore.
func NewProductStore(client *firestore.Client) repository.RemoteProductStore {
	return &productStore{client: client}
}

func (s *productStore) ListAll(ctx context.Context) ([]*entity.Product, error) {
	snaps, err := s.client.Collection(productsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list remote products")
	}

	return decodeAll(snaps, toProductDomain)
}

func (s *productStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := s.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrapf(err, "failed to get remote product %s", id)
	}

	return toProductDomain(snap)
}

func (s *productStore) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	snaps, err := s.client.Collection(productsCollection).
		Where("ownerId", "==", ownerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list remote products of owner %s", ownerID)
	}

	return decodeAll(snaps, toProductDomain)
}

// IncrementCounter adds one to clicks.<attribute> with a server-side increment.
func (s *productStore) IncrementCounter(ctx context.Context, id, attribute string) error {
	_, err := s.client.Collection(productsCollection).Doc(id).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{clicksField, attribute}, Value: firestore.Increment(1)},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrapf(err, "failed to increment %s counter of product %s", attribute, id)
	}

	return nil
}
