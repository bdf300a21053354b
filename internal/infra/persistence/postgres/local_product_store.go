package postgres

import (
	"context"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
	"campusradar/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// localProductStore implements repository.LocalProductStore on the local_products table.
type localProductStore struct {
	db *gorm.DB
}

// NewLocalProductStore is the constructor for localProductStore.
func NewLocalProductStore(db *gorm.DB) repository.LocalProductStore {
	return &localProductStore{db: db}
}

func (s *localProductStore) GetAll(ctx context.Context) ([]*entity.Product, error) {
	var rows []*model.LocalProductModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list local products")
	}

	return toProductDomainList(rows), nil
}

func (s *localProductStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var row model.LocalProductModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find local product by id")
	}

	return toProductDomain(&row), nil
}

func (s *localProductStore) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	var rows []*model.LocalProductModel
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list local products of owner %s", ownerID)
	}

	return toProductDomainList(rows), nil
}

func (s *localProductStore) UpsertAll(ctx context.Context, products []*entity.Product) error {
	rows := make([]*model.LocalProductModel, 0, len(products))
	for _, p := range products {
		if p == nil || p.ID == "" {
			continue
		}
		rows = append(rows, fromProductDomain(p))
	}
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, upsertBatchSize).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert local products")
	}

	return nil
}

func toProductDomainList(rows []*model.LocalProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products
}

func toProductDomain(data *model.LocalProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var types []string
	if len(data.Types) > 0 {
		types = append(types, data.Types...)
	}

	return &entity.Product{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Status:      data.Status,
		Price:       data.Price,
		BaseBid:     data.BaseBid,
		Category:    data.Category,
		Types:       types,
		CreatedAt:   data.ListedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.LocalProductModel {
	if data == nil {
		return nil
	}

	return &model.LocalProductModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Status:      data.Status,
		Price:       data.Price,
		BaseBid:     data.BaseBid,
		Category:    data.Category,
		Types:       datatypes.JSONSlice[string](append([]string{}, data.Types...)),
		ListedAt:    data.CreatedAt,
	}
}
