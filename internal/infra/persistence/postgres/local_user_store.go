// Package postgres contains the local snapshot store implemented with GORM and PostgreSQL.
package postgres

import (
	"context"

	"campusradar/internal/domain/entity"
	"campusradar/internal/domain/repository"
	"campusradar/internal/errors"
	"campusradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 200

// localUserStore implements repository.LocalUserStore on the local_users table.
type localUserStore struct {
	db *gorm.DB
}

// NewLocalUserStore is the constructor for localUserStore.
func NewLocalUserStore(db *gorm.DB) repository.LocalUserStore {
	return &localUserStore{db: db}
}

// GetAll returns every snapshot row ordered by id.
func (s *localUserStore) GetAll(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.LocalUserModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list local users")
	}

	return toUserDomainList(rows), nil
}

// GetByID retrieves a single snapshot row.
func (s *localUserStore) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var row model.LocalUserModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find local user by id")
	}

	return toUserDomain(&row), nil
}

// GetWithinBounds returns located users inside the bound. Rows without a location never match.
func (s *localUserStore) GetWithinBounds(ctx context.Context, bound orb.Bound) ([]*entity.User, error) {
	var rows []*model.LocalUserModel
	err := s.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon()).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list local users within bounds")
	}

	return toUserDomainList(rows), nil
}

// UpsertAll inserts the users or overwrites the existing rows with the same id.
func (s *localUserStore) UpsertAll(ctx context.Context, users []*entity.User) error {
	rows := make([]*model.LocalUserModel, 0, len(users))
	for _, u := range users {
		if u == nil || u.ID == "" {
			continue
		}
		rows = append(rows, fromUserDomain(u))
	}
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, upsertBatchSize).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert local users")
	}

	return nil
}

func toUserDomainList(rows []*model.LocalUserModel) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users
}

// toUserDomain converts a snapshot row to a domain User. A location is only set when both axes are present.
func toUserDomain(data *model.LocalUserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Image:     data.Image,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		loc := entity.NewCoordinate(*data.Latitude, *data.Longitude)
		user.Location = &loc
	}

	return user
}

func fromUserDomain(data *entity.User) *model.LocalUserModel {
	if data == nil {
		return nil
	}

	row := &model.LocalUserModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Image:     data.Image,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		row.Latitude = &lat
		row.Longitude = &lng
	}

	return row
}
