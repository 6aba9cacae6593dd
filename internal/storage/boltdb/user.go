package boltdb

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// CreateUser creates a new user document
// Уникальность username обеспечивается проверкой ключа в той же транзакции
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUsers)
		if bucket == nil {
			return storage.ErrStoreUnavailable
		}

		// Проверяем на duplicate username
		if bucket.Get([]byte(user.Username)) != nil {
			return storage.ErrUserAlreadyExists
		}

		return putUser(tx, user)
	})
}

// GetUser retrieves the full user document by username
func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user *models.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		user, err = getUser(tx, username)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UserExists reports whether the username key is present
func (s *Storage) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketUsers)
		if bucket == nil {
			return storage.ErrStoreUnavailable
		}
		exists = bucket.Get([]byte(username)) != nil
		return nil
	})
	if err != nil {
		return false, err
	}

	return exists, nil
}
