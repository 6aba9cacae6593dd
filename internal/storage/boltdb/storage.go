package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// bucketUsers хранит документы пользователей: ключ — username, значение — JSON
var bucketUsers = []byte("users")

// Storage represents BoltDB storage implementation
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open boltdb: %w", storage.ErrStoreUnavailable, err)
	}

	s := &Storage{db: db}

	// Инициализируем bucket
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to initialize buckets: %w", storage.ErrStoreUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketUsers); err != nil {
			return fmt.Errorf("failed to create users bucket: %w", err)
		}
		return nil
	})
}

// getUser читает и десериализует документ пользователя внутри транзакции
func getUser(tx *bbolt.Tx, username string) (*models.User, error) {
	bucket := tx.Bucket(bucketUsers)
	if bucket == nil {
		return nil, fmt.Errorf("users bucket not found")
	}

	data := bucket.Get([]byte(username))
	if data == nil {
		return nil, storage.ErrUserNotFound
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user document: %w", err)
	}

	return user, nil
}

// putUser сериализует и перезаписывает документ пользователя внутри транзакции
func putUser(tx *bbolt.Tx, user *models.User) error {
	bucket := tx.Bucket(bucketUsers)
	if bucket == nil {
		return fmt.Errorf("users bucket not found")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user document: %w", err)
	}

	if err := bucket.Put([]byte(user.Username), data); err != nil {
		return fmt.Errorf("failed to save user document: %w", err)
	}

	return nil
}
