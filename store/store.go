// Package store persists small string values in a local BoltDB file
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
)

const localBucket = "local"

var errAlreadyRunning = &apperr.Error{
	Message: "is zenfocus already running? Only one instance can be active at a time",
}

// ErrAlreadyRunning is returned when another process holds the database lock.
var ErrAlreadyRunning = errAlreadyRunning

// Client is a BoltDB database client.
type Client struct {
	db *bolt.DB
}

func (c *Client) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(localBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		found = true
		value = string(v)

		return nil
	})

	return value, found, err
}

func (c *Client) Set(key, value string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localBucket)).Put([]byte(key), []byte(value))
	})
}

func (c *Client) Delete(key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localBucket)).Delete([]byte(key))
	})
}

func (c *Client) Close() error {
	return c.db.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient opens the BoltDB file at dbPath, creating it and its parent
// directory if needed.
func NewClient(dbPath string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), 0o750)
	if err != nil {
		return nil, err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(localBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db: db,
	}, nil
}
