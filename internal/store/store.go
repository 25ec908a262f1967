// Package store wraps the local BoltDB database that holds everything
// ludo persists: the library snapshot, user accounts and the current
// session. Values are stored as JSON.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DB is a thin bucket/key JSON store over BoltDB. Opening with an
// empty path yields a memory-only store with no persistence, used by
// tests and as a degraded mode when the data directory is unusable.
type DB struct {
	db *bolt.DB

	mu  sync.RWMutex
	mem map[string][]byte // memory-only mode
}

// Open opens (or creates) the database at path.
func Open(path string) (*DB, error) {
	if path == "" {
		return &DB{mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Get reads bucket/key into dest. It returns false when the key is
// absent or the stored value does not deserialize.
func (d *DB) Get(bucket, key string, dest interface{}) bool {
	if d.db == nil {
		d.mu.RLock()
		data, ok := d.mem[bucket+":"+key]
		d.mu.RUnlock()
		if !ok {
			return false
		}
		return json.Unmarshal(data, dest) == nil
	}

	var data []byte
	d.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Put writes value under bucket/key, creating the bucket on first use.
func (d *DB) Put(bucket, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if d.db == nil {
		d.mu.Lock()
		d.mem[bucket+":"+key] = data
		d.mu.Unlock()
		return nil
	}

	return d.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// Delete removes bucket/key if present.
func (d *DB) Delete(bucket, key string) error {
	if d.db == nil {
		d.mu.Lock()
		delete(d.mem, bucket+":"+key)
		d.mu.Unlock()
		return nil
	}

	return d.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
