// Package store persists all application state in a Badger database.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/quillapp/quill-server/internal/domain"
)

// Key prefixes. Index keys live under the same prefix as their entity
// ("<prefix>idx:<name>:<value>"), which keeps related keys adjacent in
// Badger's keyspace.
const (
	userPrefix    = "user:"
	folderPrefix  = "folder:"
	tagPrefix     = "tag:"
	notePrefix    = "note:"
	sessionPrefix = "session:"
	instanceKey   = "instance"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Users    *Entity[domain.User]
	Folders  *Entity[domain.Folder]
	Tags     *Entity[domain.Tag]
	Notes    *Entity[domain.Note]
	Sessions *Entity[domain.Session]
}

// New opens (or creates) the database at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Sync writes to disk to survive crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &Store{db: db, logger: logger}

	s.Users = NewEntity[domain.User](s, userPrefix).
		WithIndex("email",
			func(u *domain.User) []string { return []string{normalizeEmail(u.Email)} },
			normalizeEmail,
		)

	// Folder and tag names are unique per owner, case-insensitively.
	s.Folders = NewEntity[domain.Folder](s, folderPrefix).
		WithIndex("owner_name",
			func(f *domain.Folder) []string { return []string{ownerNameKey(f.UserID, f.Name)} },
			nil,
		)

	s.Tags = NewEntity[domain.Tag](s, tagPrefix).
		WithIndex("owner_name",
			func(t *domain.Tag) []string { return []string{ownerNameKey(t.UserID, t.Name)} },
			nil,
		)

	s.Notes = NewEntity[domain.Note](s, notePrefix)

	s.Sessions = NewEntity[domain.Session](s, sessionPrefix).
		WithIndex("token",
			func(sess *domain.Session) []string { return []string{sess.RefreshTokenHash} },
			nil,
		)

	if logger != nil {
		logger.Info("Badger database opened", "path", path)
	}

	return s, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Health verifies the database is readable.
func (s *Store) Health() error {
	return s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(instanceKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// get retrieves a raw value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a raw value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// normalizeEmail lowercases and trims an email for index lookups.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ownerNameKey builds the per-owner uniqueness key for folder and tag
// names. NUL can't appear in an ID, so the pair is unambiguous.
func ownerNameKey(userID, name string) string {
	return userID + "\x00" + strings.ToLower(name)
}
