// Package main provides a read-only dump of the database for debugging.
//
// Usage:
//
//	DB_PATH=~/Quill/data/db go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/quillapp/quill-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Quill/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	counts := map[string]int{}
	userEmails := map[string]string{}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			prefix, rest, _ := strings.Cut(key, ":")
			if strings.HasPrefix(rest, "idx:") {
				counts[prefix+" index"]++
				continue
			}
			counts[prefix]++

			if prefix == "user" {
				err := item.Value(func(val []byte) error {
					var user domain.User
					if err := json.Unmarshal(val, &user); err != nil {
						return err
					}
					userEmails[user.ID] = user.Email
					return nil
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}

	for prefix, n := range counts {
		fmt.Printf("%-16s %d\n", prefix, n)
	}

	if len(userEmails) > 0 {
		fmt.Println()
		fmt.Println("Users:")
		for id, email := range userEmails {
			fmt.Printf("  %s  %s\n", id, email)
		}
	}
}
