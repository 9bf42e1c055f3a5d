// Package main provides a tool to seed the database with demo data:
// two accounts with a spread of folders, tags, and notes.
//
// Usage:
//
//	DB_PATH=~/Quill/data/db go run ./cmd/seed
//
// Both accounts log in with the password "password123".
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/quillapp/quill-server/internal/auth"
	"github.com/quillapp/quill-server/internal/domain"
	"github.com/quillapp/quill-server/internal/id"
	"github.com/quillapp/quill-server/internal/store"
)

const demoPassword = "password123"

type demoAccount struct {
	firstName string
	lastName  string
	email     string
	folders   []string
	tags      []string
	notes     []demoNote
}

type demoNote struct {
	title  string
	folder string   // folder name, resolved after creation
	tags   []string // tag names, resolved after creation
}

var accounts = []demoAccount{
	{
		firstName: "Timothy",
		lastName:  "Green",
		email:     "msgreen@test.com",
		folders:   []string{"Archive", "Drafts", "Personal", "Work"},
		tags:      []string{"Foo", "Bar", "Baz", "Qux"},
		notes: []demoNote{
			{title: "5 life lessons learned from dogs"},
			{title: "What the government doesn't want you to know about dogs", folder: "Archive"},
			{title: "The most boring article about dogs you'll ever read", tags: []string{"Baz", "Qux"}},
			{title: "7 things lady gaga has in common with dogs", folder: "Drafts", tags: []string{"Foo", "Bar", "Baz"}},
			{title: "The most incredible article about dogs you'll ever read"},
		},
	},
	{
		firstName: "Todd",
		lastName:  "Yellow",
		email:     "mryellow@test.com",
		folders:   []string{"Archive", "Important", "Personal", "Work-In-Progress"},
		tags:      []string{"Waldo", "Thud", "Wobble", "Boop"},
		notes: []demoNote{
			{title: "One weird trick to train your dog", folder: "Archive"},
			{title: "10 ways dogs can help you live to 100", folder: "Personal"},
			{title: "9 reasons you can blame the recession on dogs", tags: []string{"Waldo"}},
			{title: "10 ways marketers are making you addicted to dogs", folder: "Important", tags: []string{"Waldo", "Wobble", "Boop"}},
		},
	},
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Quill/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, account := range accounts {
		if err := seedAccount(ctx, s, account); err != nil {
			log.Fatalf("Failed to seed %s: %v", account.email, err)
		}
	}

	fmt.Println("Done. Log in with password \"password123\".")
}

func seedAccount(ctx context.Context, s *store.Store, account demoAccount) error {
	if _, err := s.GetUserByEmail(ctx, account.email); err == nil {
		fmt.Printf("Skipping %s (already exists)\n", account.email)
		return nil
	}

	passwordHash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:           id.MustNew(),
		FirstName:    account.firstName,
		LastName:     account.lastName,
		Email:        account.email,
		PasswordHash: passwordHash,
	}
	user.InitTimestamps()
	if err := s.CreateUser(ctx, user); err != nil {
		return err
	}

	folderIDs := make(map[string]string, len(account.folders))
	for _, name := range account.folders {
		folder := &domain.Folder{ID: id.MustNew(), Name: name, UserID: user.ID}
		folder.InitTimestamps()
		if err := s.CreateFolder(ctx, folder); err != nil {
			return err
		}
		folderIDs[name] = folder.ID
	}

	tagIDs := make(map[string]string, len(account.tags))
	for _, name := range account.tags {
		tag := &domain.Tag{ID: id.MustNew(), Name: name, UserID: user.ID}
		tag.InitTimestamps()
		if err := s.CreateTag(ctx, tag); err != nil {
			return err
		}
		tagIDs[name] = tag.ID
	}

	for _, n := range account.notes {
		note := &domain.Note{
			ID:       id.MustNew(),
			Title:    n.title,
			Document: demoDocument(n.title),
			UserID:   user.ID,
			FolderID: folderIDs[n.folder],
		}
		for _, tagName := range n.tags {
			note.Tags = append(note.Tags, tagIDs[tagName])
		}
		note.InitTimestamps()
		if err := s.CreateNote(ctx, note); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %s: %d folders, %d tags, %d notes\n",
		account.email, len(account.folders), len(account.tags), len(account.notes))
	return nil
}

// demoDocument builds a one-paragraph rich-text tree around the title.
func demoDocument(title string) map[string]any {
	return map[string]any{
		"document": map[string]any{
			"nodes": []any{
				map[string]any{
					"object": "block",
					"type":   "paragraph",
					"nodes": []any{
						map[string]any{
							"object": "text",
							"leaves": []any{
								map[string]any{"text": "This is the text for " + title},
							},
						},
					},
				},
			},
		},
	}
}
