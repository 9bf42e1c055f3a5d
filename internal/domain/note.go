package domain

// Note is a rich-text document owned by one user.
//
// Document is a schemaless rich-text tree produced by the editor; the
// server stores it verbatim and never interprets its structure. FolderID
// and every element of Tags must reference resources owned by the same
// UserID — the request pipeline rejects cross-user references before
// anything is persisted.
type Note struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Document map[string]any `json:"document"`
	UserID   string         `json:"userId"`
	FolderID string         `json:"folderId,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Timestamps
}

// DefaultNoteTitle is used when a note is created without a title.
const DefaultNoteTitle = "Untitled note"

// BlankDocument returns the rich-text tree for an empty note: a single
// paragraph block with no text. New accounts are seeded with one of these.
func BlankDocument() map[string]any {
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
								map[string]any{"text": ""},
							},
						},
					},
				},
			},
		},
	}
}
