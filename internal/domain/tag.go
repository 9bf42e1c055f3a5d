package domain

// Tag labels notes for one user. Name is unique per user.
// Notes hold tag ids in their Tags slice; deleting a tag pulls its id out
// of every note that carries it.
type Tag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Timestamps
}
