package domain

// Folder groups notes for one user. Name is unique per user.
//
// Parent is an optional reference to another folder owned by the same
// user; it may never point at the folder itself. Notes reference folders
// weakly: deleting a folder clears the back-reference on its notes, it
// does not delete them.
type Folder struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Parent string `json:"parent,omitempty"`
	Timestamps
}
