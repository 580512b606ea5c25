package document

import "time"

// Document is one markdown note as stored by a repository.
type Document struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
