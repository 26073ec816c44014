package model

import "time"

// Post is a blog article published by the store.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Images    []string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
