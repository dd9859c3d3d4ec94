package models

import "time"

// NewsPost is the projection of a CMS article served through the news feed.
// The CMS content model itself lives outside this codebase.
type NewsPost struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	AuthorRole  string    `json:"authorRole"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
