package model

// Article carries the source metadata of the news item an editorial was
// generated from, plus the generation outputs attached to it.
type Article struct {
	UUID        string `json:"uuid,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	ImageURL    string `json:"image_url"`
	AuthorAlias string `json:"authorAlias"`
	GeneratedAt string `json:"generated_at"`
}

// Navigation holds neighbor cache keys. It is transient: populated on
// every read, never part of the stored artifact content.
type Navigation struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Random   *string `json:"random"`
}

// Editorial pairs a source article with its generated HTML text. The
// first element of a stored artifact additionally carries Navigation.
type Editorial struct {
	Article    Article     `json:"article"`
	Editorial  string      `json:"editorial"`
	Navigation *Navigation `json:"navigation,omitempty"`
}

// Artifact is the JSON document stored at one cache key: an ordered
// sequence of one or more editorials.
type Artifact []Editorial
