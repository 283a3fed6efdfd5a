package entity

// SlugMaxLength is the maximum length of a note slug. Slugs derived from
// titles are truncated to this length before the uniqueness check.
const SlugMaxLength = 100

// Note is a personal note owned by exactly one user. Slug is unique across
// all notes and is part of the note's URL.
type Note struct {
	ID       int64
	Title    string
	Text     string
	Slug     string
	AuthorID int64
}
