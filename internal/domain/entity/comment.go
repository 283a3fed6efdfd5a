package entity

import "time"

// Comment is a user comment on a news item. NewsID and AuthorID are fixed
// at creation; only Text may change afterwards. Comments on one item are
// listed in ascending Created order.
type Comment struct {
	ID       int64
	NewsID   int64
	AuthorID int64
	Text     string
	Created  time.Time
}
