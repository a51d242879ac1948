package entities

import "time"

// Comment is a discussion entry on a quotation. Comments are immutable once
// created; there is no edit or delete.
//
// IDs are integers allocated by the repository, strictly increasing per
// quotation in creation order.
type Comment struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Replies   []Reply   `json:"replies,omitempty"`
}

// Reply is a threaded answer under a comment. Reply IDs are strictly
// increasing within their comment.
//
// All replies are always persisted; who gets to see one is a read-time
// decision made by the permission policy per viewer role.
type Reply struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
