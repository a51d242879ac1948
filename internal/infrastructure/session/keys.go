package session

import "time"

const (
	// Auth session: pactle:auth_token:{token} -> User JSON
	keyAuthToken = "pactle:auth_token:%s"

	// User account: pactle:user:{email} -> StoredUser JSON
	keyUser = "pactle:user:%s"

	// Comment draft: pactle:draft:{quotation_id} -> CommentDraft JSON
	keyCommentDraft = "pactle:draft:%s"
)

var (
	// TTLDraft bounds how long an abandoned draft lingers. Sessions carry
	// their own TTL from the auth usecase; user records never expire.
	TTLDraft = 7 * 24 * time.Hour
)
