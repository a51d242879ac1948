package request

import (
	"strings"

	"pactle_quotations/internal/domain/entities"
)

// CommentRequest is the payload for posting a comment or a reply.
type CommentRequest struct {
	Author string `json:"author" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (r CommentRequest) ToActor() entities.Actor {
	return entities.Actor{
		Name: strings.TrimSpace(r.Author),
		Role: entities.Role(strings.TrimSpace(r.Role)),
	}
}

// DraftRequest is the best-effort draft body saved while the author types.
type DraftRequest struct {
	Comment string         `json:"comment"`
	Replies map[int]string `json:"replies"`
}
