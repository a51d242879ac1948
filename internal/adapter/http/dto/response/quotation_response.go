package response

import (
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/domain/permissions"
	"pactle_quotations/internal/usecase"
)

type ReplyResponse struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type CommentResponse struct {
	ID        int             `json:"id"`
	Author    string          `json:"author"`
	Role      string          `json:"role"`
	Text      string          `json:"text"`
	Timestamp time.Time       `json:"timestamp"`
	Replies   []ReplyResponse `json:"replies"`
}

type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Reason    string    `json:"reason,omitempty"`
}

type LineItemResponse struct {
	Sr     int     `json:"sr"`
	Item   string  `json:"item"`
	SKU    string  `json:"sku"`
	Qty    float64 `json:"qty"`
	Unit   string  `json:"unit"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type QuotationResponse struct {
	ID              string                       `json:"id"`
	Client          string                       `json:"client"`
	Amount          float64                      `json:"amount"`
	Status          string                       `json:"status"`
	LastUpdated     time.Time                    `json:"last_updated"`
	Description     string                       `json:"description,omitempty"`
	LineItems       []LineItemResponse           `json:"lineItems,omitempty"`
	Subtotal        float64                      `json:"subtotal,omitempty"`
	GST             float64                      `json:"gst,omitempty"`
	Freight         float64                      `json:"freight,omitempty"`
	RejectionReason string                       `json:"rejectionReason,omitempty"`
	StatusHistory   []StatusHistoryEntryResponse `json:"statusHistory,omitempty"`
	Comments        []CommentResponse            `json:"comments"`
}

type ListQuotationsResponse struct {
	Data         []QuotationResponse `json:"data"`
	TotalItems   int                 `json:"totalItems"`
	TotalPages   int                 `json:"totalPages"`
	CurrentPage  int                 `json:"currentPage"`
	ItemsPerPage int                 `json:"itemsPerPage"`
}

func FromReply(r entities.Reply) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		Author:    r.Author,
		Role:      string(r.Role),
		Text:      r.Text,
		Timestamp: r.Timestamp,
	}
}

// FromComment renders the comment with only the replies the viewer may see.
// An empty viewerRole skips the filter (trusted internal callers).
func FromComment(c entities.Comment, viewerRole entities.Role) CommentResponse {
	replies := c.Replies
	if viewerRole != "" {
		replies = usecase.VisibleReplies(c, viewerRole)
	}
	out := CommentResponse{
		ID:        c.ID,
		Author:    c.Author,
		Role:      string(c.Role),
		Text:      c.Text,
		Timestamp: c.Timestamp,
		Replies:   make([]ReplyResponse, 0, len(replies)),
	}
	for _, r := range replies {
		out.Replies = append(out.Replies, FromReply(r))
	}
	return out
}

func FromQuotation(q entities.Quotation, viewerRole entities.Role) QuotationResponse {
	out := QuotationResponse{
		ID:              q.ID,
		Client:          q.Client,
		Amount:          q.Amount,
		Status:          string(q.Status),
		LastUpdated:     q.LastUpdated,
		Description:     q.Description,
		Subtotal:        q.Subtotal,
		GST:             q.GST,
		Freight:         q.Freight,
		RejectionReason: q.RejectionReason,
		Comments:        make([]CommentResponse, 0, len(q.Comments)),
	}
	for _, li := range q.LineItems {
		out.LineItems = append(out.LineItems, LineItemResponse(li))
	}
	for _, h := range q.StatusHistory {
		out.StatusHistory = append(out.StatusHistory, StatusHistoryEntryResponse{
			Status:    string(h.Status),
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
			Reason:    h.Reason,
		})
	}
	for _, c := range q.Comments {
		out.Comments = append(out.Comments, FromComment(c, viewerRole))
	}
	return out
}

func FromQuotationPage(p usecase.QuotationPage, viewerRole entities.Role) ListQuotationsResponse {
	out := ListQuotationsResponse{
		Data:         make([]QuotationResponse, 0, len(p.Items)),
		TotalItems:   p.TotalItems,
		TotalPages:   p.TotalPages,
		CurrentPage:  p.CurrentPage,
		ItemsPerPage: p.ItemsPerPage,
	}
	for _, q := range p.Items {
		out.Data = append(out.Data, FromQuotation(q, viewerRole))
	}
	return out
}

// ActionsResponse echoes the capability set for the viewer against the
// quotation's current status, so clients can drive their action buttons off
// the same policy the workflow enforces.
type ActionsResponse struct {
	permissions.Actions
}

func FromActions(a permissions.Actions) ActionsResponse {
	return ActionsResponse{Actions: a}
}
