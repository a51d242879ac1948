package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type replyItem struct {
	ID        int    `dynamodbav:"id"`
	Author    string `dynamodbav:"author"`
	Role      string `dynamodbav:"role"`
	Text      string `dynamodbav:"text"`
	Timestamp string `dynamodbav:"timestamp"`
}

type commentItem struct {
	ID        int         `dynamodbav:"id"`
	Author    string      `dynamodbav:"author"`
	Role      string      `dynamodbav:"role"`
	Text      string      `dynamodbav:"text"`
	Timestamp string      `dynamodbav:"timestamp"`
	Replies   []replyItem `dynamodbav:"replies"`
}

type historyItem struct {
	Status    string `dynamodbav:"status"`
	ChangedBy string `dynamodbav:"changed_by"`
	ChangedAt string `dynamodbav:"changed_at"`
	Reason    string `dynamodbav:"reason,omitempty"`
}

type lineItemItem struct {
	Sr     int     `dynamodbav:"sr"`
	Item   string  `dynamodbav:"item"`
	SKU    string  `dynamodbav:"sku"`
	Qty    float64 `dynamodbav:"qty"`
	Unit   string  `dynamodbav:"unit"`
	Rate   float64 `dynamodbav:"rate"`
	Amount float64 `dynamodbav:"amount"`
}

type quotationItem struct {
	ID              string         `dynamodbav:"id"`
	Client          string         `dynamodbav:"client"`
	Amount          string         `dynamodbav:"amount"`
	Status          string         `dynamodbav:"status"`
	LastUpdated     string         `dynamodbav:"last_updated"`
	Description     string         `dynamodbav:"description,omitempty"`
	LineItems       []lineItemItem `dynamodbav:"line_items,omitempty"`
	Subtotal        string         `dynamodbav:"subtotal,omitempty"`
	GST             string         `dynamodbav:"gst,omitempty"`
	Freight         string         `dynamodbav:"freight,omitempty"`
	RejectionReason string         `dynamodbav:"rejection_reason,omitempty"`
	StatusHistory   []historyItem  `dynamodbav:"status_history"`
	Comments        []commentItem  `dynamodbav:"comments"`
}

// QuotationDynamoRepository persists the quotation aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (comments, replies, status history) lives in one item;
// appends are read-modify-write guarded by a condition on last_updated, which
// also backs the comment/reply id allocation.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) List(ctx context.Context, filter interfaces.ListFilter, page, pageSize int) (interfaces.Page, error) {
	// Quotation tables stay small (hundreds of rows); a full Scan with
	// in-process filtering keeps search semantics identical to the memory
	// adapter without a GSI per filter combination.
	var items []quotationItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return interfaces.Page{}, err
		}
		var pageItems []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &pageItems); err != nil {
			return interfaces.Page{}, err
		}
		items = append(items, pageItems...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	search := strings.ToLower(filter.Search)
	matched := make([]entities.Quotation, 0, len(items))
	for _, it := range items {
		q := fromQuotationItem(it)
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Client), search) &&
			!strings.Contains(strings.ToLower(q.ID), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(q.Status) != filter.Status {
			continue
		}
		matched = append(matched, q)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return interfaces.Page{
		Items:      matched[start:end],
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	it, err := r.getItem(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if it.ID == "" {
		return entities.Quotation{}, nil
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, id string, patch interfaces.QuotationPatch, actor *entities.Actor) (entities.Quotation, error) {
	// Read the stored status first: a patch carrying the status the record
	// already has must not write the attribute or grow the history, same as
	// the in-memory adapter.
	current, err := r.getItem(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.ID == "" {
		return entities.Quotation{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names, err := buildUpdatePatch(patch, actor, current.Status, now)
	if err != nil {
		return entities.Quotation{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// buildUpdatePatch assembles the UpdateItem expression for a partial update.
// A status equal to currentStatus contributes nothing: no #status write, no
// history entry.
func buildUpdatePatch(patch interfaces.QuotationPatch, actor *entities.Actor, currentStatus, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	expr := "SET #last_updated = :last_updated"
	values := map[string]types.AttributeValue{
		":last_updated": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#last_updated": "last_updated",
		"#id":           "id",
	}

	if patch.Status != nil && string(*patch.Status) != currentStatus {
		entry := historyItem{
			Status:    string(*patch.Status),
			ChangedBy: unknownActorName,
			ChangedAt: now,
		}
		if actor != nil && actor.Name != "" {
			entry.ChangedBy = actor.Name
		}
		if patch.Reason != nil {
			entry.Reason = *patch.Reason
		}
		entryAV, err := attributevalue.Marshal(entry)
		if err != nil {
			return "", nil, nil, err
		}

		expr += ", #status = :status, #status_history = list_append(if_not_exists(#status_history, :empty_history), :entry)"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
		values[":entry"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}}
		values[":empty_history"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
		names["#status"] = "status"
		names["#status_history"] = "status_history"
	}
	if patch.Client != nil {
		expr += ", #client = :client"
		values[":client"] = &types.AttributeValueMemberS{Value: *patch.Client}
		names["#client"] = "client"
	}
	if patch.Amount != nil {
		expr += ", #amount = :amount"
		values[":amount"] = &types.AttributeValueMemberS{Value: floatToString(*patch.Amount)}
		names["#amount"] = "amount"
	}
	if patch.Description != nil {
		expr += ", #description = :description"
		values[":description"] = &types.AttributeValueMemberS{Value: *patch.Description}
		names["#description"] = "description"
	}
	if patch.RejectionReason != nil {
		expr += ", #rejection_reason = :rejection_reason"
		values[":rejection_reason"] = &types.AttributeValueMemberS{Value: *patch.RejectionReason}
		names["#rejection_reason"] = "rejection_reason"
	}

	return expr, values, names, nil
}

func (r *QuotationDynamoRepository) AddComment(ctx context.Context, quotationID string, author string, role entities.Role, text string) (entities.Comment, error) {
	it, err := r.getItem(ctx, quotationID)
	if err != nil {
		return entities.Comment{}, err
	}
	if it.ID == "" {
		return entities.Comment{}, nil
	}

	now := time.Now().UTC()
	nextID := 1
	for _, c := range it.Comments {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	comment := commentItem{
		ID:        nextID,
		Author:    author,
		Role:      string(role),
		Text:      text,
		Timestamp: now.Format(time.RFC3339Nano),
		Replies:   []replyItem{},
	}

	if err := r.writeComments(ctx, it, append(it.Comments, comment), now); err != nil {
		return entities.Comment{}, err
	}
	return fromCommentItem(comment), nil
}

func (r *QuotationDynamoRepository) AddReply(ctx context.Context, quotationID string, commentID int, author string, role entities.Role, text string) (entities.Reply, error) {
	it, err := r.getItem(ctx, quotationID)
	if err != nil {
		return entities.Reply{}, err
	}
	if it.ID == "" {
		return entities.Reply{}, nil
	}

	idx := -1
	for i := range it.Comments {
		if it.Comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entities.Reply{}, nil
	}

	now := time.Now().UTC()
	nextID := 1
	for _, rp := range it.Comments[idx].Replies {
		if rp.ID >= nextID {
			nextID = rp.ID + 1
		}
	}
	reply := replyItem{
		ID:        nextID,
		Author:    author,
		Role:      string(role),
		Text:      text,
		Timestamp: now.Format(time.RFC3339Nano),
	}

	comments := make([]commentItem, len(it.Comments))
	copy(comments, it.Comments)
	comments[idx].Replies = append(comments[idx].Replies, reply)

	if err := r.writeComments(ctx, it, comments, now); err != nil {
		return entities.Reply{}, err
	}
	return fromReplyItem(reply), nil
}

// writeComments persists the new comment list guarded by the last_updated
// value read alongside it. At-most-one-writer-per-id is the design
// assumption; a concurrent writer trips the condition and surfaces as a
// transient failure the caller may retry.
func (r *QuotationDynamoRepository) writeComments(ctx context.Context, it quotationItem, comments []commentItem, now time.Time) error {
	commentsAV, err := attributevalue.Marshal(comments)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: it.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #last_updated = :expected"),
		UpdateExpression:    aws.String("SET #comments = :comments, #last_updated = :last_updated"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":comments":     commentsAV,
			":expected":     &types.AttributeValueMemberS{Value: it.LastUpdated},
			":last_updated": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#comments":     "comments",
			"#last_updated": "last_updated",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrTransientFailure
		}
		return err
	}
	return nil
}

func (r *QuotationDynamoRepository) getItem(ctx context.Context, id string) (quotationItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return quotationItem{}, err
	}
	if len(out.Item) == 0 {
		return quotationItem{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return quotationItem{}, err
	}
	return it, nil
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	lastUpdated, _ := time.Parse(time.RFC3339Nano, it.LastUpdated)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	gst, _ := strconv.ParseFloat(it.GST, 64)
	freight, _ := strconv.ParseFloat(it.Freight, 64)

	q := entities.Quotation{
		ID:              it.ID,
		Client:          it.Client,
		Amount:          amount,
		Status:          entities.QuotationStatus(it.Status),
		LastUpdated:     lastUpdated,
		Description:     it.Description,
		Subtotal:        subtotal,
		GST:             gst,
		Freight:         freight,
		RejectionReason: it.RejectionReason,
		Comments:        make([]entities.Comment, 0, len(it.Comments)),
	}
	for _, li := range it.LineItems {
		q.LineItems = append(q.LineItems, entities.LineItem(li))
	}
	for _, h := range it.StatusHistory {
		changedAt, _ := time.Parse(time.RFC3339Nano, h.ChangedAt)
		q.StatusHistory = append(q.StatusHistory, entities.StatusHistoryEntry{
			Status:    entities.QuotationStatus(h.Status),
			ChangedBy: h.ChangedBy,
			ChangedAt: changedAt,
			Reason:    h.Reason,
		})
	}
	for _, c := range it.Comments {
		q.Comments = append(q.Comments, fromCommentItem(c))
	}
	return q
}

func fromCommentItem(it commentItem) entities.Comment {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	c := entities.Comment{
		ID:        it.ID,
		Author:    it.Author,
		Role:      entities.Role(it.Role),
		Text:      it.Text,
		Timestamp: ts,
		Replies:   make([]entities.Reply, 0, len(it.Replies)),
	}
	for _, rp := range it.Replies {
		c.Replies = append(c.Replies, fromReplyItem(rp))
	}
	return c
}

func fromReplyItem(it replyItem) entities.Reply {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.Reply{
		ID:        it.ID,
		Author:    it.Author,
		Role:      entities.Role(it.Role),
		Text:      it.Text,
		Timestamp: ts,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
