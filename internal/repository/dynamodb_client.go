package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"landing-site/internal/domain"
)

const (
	pkPrefixSubmission = "SUBMISSION#"
	skPrefixReceived   = "RECEIVED#"
	ttlDuration        = 30 * 24 * time.Hour // 30-day TTL
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Client wraps a DynamoDB table used as a write-only submission log.
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func submissionPK(id string) string {
	return pkPrefixSubmission + id
}

func receivedSK(ts time.Time) string {
	return skPrefixReceived + ts.UTC().Format(time.RFC3339Nano)
}

// SaveSubmission writes one accepted submission. The conditional put makes a
// replayed id fail instead of overwriting the earlier entry.
func (c *Client) SaveSubmission(ctx context.Context, rec domain.SubmissionRecord) error {
	if rec.ID == "" {
		return errors.New("repository: SaveSubmission: id is required")
	}
	if rec.ReceivedAt.IsZero() {
		return errors.New("repository: SaveSubmission: received time is required")
	}

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                submissionItem(rec, rec.ReceivedAt.Add(ttlDuration).Unix()),
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return fmt.Errorf("repository: SaveSubmission: %w", err)
	}
	return nil
}

func submissionItem(rec domain.SubmissionRecord, ttl int64) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"PK":         &types.AttributeValueMemberS{Value: submissionPK(rec.ID)},
		"SK":         &types.AttributeValueMemberS{Value: receivedSK(rec.ReceivedAt)},
		"id":         &types.AttributeValueMemberS{Value: rec.ID},
		"email":      &types.AttributeValueMemberS{Value: rec.Email},
		"message":    &types.AttributeValueMemberS{Value: rec.Message},
		"receivedAt": &types.AttributeValueMemberS{Value: rec.ReceivedAt.UTC().Format(time.RFC3339)},
		"flagged":    &types.AttributeValueMemberBOOL{Value: rec.Flagged},
		"ttl":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttl)},
	}
	if rec.CorrelationID != "" {
		item["correlationId"] = &types.AttributeValueMemberS{Value: rec.CorrelationID}
	}
	return item
}
