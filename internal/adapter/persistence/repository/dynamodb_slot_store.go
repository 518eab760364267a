package repository

import (
	"context"

	"salesdash/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSlotsTableName = "dashboard_slots"

type slotItem struct {
	Slot    string `dynamodbav:"slot"`
	Payload string `dynamodbav:"payload"`
}

// DynamoSlotStore persists string-keyed slots as single DynamoDB items.
//
// Table requirements:
//   - PK: slot (string)
//
// Each slot holds one opaque payload attribute, so a Set is a whole-value
// PutItem and readers never observe a partial write.

type DynamoSlotStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISlotStore = (*DynamoSlotStore)(nil)

func NewDynamoSlotStore(ddb *dynamodb.Client) *DynamoSlotStore {
	return &DynamoSlotStore{
		ddb:       ddb,
		tableName: getenvDefault("SLOTS_TABLE", defaultSlotsTableName),
	}
}

func (s *DynamoSlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Payload, true, nil
}

func (s *DynamoSlotStore) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(slotItem{Slot: key, Payload: value})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoSlotStore) Remove(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
