package repository

import (
	"context"
	"errors"
	"sort"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvestigatorsTableName = "investigators"

// reserveAttempts bounds the scan+reserve retry loop under contention.
const reserveAttempts = 3

type investigatorItem struct {
	InvestigatorID string `dynamodbav:"investigator_id"`
	Name           string `dynamodbav:"name"`
	Specialization string `dynamodbav:"specialization"`
	ActiveCases    int    `dynamodbav:"active_cases"`
	MaxCases       int    `dynamodbav:"max_cases"`
	Status         string `dynamodbav:"status"`
}

// InvestigatorDynamoRepository persists InvestigatorRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: investigator_id (string)
//
// Reservation is a compare-and-swap: the load increment carries a
// ConditionExpression re-checking capacity and status, so a candidate read
// from a stale scan can never be pushed past max_cases. On a lost race
// (ConditionalCheckFailedException) the next candidate is tried, and the whole
// scan is repeated a bounded number of times.

type InvestigatorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvestigatorPool = (*InvestigatorDynamoRepository)(nil)

func NewInvestigatorDynamoRepository(ddb *dynamodb.Client) *InvestigatorDynamoRepository {
	return &InvestigatorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVESTIGATORS_TABLE", defaultInvestigatorsTableName),
	}
}

func (r *InvestigatorDynamoRepository) SelectAndReserve(ctx context.Context, specialization string) (entities.InvestigatorRecord, error) {
	for attempt := 0; attempt < reserveAttempts; attempt++ {
		candidates, err := r.listEligible(ctx, specialization)
		if err != nil {
			return entities.InvestigatorRecord{}, err
		}
		if len(candidates) == 0 {
			return entities.InvestigatorRecord{}, nil
		}

		for _, c := range candidates {
			reserved, ok, err := r.tryReserve(ctx, c.InvestigatorID)
			if err != nil {
				return entities.InvestigatorRecord{}, err
			}
			if ok {
				return reserved, nil
			}
			// Lost the race for this candidate; try the next one.
		}
	}
	return entities.InvestigatorRecord{}, nil
}

// listEligible returns active under-capacity investigators for the category,
// least-loaded first, ties broken by id for determinism.
func (r *InvestigatorDynamoRepository) listEligible(ctx context.Context, specialization string) ([]investigatorItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("specialization = :spec AND #status = :active AND active_cases < max_cases"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":spec":   &types.AttributeValueMemberS{Value: specialization},
			":active": &types.AttributeValueMemberS{Value: string(entities.InvestigatorStatusActive)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]investigatorItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it investigatorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		// Scan reads are eventually consistent; re-check client side. The
		// conditional update in tryReserve is still the real gate.
		if !fromInvestigatorItem(it).HasCapacity() {
			continue
		}
		items = append(items, it)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ActiveCases != items[j].ActiveCases {
			return items[i].ActiveCases < items[j].ActiveCases
		}
		return items[i].InvestigatorID < items[j].InvestigatorID
	})
	return items, nil
}

// tryReserve increments the investigator's load iff it still has capacity and
// is still active. ok=false means the conditional check lost a race.
func (r *InvestigatorDynamoRepository) tryReserve(ctx context.Context, investigatorID string) (entities.InvestigatorRecord, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"investigator_id": &types.AttributeValueMemberS{Value: investigatorID},
		},
		UpdateExpression:    aws.String("SET active_cases = active_cases + :one"),
		ConditionExpression: aws.String("active_cases < max_cases AND #status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":active": &types.AttributeValueMemberS{Value: string(entities.InvestigatorStatusActive)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InvestigatorRecord{}, false, nil
		}
		return entities.InvestigatorRecord{}, false, err
	}

	var it investigatorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InvestigatorRecord{}, false, err
	}
	return fromInvestigatorItem(it), true, nil
}

// Release decrements the investigator's load, floor-clamped at zero. A failed
// condition means the load is already zero and is treated as a no-op.
func (r *InvestigatorDynamoRepository) Release(ctx context.Context, investigatorID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"investigator_id": &types.AttributeValueMemberS{Value: investigatorID},
		},
		UpdateExpression:    aws.String("SET active_cases = active_cases - :one"),
		ConditionExpression: aws.String("attribute_exists(investigator_id) AND active_cases > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// Seed writes the default roster, skipping investigators that already exist so
// accumulated load survives restarts.
func (r *InvestigatorDynamoRepository) Seed(ctx context.Context, roster []entities.InvestigatorRecord) error {
	for _, rec := range roster {
		av, err := attributevalue.MarshalMap(toInvestigatorItem(rec))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(investigator_id)"),
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

// DefaultRoster is the seed data used by local/dev bootstrapping.
func DefaultRoster() []entities.InvestigatorRecord {
	active := entities.InvestigatorStatusActive
	return []entities.InvestigatorRecord{
		{InvestigatorID: "INV001", Name: "Ravi Kumar", Specialization: "motor", ActiveCases: 1, MaxCases: 5, Status: active},
		{InvestigatorID: "INV002", Name: "Sneha Reddy", Specialization: "health", ActiveCases: 2, MaxCases: 5, Status: active},
		{InvestigatorID: "INV003", Name: "Arjun Mehta", Specialization: "motor", ActiveCases: 0, MaxCases: 3, Status: active},
		{InvestigatorID: "INV004", Name: "Priya Sharma", Specialization: "health", ActiveCases: 3, MaxCases: 4, Status: active},
		{InvestigatorID: "INV005", Name: "Suresh Iyer", Specialization: "fraud", ActiveCases: 1, MaxCases: 2, Status: active},
		{InvestigatorID: "INV006", Name: "Kiran Rao", Specialization: "motor", ActiveCases: 2, MaxCases: 5, Status: active},
		{InvestigatorID: "INV007", Name: "Meena Das", Specialization: "health", ActiveCases: 0, MaxCases: 5, Status: active},
		{InvestigatorID: "INV008", Name: "Rahul Verma", Specialization: "fraud", ActiveCases: 0, MaxCases: 3, Status: active},
		{InvestigatorID: "INV009", Name: "Anita Singh", Specialization: "motor", ActiveCases: 4, MaxCases: 5, Status: active},
		{InvestigatorID: "INV010", Name: "Vikram Patel", Specialization: "health", ActiveCases: 1, MaxCases: 4, Status: entities.InvestigatorStatusInactive},
	}
}

func toInvestigatorItem(r entities.InvestigatorRecord) investigatorItem {
	return investigatorItem{
		InvestigatorID: r.InvestigatorID,
		Name:           r.Name,
		Specialization: r.Specialization,
		ActiveCases:    r.ActiveCases,
		MaxCases:       r.MaxCases,
		Status:         string(r.Status),
	}
}

func fromInvestigatorItem(it investigatorItem) entities.InvestigatorRecord {
	return entities.InvestigatorRecord{
		InvestigatorID: it.InvestigatorID,
		Name:           it.Name,
		Specialization: it.Specialization,
		ActiveCases:    it.ActiveCases,
		MaxCases:       it.MaxCases,
		Status:         entities.InvestigatorStatus(it.Status),
	}
}
