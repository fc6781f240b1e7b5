package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName    = "claims"
	defaultDocumentsTableName = "claim_documents"
)

type claimItem struct {
	TransactionID    string              `dynamodbav:"transaction_id"`
	ClaimID          string              `dynamodbav:"claim_id"`
	CustomerName     string              `dynamodbav:"customer_name"`
	PolicyNumber     string              `dynamodbav:"policy_number"`
	Amount           float64             `dynamodbav:"amount"`
	ClaimType        string              `dynamodbav:"claim_type"`
	ExtractedText    string              `dynamodbav:"extracted_text,omitempty"`
	Status           string              `dynamodbav:"status"`
	ClaimRegistered  bool                `dynamodbav:"claim_registered"`
	RegisteredAt     string              `dynamodbav:"registered_at,omitempty"`
	ClaimValidated   bool                `dynamodbav:"claim_validated"`
	Validation       validationItem      `dynamodbav:"validation"`
	FraudChecked     bool                `dynamodbav:"fraud_checked"`
	FraudScore       *float64            `dynamodbav:"fraud_score,omitempty"`
	FraudDecision    string              `dynamodbav:"fraud_decision,omitempty"`
	AssignmentDone   bool                `dynamodbav:"assignment_done"`
	Assignment       assignmentItem      `dynamodbav:"assignment"`
	DecisionMade     bool                `dynamodbav:"decision_made"`
	Approved         bool                `dynamodbav:"approved"`
	PaymentProcessed bool                `dynamodbav:"payment_processed"`
	ClaimClosed      bool                `dynamodbav:"claim_closed"`
	FinalDecision    string              `dynamodbav:"final_decision,omitempty"`
	ManagerComment   string              `dynamodbav:"manager_comment,omitempty"`
	UpdatedAt        string              `dynamodbav:"updated_at,omitempty"`
	Logs             []string            `dynamodbav:"logs,omitempty"`
}

type validationItem struct {
	RequiredMissing []string `dynamodbav:"required_missing,omitempty"`
	Warnings        []string `dynamodbav:"warnings,omitempty"`
	Errors          []string `dynamodbav:"errors,omitempty"`
	DocsOK          bool     `dynamodbav:"docs_ok"`
}

type assignmentItem struct {
	InvestigatorID string `dynamodbav:"investigator_id,omitempty"`
	SLADays        int    `dynamodbav:"sla_days,omitempty"`
	Reason         string `dynamodbav:"reason,omitempty"`
	AssignedAt     string `dynamodbav:"assigned_at,omitempty"`
}

type claimDocumentItem struct {
	TransactionID string `dynamodbav:"transaction_id"`
	Seq           int    `dynamodbav:"seq"`
	Filename      string `dynamodbav:"filename"`
	ContentType   string `dynamodbav:"content_type"`
	SizeBytes     int64  `dynamodbav:"size_bytes"`
	DocType       string `dynamodbav:"doc_type,omitempty"`
	ExtractedText string `dynamodbav:"extracted_text,omitempty"`
}

// ClaimDynamoRepository persists ClaimAggregate entities in DynamoDB.
//
// Table requirements:
//   - claims: PK transaction_id (string)
//   - claim_documents: PK transaction_id (string), SK seq (number)
//
// Documents live in their own table so registration can re-run without
// rewriting large items, and so the aggregate item stays well under the
// DynamoDB item size limit even for text-heavy claims.

type ClaimDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	documentsTable string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
		documentsTable: getenvDefault("CLAIM_DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *ClaimDynamoRepository) UpsertRegistration(ctx context.Context, claim entities.ClaimAggregate) error {
	it := toClaimItem(claim)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ClaimDynamoRepository) InsertDocuments(ctx context.Context, transactionID string, docs []entities.DocumentRecord) error {
	for i, d := range docs {
		av, err := attributevalue.MarshalMap(claimDocumentItem{
			TransactionID: transactionID,
			Seq:           i,
			Filename:      d.Filename,
			ContentType:   d.ContentType,
			SizeBytes:     d.SizeBytes,
			DocType:       d.DocType,
			ExtractedText: d.ExtractedText,
		})
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.documentsTable),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *ClaimDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.ClaimAggregate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClaimAggregate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClaimAggregate{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClaimAggregate{}, err
	}
	claim := fromClaimItem(it)

	docs, err := r.listDocuments(ctx, transactionID)
	if err != nil {
		return entities.ClaimAggregate{}, err
	}
	claim.Documents = docs
	return claim, nil
}

func (r *ClaimDynamoRepository) listDocuments(ctx context.Context, transactionID string) ([]entities.DocumentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.documentsTable),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]claimDocumentItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it claimDocumentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })

	docs := make([]entities.DocumentRecord, 0, len(items))
	for _, it := range items {
		docs = append(docs, entities.DocumentRecord{
			Filename:      it.Filename,
			ContentType:   it.ContentType,
			SizeBytes:     it.SizeBytes,
			DocType:       it.DocType,
			ExtractedText: it.ExtractedText,
		})
	}
	return docs, nil
}

// UpdateFields applies a partial update to the claim item. Keys are attribute
// names; the special key "logs" appends the given entries to the audit trail
// instead of overwriting it.
func (r *ClaimDynamoRepository) UpdateFields(ctx context.Context, transactionID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	setParts := make([]string, 0, len(fields))
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#transaction_id": "transaction_id"}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		names[name] = k

		av, err := marshalFieldValue(fields[k])
		if err != nil {
			return err
		}
		values[value] = av

		if k == "logs" {
			values[":empty_logs"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
			setParts = append(setParts, fmt.Sprintf("%s = list_append(if_not_exists(%s, :empty_logs), %s)", name, name, value))
			continue
		}
		setParts = append(setParts, fmt.Sprintf("%s = %s", name, value))
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConditionExpression:       aws.String("attribute_exists(#transaction_id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(setParts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

// marshalFieldValue converts a domain value into a DynamoDB attribute,
// translating nested domain structs through their item representations so the
// stored shape stays consistent with UpsertRegistration.
func marshalFieldValue(v any) (types.AttributeValue, error) {
	switch t := v.(type) {
	case entities.ValidationResult:
		return attributevalue.Marshal(toValidationItem(t))
	case entities.Assignment:
		return attributevalue.Marshal(toAssignmentItem(t))
	case entities.FinalDecision:
		return attributevalue.Marshal(string(t))
	case entities.ClaimStatus:
		return attributevalue.Marshal(string(t))
	case entities.FraudDecision:
		return attributevalue.Marshal(string(t))
	case time.Time:
		return attributevalue.Marshal(t.UTC().Format(time.RFC3339Nano))
	default:
		return attributevalue.Marshal(v)
	}
}

func toClaimItem(c entities.ClaimAggregate) claimItem {
	it := claimItem{
		TransactionID:    c.TransactionID,
		ClaimID:          c.ClaimID,
		CustomerName:     c.CustomerName,
		PolicyNumber:     c.PolicyNumber,
		Amount:           c.Amount,
		ClaimType:        c.ClaimType,
		ExtractedText:    c.ExtractedText,
		Status:           string(c.Status),
		ClaimRegistered:  c.ClaimRegistered,
		ClaimValidated:   c.ClaimValidated,
		Validation:       toValidationItem(c.Validation),
		FraudChecked:     c.FraudChecked,
		FraudScore:       c.FraudScore,
		FraudDecision:    string(c.FraudDecision),
		AssignmentDone:   c.AssignmentDone,
		Assignment:       toAssignmentItem(c.Assignment),
		DecisionMade:     c.DecisionMade,
		Approved:         c.Approved,
		PaymentProcessed: c.PaymentProcessed,
		ClaimClosed:      c.ClaimClosed,
		FinalDecision:    string(c.FinalDecision),
		ManagerComment:   c.ManagerComment,
		Logs:             c.Logs,
	}
	if !c.RegisteredAt.IsZero() {
		it.RegisteredAt = c.RegisteredAt.UTC().Format(time.RFC3339Nano)
	}
	if !c.UpdatedAt.IsZero() {
		it.UpdatedAt = c.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromClaimItem(it claimItem) entities.ClaimAggregate {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ClaimAggregate{
		TransactionID:    it.TransactionID,
		ClaimID:          it.ClaimID,
		CustomerName:     it.CustomerName,
		PolicyNumber:     it.PolicyNumber,
		Amount:           it.Amount,
		ClaimType:        it.ClaimType,
		ExtractedText:    it.ExtractedText,
		Status:           entities.ClaimStatus(it.Status),
		ClaimRegistered:  it.ClaimRegistered,
		RegisteredAt:     registeredAt,
		ClaimValidated:   it.ClaimValidated,
		Validation:       fromValidationItem(it.Validation),
		FraudChecked:     it.FraudChecked,
		FraudScore:       it.FraudScore,
		FraudDecision:    entities.FraudDecision(it.FraudDecision),
		AssignmentDone:   it.AssignmentDone,
		Assignment:       fromAssignmentItem(it.Assignment),
		DecisionMade:     it.DecisionMade,
		Approved:         it.Approved,
		PaymentProcessed: it.PaymentProcessed,
		ClaimClosed:      it.ClaimClosed,
		FinalDecision:    entities.FinalDecision(it.FinalDecision),
		ManagerComment:   it.ManagerComment,
		UpdatedAt:        updatedAt,
		Logs:             it.Logs,
	}
}

func toValidationItem(v entities.ValidationResult) validationItem {
	return validationItem{
		RequiredMissing: v.RequiredMissing,
		Warnings:        v.Warnings,
		Errors:          v.Errors,
		DocsOK:          v.DocsOK,
	}
}

func fromValidationItem(it validationItem) entities.ValidationResult {
	return entities.ValidationResult{
		RequiredMissing: it.RequiredMissing,
		Warnings:        it.Warnings,
		Errors:          it.Errors,
		DocsOK:          it.DocsOK,
	}
}

func toAssignmentItem(a entities.Assignment) assignmentItem {
	it := assignmentItem{
		InvestigatorID: a.InvestigatorID,
		SLADays:        a.SLADays,
		Reason:         a.Reason,
	}
	if !a.AssignedAt.IsZero() {
		it.AssignedAt = a.AssignedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAssignmentItem(it assignmentItem) entities.Assignment {
	assignedAt, _ := time.Parse(time.RFC3339Nano, it.AssignedAt)
	return entities.Assignment{
		InvestigatorID: it.InvestigatorID,
		SLADays:        it.SLADays,
		Reason:         it.Reason,
		AssignedAt:     assignedAt,
	}
}
