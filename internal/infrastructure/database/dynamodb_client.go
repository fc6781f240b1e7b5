package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureLocalTables creates the claims-service tables against a local
// DynamoDB endpoint. It is a no-op unless DYNAMODB_ENDPOINT is set; real AWS
// environments provision tables out of band.
func EnsureLocalTables(ctx context.Context, ddb *dynamodb.Client) error {
	if os.Getenv("DYNAMODB_ENDPOINT") == "" {
		return nil
	}

	tables := []struct {
		name string
		keys []types.KeySchemaElement
		defs []types.AttributeDefinition
	}{
		{
			name: getenvDefault("CLAIMS_TABLE", "claims"),
			keys: []types.KeySchemaElement{
				{AttributeName: aws.String("transaction_id"), KeyType: types.KeyTypeHash},
			},
			defs: []types.AttributeDefinition{
				{AttributeName: aws.String("transaction_id"), AttributeType: types.ScalarAttributeTypeS},
			},
		},
		{
			name: getenvDefault("CLAIM_DOCUMENTS_TABLE", "claim_documents"),
			keys: []types.KeySchemaElement{
				{AttributeName: aws.String("transaction_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("seq"), KeyType: types.KeyTypeRange},
			},
			defs: []types.AttributeDefinition{
				{AttributeName: aws.String("transaction_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("seq"), AttributeType: types.ScalarAttributeTypeN},
			},
		},
		{
			name: getenvDefault("INVESTIGATORS_TABLE", "investigators"),
			keys: []types.KeySchemaElement{
				{AttributeName: aws.String("investigator_id"), KeyType: types.KeyTypeHash},
			},
			defs: []types.AttributeDefinition{
				{AttributeName: aws.String("investigator_id"), AttributeType: types.ScalarAttributeTypeS},
			},
		},
	}

	for _, t := range tables {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:            aws.String(t.name),
			KeySchema:            t.keys,
			AttributeDefinitions: t.defs,
			BillingMode:          types.BillingModePayPerRequest,
		})
		if err != nil {
			var exists *types.ResourceInUseException
			if errors.As(err, &exists) {
				continue
			}
			return err
		}
		log.Printf("[database] created local table %s", t.name)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
