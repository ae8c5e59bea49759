// Package dynamo is the DynamoDB data layer of ddv.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/willibrandon/ddv/internal/logger"
	"github.com/willibrandon/ddv/internal/models"
)

// Client is the set of DynamoDB operations the viewer performs.
type Client interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	DescribeTable(ctx context.Context, name string) (models.TableDescription, error)
	ScanAllItems(ctx context.Context, table string, schema models.KeySchemaType) ([]models.Item, error)
	DeleteItem(ctx context.Context, table string, schema models.KeySchemaType, item models.Item) error
}

// API is the part of *dynamodb.Client used by DynamoClient.
type API interface {
	dynamodb.ListTablesAPIClient
	dynamodb.ScanAPIClient
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoClient implements Client on top of the AWS SDK.
type DynamoClient struct {
	api    API
	region string
}

// NewClientWithAPI wraps an existing API, typically a test double.
func NewClientWithAPI(api API, region string) *DynamoClient {
	return &DynamoClient{api: api, region: region}
}

// Region is the resolved AWS region.
func (c *DynamoClient) Region() string { return c.region }

// ListTables returns every table name, following pagination.
func (c *DynamoClient) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	p := dynamodb.NewListTablesPaginator(c.api, &dynamodb.ListTablesInput{})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			logger.Error("ListTables failed", "error", err)
			return nil, newError("failed to list tables", err)
		}
		for _, name := range out.TableNames {
			tables = append(tables, models.Table{Name: name})
		}
	}
	logger.Debug("Listed tables", "count", len(tables))
	return tables, nil
}

// DescribeTable returns the schema and statistics of a table.
func (c *DynamoClient) DescribeTable(ctx context.Context, name string) (models.TableDescription, error) {
	out, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err != nil {
		logger.Error("DescribeTable failed", "table", name, "error", err)
		return models.TableDescription{}, newError("failed to load table description", err)
	}
	if out.Table == nil {
		return models.TableDescription{}, newError("failed to load table description", errEmptyDescription)
	}
	return toTableDescription(out.Table), nil
}

// ScanAllItems reads the whole table and returns its items sorted by key.
func (c *DynamoClient) ScanAllItems(ctx context.Context, table string, schema models.KeySchemaType) ([]models.Item, error) {
	var items []models.Item
	pages := 0
	p := dynamodb.NewScanPaginator(c.api, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			logger.Error("Scan failed", "table", table, "page", pages, "error", err)
			return nil, newError("failed to scan items", err)
		}
		pages++
		for _, av := range out.Items {
			items = append(items, toItem(av))
		}
	}
	models.SortItems(items, schema)
	logger.Debug("Scanned table", "table", table, "items", len(items), "pages", pages)
	return items, nil
}

// DeleteItem deletes item by its primary key.
func (c *DynamoClient) DeleteItem(ctx context.Context, table string, schema models.KeySchemaType, item models.Item) error {
	_, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       toKey(item, schema),
	})
	if err != nil {
		logger.Error("DeleteItem failed", "table", table, "error", err)
		return newError("failed to delete item", err)
	}
	logger.Info("Deleted item", "table", table, "key", models.KeyString(item, schema))
	return nil
}
