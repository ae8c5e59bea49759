package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/ddv/internal/models"
)

type fakeAPI struct {
	tablePages [][]string
	scanPages  [][]map[string]types.AttributeValue
	table      *types.TableDescription
	err        error

	listCalls int
	scanCalls int
	deleted   []*dynamodb.DeleteItemInput
}

func (f *fakeAPI) ListTables(_ context.Context, in *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.tablePages[f.listCalls]
	f.listCalls++
	out := &dynamodb.ListTablesOutput{TableNames: page}
	if f.listCalls < len(f.tablePages) {
		out.LastEvaluatedTableName = aws.String(page[len(page)-1])
	}
	return out, nil
}

func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.scanPages[f.scanCalls]
	f.scanCalls++
	out := &dynamodb.ScanOutput{Items: page}
	if f.scanCalls < len(f.scanPages) {
		out.LastEvaluatedKey = page[len(page)-1]
	}
	return out, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.DescribeTableOutput{Table: f.table}, nil
}

func (f *fakeAPI) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, in)
	return &dynamodb.DeleteItemOutput{}, nil
}

func numItem(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberN{Value: id}}
}

func TestListTablesFollowsPages(t *testing.T) {
	api := &fakeAPI{tablePages: [][]string{{"a", "b"}, {"c"}}}
	c := NewClientWithAPI(api, "us-east-1")

	tables, err := c.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Table{{Name: "a"}, {Name: "b"}, {Name: "c"}}, tables)
	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, "us-east-1", c.Region())
}

func TestScanAllItemsSortsByKey(t *testing.T) {
	api := &fakeAPI{scanPages: [][]map[string]types.AttributeValue{
		{numItem("10"), numItem("9")},
		{numItem("2")},
	}}
	c := NewClientWithAPI(api, "")

	items, err := c.ScanAllItems(context.Background(), "t", models.KeySchemaType{Hash: "id"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 2, api.scanCalls)

	var ids []string
	for _, it := range items {
		ids = append(ids, it.Attributes["id"].S)
	}
	assert.Equal(t, []string{"2", "9", "10"}, ids)
}

func TestDescribeTable(t *testing.T) {
	created := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	api := &fakeAPI{table: &types.TableDescription{
		TableName: aws.String("Orders"),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("pk"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sk"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("pk"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("sk"), KeyType: types.KeyTypeRange},
		},
		TableStatus:      types.TableStatusActive,
		CreationDateTime: &created,
		ProvisionedThroughput: &types.ProvisionedThroughputDescription{
			ReadCapacityUnits:  aws.Int64(5),
			WriteCapacityUnits: aws.Int64(1),
		},
		TableSizeBytes: aws.Int64(2048),
		ItemCount:      aws.Int64(12),
		TableArn:       aws.String("arn:orders"),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndexDescription{{
			IndexName:  aws.String("bySk"),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("sk"), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeKeysOnly},
		}},
	}}
	c := NewClientWithAPI(api, "")

	desc, err := c.DescribeTable(context.Background(), "Orders")
	require.NoError(t, err)
	assert.Equal(t, "Orders", desc.TableName)
	assert.Equal(t, models.KeySchemaType{Hash: "pk", Range: "sk"}, desc.KeySchemaType)
	assert.Equal(t, "ACTIVE", desc.TableStatus)
	assert.Equal(t, created, desc.CreationDateTime)
	assert.Equal(t, int64(2048), desc.TotalSizeBytes)
	require.NotNil(t, desc.ProvisionedThroughput)
	assert.Equal(t, int64(5), desc.ProvisionedThroughput.ReadCapacityUnits)
	require.Len(t, desc.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "KEYS_ONLY", desc.GlobalSecondaryIndexes[0].Projection.ProjectionType)
	assert.Empty(t, desc.LocalSecondaryIndexes)
}

func TestDeleteItemSendsKeyOnly(t *testing.T) {
	api := &fakeAPI{}
	c := NewClientWithAPI(api, "")
	schema := models.KeySchemaType{Hash: "pk", Range: "sk"}
	item := models.Item{Attributes: map[string]models.Attribute{
		"pk":   models.String("user#1"),
		"sk":   models.Number("2"),
		"name": models.String("alice"),
	}}

	require.NoError(t, c.DeleteItem(context.Background(), "Orders", schema, item))
	require.Len(t, api.deleted, 1)
	assert.Equal(t, "Orders", aws.ToString(api.deleted[0].TableName))
	assert.Equal(t, map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "user#1"},
		"sk": &types.AttributeValueMemberN{Value: "2"},
	}, api.deleted[0].Key)
}

func TestClientErrorsWrapCause(t *testing.T) {
	cause := errors.New("connection refused")
	c := NewClientWithAPI(&fakeAPI{err: cause}, "")

	_, err := c.ListTables(context.Background())
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "failed to list tables", derr.Msg)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to list tables: connection refused", err.Error())

	_, err = c.DescribeTable(context.Background(), "x")
	assert.ErrorContains(t, err, "failed to load table description")

	_, err = c.ScanAllItems(context.Background(), "x", models.KeySchemaType{Hash: "id"})
	assert.ErrorContains(t, err, "failed to scan items")
}

func TestAttributeConversion(t *testing.T) {
	av := &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"list": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberBOOL{Value: true},
			&types.AttributeValueMemberNULL{Value: true},
		}},
		"ns": &types.AttributeValueMemberNS{Value: []string{"10", "9"}},
		"b":  &types.AttributeValueMemberB{Value: []byte{1, 2}},
	}}

	a := toAttribute(av)
	require.Equal(t, models.KindM, a.Kind)
	assert.Equal(t, models.List(models.Bool(true), models.Null()), a.M["list"])
	assert.Equal(t, []string{"9", "10"}, a.M["ns"].SS)
	assert.Equal(t, models.KindB, a.M["b"].Kind)

	back := fromAttribute(a).(*types.AttributeValueMemberM)
	assert.Equal(t, &types.AttributeValueMemberNS{Value: []string{"9", "10"}}, back.Value["ns"])
	assert.Equal(t, av.Value["list"], back.Value["list"])
}
