package views

import (
	"strings"
	"time"

	"github.com/willibrandon/ddv/internal/models"
)

var longNote = strings.Repeat("x", 40)

func usersDescription() models.TableDescription {
	schema := []models.KeySchemaElement{{AttributeName: "id", KeyType: "HASH"}}
	return models.TableDescription{
		TableName:            "Users",
		KeySchema:            schema,
		AttributeDefinitions: []models.AttributeDefinition{{AttributeName: "id", AttributeType: "S"}},
		TableStatus:          "ACTIVE",
		CreationDateTime:     time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		ProvisionedThroughput: &models.ProvisionedThroughput{
			ReadCapacityUnits:  5,
			WriteCapacityUnits: 10,
		},
		TotalSizeBytes: 1024,
		ItemCount:      1234,
		TableArn:       "arn:aws:dynamodb:us-east-1:000000000000:table/Users",
		GlobalSecondaryIndexes: []models.SecondaryIndexDescription{
			{IndexName: "byName", KeySchema: []models.KeySchemaElement{{AttributeName: "name", KeyType: "HASH"}}},
			{IndexName: "byAge", KeySchema: []models.KeySchemaElement{
				{AttributeName: "age", KeyType: "HASH"},
				{AttributeName: "name", KeyType: "RANGE"},
			}},
		},
		KeySchemaType: models.KeySchemaTypeOf(schema),
	}
}

// userItems is sorted by id. Item 2 has no age and a note wider than the
// default attribute width.
func userItems() []models.Item {
	return []models.Item{
		{Attributes: map[string]models.Attribute{
			"id":   models.String("1"),
			"name": models.String("alice"),
			"age":  models.Number("30"),
		}},
		{Attributes: map[string]models.Attribute{
			"id":   models.String("2"),
			"name": models.String("bob"),
			"note": models.String(longNote),
		}},
		{Attributes: map[string]models.Attribute{
			"id":   models.String("3"),
			"name": models.String("bobby"),
			"age":  models.Number("41"),
		}},
	}
}

func tableNames(names ...string) []models.Table {
	tables := make([]models.Table, len(names))
	for i, n := range names {
		tables[i] = models.Table{Name: n}
	}
	return tables
}
