package models

import "time"

// Table is an entry of the table list.
type Table struct {
	Name string
}

// KeySchemaType is the primary key of a table: a hash key and an optional range key.
type KeySchemaType struct {
	Hash string
	// Range is empty for hash-only tables
	Range string
}

// HasRange reports whether the table has a composite primary key.
func (k KeySchemaType) HasRange() bool {
	return k.Range != ""
}

// Keys returns the key attribute names, hash first.
func (k KeySchemaType) Keys() []string {
	if k.HasRange() {
		return []string{k.Hash, k.Range}
	}
	return []string{k.Hash}
}

// AttributeDefinition describes a key attribute declared on the table.
type AttributeDefinition struct {
	AttributeName string `json:"AttributeName" yaml:"AttributeName"`
	AttributeType string `json:"AttributeType" yaml:"AttributeType"`
}

// KeySchemaElement is one element of a key schema.
// KeyType is HASH or RANGE.
type KeySchemaElement struct {
	AttributeName string `json:"AttributeName" yaml:"AttributeName"`
	KeyType       string `json:"KeyType" yaml:"KeyType"`
}

// ProvisionedThroughput is the capacity setting of a provisioned table.
type ProvisionedThroughput struct {
	LastIncreaseDateTime   *time.Time `json:"LastIncreaseDateTime,omitempty" yaml:"LastIncreaseDateTime,omitempty"`
	LastDecreaseDateTime   *time.Time `json:"LastDecreaseDateTime,omitempty" yaml:"LastDecreaseDateTime,omitempty"`
	NumberOfDecreasesToday int64      `json:"NumberOfDecreasesToday" yaml:"NumberOfDecreasesToday"`
	ReadCapacityUnits      int64      `json:"ReadCapacityUnits" yaml:"ReadCapacityUnits"`
	WriteCapacityUnits     int64      `json:"WriteCapacityUnits" yaml:"WriteCapacityUnits"`
}

// Projection lists the attributes copied into a secondary index.
type Projection struct {
	ProjectionType   string   `json:"ProjectionType" yaml:"ProjectionType"`
	NonKeyAttributes []string `json:"NonKeyAttributes,omitempty" yaml:"NonKeyAttributes,omitempty"`
}

// SecondaryIndexDescription describes a local or global secondary index.
type SecondaryIndexDescription struct {
	IndexName      string             `json:"IndexName" yaml:"IndexName"`
	KeySchema      []KeySchemaElement `json:"KeySchema" yaml:"KeySchema"`
	Projection     Projection         `json:"Projection" yaml:"Projection"`
	IndexSizeBytes int64              `json:"IndexSizeBytes" yaml:"IndexSizeBytes"`
	ItemCount      int64              `json:"ItemCount" yaml:"ItemCount"`
	IndexArn       string             `json:"IndexArn" yaml:"IndexArn"`
}

// TableDescription is the schema and statistics of a table.
type TableDescription struct {
	AttributeDefinitions   []AttributeDefinition       `json:"AttributeDefinitions" yaml:"AttributeDefinitions"`
	TableName              string                      `json:"TableName" yaml:"TableName"`
	KeySchema              []KeySchemaElement          `json:"KeySchema" yaml:"KeySchema"`
	TableStatus            string                      `json:"TableStatus" yaml:"TableStatus"`
	CreationDateTime       time.Time                   `json:"CreationDateTime" yaml:"CreationDateTime"`
	ProvisionedThroughput  *ProvisionedThroughput      `json:"ProvisionedThroughput,omitempty" yaml:"ProvisionedThroughput,omitempty"`
	TotalSizeBytes         int64                       `json:"TableSizeBytes" yaml:"TableSizeBytes"`
	ItemCount              int64                       `json:"ItemCount" yaml:"ItemCount"`
	TableArn               string                      `json:"TableArn" yaml:"TableArn"`
	LocalSecondaryIndexes  []SecondaryIndexDescription `json:"LocalSecondaryIndexes,omitempty" yaml:"LocalSecondaryIndexes,omitempty"`
	GlobalSecondaryIndexes []SecondaryIndexDescription `json:"GlobalSecondaryIndexes,omitempty" yaml:"GlobalSecondaryIndexes,omitempty"`

	KeySchemaType KeySchemaType `json:"-" yaml:"-"`
}

// KeySchemaTypeOf derives the primary key from key schema elements.
// A schema without exactly one hash key is a broken invariant and panics.
func KeySchemaTypeOf(elements []KeySchemaElement) KeySchemaType {
	var k KeySchemaType
	for _, e := range elements {
		switch e.KeyType {
		case "HASH":
			if k.Hash != "" {
				panic("multiple hash keys")
			}
			k.Hash = e.AttributeName
		case "RANGE":
			if k.Range != "" {
				panic("multiple range keys")
			}
			k.Range = e.AttributeName
		}
	}
	if k.Hash == "" {
		panic("key schema has no hash key")
	}
	return k
}
