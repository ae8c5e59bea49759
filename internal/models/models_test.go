package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureItem() Item {
	return Item{Attributes: map[string]Attribute{
		"d": List(
			Null(),
			Binary([]byte("abc")),
			BinarySet([]byte("xyz"), []byte("lmn")),
		),
		"a": String("aaa"),
		"e": Map(map[string]Attribute{
			"e1": Bool(true),
			"e2": NumberSet("3", "0.2", "-2.34"),
		}),
		"c": StringSet("c2", "c1"),
		"b": Number("123"),
	}}
}

func TestRawJSONItem(t *testing.T) {
	got, err := RawJSONItem(fixtureItem(), KeySchemaType{Hash: "b"})
	require.NoError(t, err)

	want := `{
  "b": {
    "N": 123
  },
  "a": {
    "S": "aaa"
  },
  "c": {
    "SS": [
      "c1",
      "c2"
    ]
  },
  "d": {
    "L": [
      {
        "NULL": true
      },
      {
        "B": "YWJj"
      },
      {
        "BS": [
          "bG1u",
          "eHl6"
        ]
      }
    ]
  },
  "e": {
    "M": {
      "e1": {
        "BOOL": true
      },
      "e2": {
        "NS": [
          -2.34,
          0.2,
          3
        ]
      }
    }
  }
}`
	assert.Equal(t, want, got)
}

func TestPlainJSONItem(t *testing.T) {
	got, err := PlainJSONItem(fixtureItem(), KeySchemaType{Hash: "b"})
	require.NoError(t, err)

	want := `{
  "b": 123,
  "a": "aaa",
  "c": [
    "c1",
    "c2"
  ],
  "d": [
    null,
    "YWJj",
    [
      "bG1u",
      "eHl6"
    ]
  ],
  "e": {
    "e1": true,
    "e2": [
      -2.34,
      0.2,
      3
    ]
  }
}`
	assert.Equal(t, want, got)
}

func TestRawAttributeJSONKeepsMarkup(t *testing.T) {
	got, err := RawAttributeJSON(String("<a&b>"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"S\": \"<a&b>\"\n}", got)
}

func TestListAttributeKeys(t *testing.T) {
	item := func(keys ...string) Item {
		attrs := make(map[string]Attribute)
		for _, k := range keys {
			attrs[k] = Null()
		}
		return Item{Attributes: attrs}
	}
	items := []Item{item("a", "b", "c"), item("c", "d"), item("e", "b")}

	assert.Equal(t, []string{"b", "a", "c", "d", "e"}, ListAttributeKeys(items, KeySchemaType{Hash: "b"}))
	assert.Equal(t, []string{"b", "c", "a", "d", "e"}, ListAttributeKeys(items, KeySchemaType{Hash: "b", Range: "c"}))
}

func TestSimpleString(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		want string
	}{
		{"string", String("x"), "x"},
		{"number", Number("-1.5"), "-1.5"},
		{"binary", Binary([]byte{1, 2, 3}), "Blob (3)"},
		{"bool", Bool(false), "false"},
		{"null", Null(), "null"},
		{"list", List(String("a"), Number("1")), "[a, 1]"},
		{"map", Map(map[string]Attribute{"y": Bool(true), "x": Null()}), "{x: null, y: true}"},
		{"string set", StringSet("b", "a"), "[a, b]"},
		{"number set", NumberSet("10", "9"), "[9, 10]"},
		{"binary set", BinarySet([]byte("ab")), "[Blob (2)]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attr.SimpleString())
		})
	}
}

func TestKeyString(t *testing.T) {
	it := Item{Attributes: map[string]Attribute{"pk": String("user#1"), "sk": Number("7")}}
	assert.Equal(t, "user#1", KeyString(it, KeySchemaType{Hash: "pk"}))
	assert.Equal(t, "user#1 / 7", KeyString(it, KeySchemaType{Hash: "pk", Range: "sk"}))

	assert.Panics(t, func() {
		KeyString(Item{Attributes: map[string]Attribute{}}, KeySchemaType{Hash: "pk"})
	})
}

func TestSortItems(t *testing.T) {
	mk := func(pk, sk string) Item {
		return Item{Attributes: map[string]Attribute{"pk": String(pk), "sk": Number(sk)}}
	}
	items := []Item{mk("b", "1"), mk("a", "10"), mk("a", "9"), mk("a", "-3.5")}
	schema := KeySchemaType{Hash: "pk", Range: "sk"}

	SortItems(items, schema)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = KeyString(it, schema)
	}
	assert.Equal(t, []string{"a / -3.5", "a / 9", "a / 10", "b / 1"}, got)
}

func TestCompare(t *testing.T) {
	c, ok := Number("100").Compare(Number("20"))
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = Binary([]byte{1}).Compare(Binary([]byte{1, 0}))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	_, ok = String("1").Compare(Number("1"))
	assert.False(t, ok)

	_, ok = Bool(true).Compare(Bool(true))
	assert.False(t, ok)
}

func TestKeySchemaTypeOf(t *testing.T) {
	k := KeySchemaTypeOf([]KeySchemaElement{
		{AttributeName: "sk", KeyType: "RANGE"},
		{AttributeName: "pk", KeyType: "HASH"},
	})
	assert.Equal(t, KeySchemaType{Hash: "pk", Range: "sk"}, k)
	assert.Equal(t, []string{"pk", "sk"}, k.Keys())

	assert.Panics(t, func() {
		KeySchemaTypeOf([]KeySchemaElement{{AttributeName: "sk", KeyType: "RANGE"}})
	})
}

func TestNewTableInsight(t *testing.T) {
	desc := TableDescription{TableName: "users", KeySchemaType: KeySchemaType{Hash: "id"}}
	items := []Item{
		{Attributes: map[string]Attribute{"id": String("1"), "age": Number("3")}},
		{Attributes: map[string]Attribute{"id": String("2"), "age": String("three")}},
		{Attributes: map[string]Attribute{"id": String("3"), "age": Number("5")}},
		{Attributes: map[string]Attribute{"id": String("4")}},
	}

	insight := NewTableInsight(desc, items)

	assert.Equal(t, "users", insight.TableName)
	assert.Equal(t, 4, insight.TotalItems)
	require.Len(t, insight.AttributeDistributions, 2)

	id := insight.AttributeDistributions[0]
	assert.Equal(t, "id", id.AttributeName)
	assert.Equal(t, []TypeCount{{Type: "S", Count: 4}}, id.Distributions)

	age := insight.AttributeDistributions[1]
	assert.Equal(t, "age", age.AttributeName)
	assert.Equal(t, []TypeCount{
		{Type: "N", Count: 2},
		{Type: "S", Count: 1},
		{Type: TypeUndefined, Count: 1},
	}, age.Distributions)
}

func TestItemTree(t *testing.T) {
	it := Item{Attributes: map[string]Attribute{
		"id":   String("1"),
		"tags": List(String("x")),
	}}
	out := ItemTree(it, KeySchemaType{Hash: "id"})

	assert.Contains(t, out, "1")
	assert.Contains(t, out, "[S]  id: 1")
	assert.Contains(t, out, "[L]  tags")
	assert.Contains(t, out, "[S]  [0]: x")
}

func TestCompactRawJSONItem(t *testing.T) {
	it := Item{Attributes: map[string]Attribute{
		"n":  Number("2"),
		"id": String("<1>"),
	}}
	got, err := CompactRawJSONItem(it, KeySchemaType{Hash: "id"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":{"S":"<1>"},"n":{"N":"2"}}`, got)
}

func TestDescriptionDocuments(t *testing.T) {
	desc := TableDescription{
		TableName:   "Users",
		TableStatus: "ACTIVE",
		KeySchema:   []KeySchemaElement{{AttributeName: "id", KeyType: "HASH"}},
		AttributeDefinitions: []AttributeDefinition{
			{AttributeName: "id", AttributeType: "S"},
		},
		TotalSizeBytes: 1024,
		KeySchemaType:  KeySchemaType{Hash: "id"},
	}

	js, err := DescriptionJSON(desc)
	require.NoError(t, err)
	assert.Contains(t, js, `"TableName": "Users"`)
	assert.Contains(t, js, `"TableSizeBytes": 1024`)
	assert.NotContains(t, js, "ProvisionedThroughput")
	assert.NotContains(t, js, "KeySchemaType")

	ym, err := DescriptionYAML(desc)
	require.NoError(t, err)
	assert.Contains(t, ym, "TableName: Users")
	assert.Contains(t, ym, "KeyType: HASH")
	assert.Contains(t, ym, "TableSizeBytes: 1024")
	assert.NotContains(t, ym, "KeySchemaType")
}
