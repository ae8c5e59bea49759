package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/willibrandon/ddv/internal/models"
)

func toItem(av map[string]types.AttributeValue) models.Item {
	attrs := make(map[string]models.Attribute, len(av))
	for k, v := range av {
		attrs[k] = toAttribute(v)
	}
	return models.Item{Attributes: attrs}
}

// toAttribute converts an SDK value. Union members the SDK does not know
// about are a broken invariant and panic.
func toAttribute(v types.AttributeValue) models.Attribute {
	switch v := v.(type) {
	case *types.AttributeValueMemberS:
		return models.String(v.Value)
	case *types.AttributeValueMemberN:
		return models.Number(v.Value)
	case *types.AttributeValueMemberB:
		return models.Binary(v.Value)
	case *types.AttributeValueMemberBOOL:
		return models.Bool(v.Value)
	case *types.AttributeValueMemberNULL:
		return models.Null()
	case *types.AttributeValueMemberL:
		l := make([]models.Attribute, len(v.Value))
		for i, e := range v.Value {
			l[i] = toAttribute(e)
		}
		return models.List(l...)
	case *types.AttributeValueMemberM:
		m := make(map[string]models.Attribute, len(v.Value))
		for k, e := range v.Value {
			m[k] = toAttribute(e)
		}
		return models.Map(m)
	case *types.AttributeValueMemberSS:
		return models.StringSet(v.Value...)
	case *types.AttributeValueMemberNS:
		return models.NumberSet(v.Value...)
	case *types.AttributeValueMemberBS:
		return models.BinarySet(v.Value...)
	default:
		panic(fmt.Sprintf("unexpected attribute value %T", v))
	}
}

func fromAttribute(a models.Attribute) types.AttributeValue {
	switch a.Kind {
	case models.KindS:
		return &types.AttributeValueMemberS{Value: a.S}
	case models.KindN:
		return &types.AttributeValueMemberN{Value: a.S}
	case models.KindB:
		return &types.AttributeValueMemberB{Value: a.B}
	case models.KindBOOL:
		return &types.AttributeValueMemberBOOL{Value: a.Bool}
	case models.KindNULL:
		return &types.AttributeValueMemberNULL{Value: true}
	case models.KindL:
		l := make([]types.AttributeValue, len(a.L))
		for i, e := range a.L {
			l[i] = fromAttribute(e)
		}
		return &types.AttributeValueMemberL{Value: l}
	case models.KindM:
		m := make(map[string]types.AttributeValue, len(a.M))
		for k, e := range a.M {
			m[k] = fromAttribute(e)
		}
		return &types.AttributeValueMemberM{Value: m}
	case models.KindSS:
		return &types.AttributeValueMemberSS{Value: append([]string(nil), a.SS...)}
	case models.KindNS:
		return &types.AttributeValueMemberNS{Value: append([]string(nil), a.SS...)}
	case models.KindBS:
		return &types.AttributeValueMemberBS{Value: append([][]byte(nil), a.BS...)}
	default:
		panic(fmt.Sprintf("unexpected attribute kind %d", a.Kind))
	}
}

// toKey builds the primary key of item for DeleteItem.
func toKey(item models.Item, schema models.KeySchemaType) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, 2)
	for name, a := range item.KeyAttributes(schema) {
		key[name] = fromAttribute(a)
	}
	return key
}

func toTableDescription(t *types.TableDescription) models.TableDescription {
	defs := make([]models.AttributeDefinition, len(t.AttributeDefinitions))
	for i, d := range t.AttributeDefinitions {
		defs[i] = models.AttributeDefinition{
			AttributeName: aws.ToString(d.AttributeName),
			AttributeType: string(d.AttributeType),
		}
	}
	keySchema := toKeySchema(t.KeySchema)

	desc := models.TableDescription{
		AttributeDefinitions: defs,
		TableName:            aws.ToString(t.TableName),
		KeySchema:            keySchema,
		TableStatus:          string(t.TableStatus),
		CreationDateTime:     aws.ToTime(t.CreationDateTime),
		TotalSizeBytes:       aws.ToInt64(t.TableSizeBytes),
		ItemCount:            aws.ToInt64(t.ItemCount),
		TableArn:             aws.ToString(t.TableArn),
		KeySchemaType:        models.KeySchemaTypeOf(keySchema),
	}
	if pt := t.ProvisionedThroughput; pt != nil {
		desc.ProvisionedThroughput = &models.ProvisionedThroughput{
			LastIncreaseDateTime:   pt.LastIncreaseDateTime,
			LastDecreaseDateTime:   pt.LastDecreaseDateTime,
			NumberOfDecreasesToday: aws.ToInt64(pt.NumberOfDecreasesToday),
			ReadCapacityUnits:      aws.ToInt64(pt.ReadCapacityUnits),
			WriteCapacityUnits:     aws.ToInt64(pt.WriteCapacityUnits),
		}
	}
	for _, ix := range t.LocalSecondaryIndexes {
		desc.LocalSecondaryIndexes = append(desc.LocalSecondaryIndexes, models.SecondaryIndexDescription{
			IndexName:      aws.ToString(ix.IndexName),
			KeySchema:      toKeySchema(ix.KeySchema),
			Projection:     toProjection(ix.Projection),
			IndexSizeBytes: aws.ToInt64(ix.IndexSizeBytes),
			ItemCount:      aws.ToInt64(ix.ItemCount),
			IndexArn:       aws.ToString(ix.IndexArn),
		})
	}
	for _, ix := range t.GlobalSecondaryIndexes {
		desc.GlobalSecondaryIndexes = append(desc.GlobalSecondaryIndexes, models.SecondaryIndexDescription{
			IndexName:      aws.ToString(ix.IndexName),
			KeySchema:      toKeySchema(ix.KeySchema),
			Projection:     toProjection(ix.Projection),
			IndexSizeBytes: aws.ToInt64(ix.IndexSizeBytes),
			ItemCount:      aws.ToInt64(ix.ItemCount),
			IndexArn:       aws.ToString(ix.IndexArn),
		})
	}
	return desc
}

func toKeySchema(elements []types.KeySchemaElement) []models.KeySchemaElement {
	out := make([]models.KeySchemaElement, len(elements))
	for i, e := range elements {
		out[i] = models.KeySchemaElement{
			AttributeName: aws.ToString(e.AttributeName),
			KeyType:       string(e.KeyType),
		}
	}
	return out
}

func toProjection(p *types.Projection) models.Projection {
	if p == nil {
		return models.Projection{}
	}
	return models.Projection{
		ProjectionType:   string(p.ProjectionType),
		NonKeyAttributes: p.NonKeyAttributes,
	}
}
