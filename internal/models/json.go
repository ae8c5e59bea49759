package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
)

// RawJSONItem renders an item in DynamoDB typed JSON ({"name": {"S": "..."}}),
// key attributes first.
func RawJSONItem(it Item, schema KeySchemaType) (string, error) {
	return marshalIndent(itemObject(it, schema, rawValue))
}

// PlainJSONItem renders an item as plain JSON values, key attributes first.
func PlainJSONItem(it Item, schema KeySchemaType) (string, error) {
	return marshalIndent(itemObject(it, schema, plainValue))
}

// CompactRawJSONItem is RawJSONItem on a single line.
func CompactRawJSONItem(it Item, schema KeySchemaType) (string, error) {
	b, err := encodeCompact(itemObject(it, schema, rawValue))
	return string(b), err
}

// RawAttributeJSON renders a single attribute in DynamoDB typed JSON.
func RawAttributeJSON(a Attribute) (string, error) {
	return marshalIndent(rawValue(a))
}

func itemObject(it Item, schema KeySchemaType, conv func(Attribute) any) orderedObject {
	keys := ListAttributeKeys([]Item{it}, schema)
	obj := orderedObject{keys: keys, values: make([]any, len(keys))}
	for i, k := range keys {
		obj.values[i] = conv(it.Attributes[k])
	}
	return obj
}

func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// orderedObject is a JSON object that keeps its key order.
type orderedObject struct {
	keys   []string
	values []any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := encodeCompact(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := encodeCompact(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func single(key string, value any) orderedObject {
	return orderedObject{keys: []string{key}, values: []any{value}}
}

func rawValue(a Attribute) any {
	switch a.Kind {
	case KindNULL:
		return single(a.TypeString(), true)
	case KindL:
		vs := make([]any, len(a.L))
		for i, v := range a.L {
			vs[i] = rawValue(v)
		}
		return single(a.TypeString(), vs)
	case KindM:
		return single(a.TypeString(), mapObject(a.M, rawValue))
	default:
		return single(a.TypeString(), plainValue(a))
	}
}

func plainValue(a Attribute) any {
	switch a.Kind {
	case KindS:
		return a.S
	case KindN:
		return numberValue(a.S)
	case KindB:
		return base64.StdEncoding.EncodeToString(a.B)
	case KindBOOL:
		return a.Bool
	case KindNULL:
		return nil
	case KindL:
		vs := make([]any, len(a.L))
		for i, v := range a.L {
			vs[i] = plainValue(v)
		}
		return vs
	case KindM:
		return mapObject(a.M, plainValue)
	case KindSS:
		return append([]string{}, a.SS...)
	case KindNS:
		vs := make([]any, len(a.SS))
		for i, n := range a.SS {
			vs[i] = numberValue(n)
		}
		return vs
	case KindBS:
		vs := make([]string, len(a.BS))
		for i, b := range a.BS {
			vs[i] = base64.StdEncoding.EncodeToString(b)
		}
		return vs
	default:
		return nil
	}
}

func mapObject(m map[string]Attribute, conv func(Attribute) any) orderedObject {
	keys := sortedKeys(m)
	obj := orderedObject{keys: keys, values: make([]any, len(keys))}
	for i, k := range keys {
		obj.values[i] = conv(m[k])
	}
	return obj
}

// numberValue keeps a DynamoDB number as a JSON number literal when it is one.
func numberValue(n string) any {
	if json.Valid([]byte(n)) {
		return json.Number(n)
	}
	return n
}
