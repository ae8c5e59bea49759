// Package models contains the DynamoDB data structures shown by the viewer.
package models

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// AttributeKind identifies the variant held by an Attribute.
type AttributeKind int

const (
	KindS AttributeKind = iota
	KindN
	KindB
	KindBOOL
	KindNULL
	KindL
	KindM
	KindSS
	KindNS
	KindBS
)

// String returns the DynamoDB type descriptor ("S", "N", "BOOL", ...).
func (k AttributeKind) String() string {
	switch k {
	case KindS:
		return "S"
	case KindN:
		return "N"
	case KindB:
		return "B"
	case KindBOOL:
		return "BOOL"
	case KindNULL:
		return "NULL"
	case KindL:
		return "L"
	case KindM:
		return "M"
	case KindSS:
		return "SS"
	case KindNS:
		return "NS"
	case KindBS:
		return "BS"
	default:
		return "unknown"
	}
}

// Attribute is a single DynamoDB attribute value.
// Only the fields matching Kind are meaningful.
type Attribute struct {
	Kind AttributeKind

	// S holds the string for S, and the decimal text for N
	S string
	// B holds the bytes for B
	B []byte
	// Bool holds the value for BOOL
	Bool bool
	// L holds the elements for L
	L []Attribute
	// M holds the entries for M
	M map[string]Attribute
	// SS holds the members for SS and NS, sorted
	SS []string
	// BS holds the members for BS, sorted
	BS [][]byte
}

// String builds an S attribute.
func String(s string) Attribute { return Attribute{Kind: KindS, S: s} }

// Number builds an N attribute from its decimal text.
func Number(n string) Attribute { return Attribute{Kind: KindN, S: n} }

// Binary builds a B attribute.
func Binary(b []byte) Attribute { return Attribute{Kind: KindB, B: b} }

// Bool builds a BOOL attribute.
func Bool(b bool) Attribute { return Attribute{Kind: KindBOOL, Bool: b} }

// Null builds a NULL attribute.
func Null() Attribute { return Attribute{Kind: KindNULL} }

// List builds an L attribute.
func List(l ...Attribute) Attribute { return Attribute{Kind: KindL, L: l} }

// Map builds an M attribute.
func Map(m map[string]Attribute) Attribute { return Attribute{Kind: KindM, M: m} }

// StringSet builds an SS attribute. Members are sorted.
func StringSet(ss ...string) Attribute {
	s := append([]string(nil), ss...)
	sort.Strings(s)
	return Attribute{Kind: KindSS, SS: s}
}

// NumberSet builds an NS attribute. Members are sorted numerically.
func NumberSet(ns ...string) Attribute {
	s := append([]string(nil), ns...)
	sort.SliceStable(s, func(i, j int) bool { return compareNumbers(s[i], s[j]) < 0 })
	return Attribute{Kind: KindNS, SS: s}
}

// BinarySet builds a BS attribute. Members are sorted bytewise.
func BinarySet(bs ...[]byte) Attribute {
	s := append([][]byte(nil), bs...)
	sort.Slice(s, func(i, j int) bool { return bytes.Compare(s[i], s[j]) < 0 })
	return Attribute{Kind: KindBS, BS: s}
}

// TypeString returns the DynamoDB type descriptor of the attribute.
func (a Attribute) TypeString() string {
	return a.Kind.String()
}

// SimpleString renders the attribute as a single human readable line.
func (a Attribute) SimpleString() string {
	switch a.Kind {
	case KindS:
		return a.S
	case KindN:
		return a.S
	case KindB:
		return blobString(a.B)
	case KindBOOL:
		return strconv.FormatBool(a.Bool)
	case KindNULL:
		return "null"
	case KindL:
		parts := make([]string, len(a.L))
		for i, v := range a.L {
			parts[i] = v.SimpleString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindM:
		keys := sortedKeys(a.M)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + a.M[k].SimpleString()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindSS, KindNS:
		return "[" + strings.Join(a.SS, ", ") + "]"
	case KindBS:
		parts := make([]string, len(a.BS))
		for i, b := range a.BS {
			parts[i] = blobString(b)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// Compare orders two key attributes. Only S, N and B of the same kind are
// comparable; ok is false otherwise.
func (a Attribute) Compare(b Attribute) (cmp int, ok bool) {
	if a.Kind != b.Kind {
		return 0, false
	}
	switch a.Kind {
	case KindS:
		return strings.Compare(a.S, b.S), true
	case KindN:
		return compareNumbers(a.S, b.S), true
	case KindB:
		return bytes.Compare(a.B, b.B), true
	default:
		return 0, false
	}
}

// compareNumbers compares two DynamoDB decimal strings. DynamoDB numbers carry
// up to 38 digits of precision, so they are compared as arbitrary precision
// rationals. Unparseable values sort after parseable ones, then by text.
func compareNumbers(x, y string) int {
	rx, okx := new(big.Rat).SetString(x)
	ry, oky := new(big.Rat).SetString(y)
	switch {
	case okx && oky:
		return rx.Cmp(ry)
	case okx:
		return -1
	case oky:
		return 1
	default:
		return strings.Compare(x, y)
	}
}

func blobString(b []byte) string {
	return fmt.Sprintf("Blob (%d)", len(b))
}

func sortedKeys(m map[string]Attribute) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AttributeType is the type of an attribute for insight purposes,
// including the absence of the attribute.
type AttributeType string

// TypeUndefined marks an item that lacks the attribute.
const TypeUndefined AttributeType = "undefined"

// TypeOf returns the AttributeType of an optional attribute.
func TypeOf(attr *Attribute) AttributeType {
	if attr == nil {
		return TypeUndefined
	}
	return AttributeType(attr.TypeString())
}
