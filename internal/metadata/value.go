// Package metadata implements the typed, per-entry descriptor model that
// sits between the raw MessagePack wire payload and the archive façade:
// attribute value validation, record parsing, and the codec that
// serializes the metadata array.
package metadata

import (
	"fmt"

	"github.com/scigolib/mfaf/internal/mfaferr"
	"github.com/scigolib/mfaf/internal/utils"
)

// Kind tags the variant held by a Value. Attribute values form a tagged
// sum over {string, int, float, bool, null, map} (spec §9 "Dispatch");
// there is no inheritance here, only a switch over Kind.
type Kind uint8

const (
	KindNil Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMap
)

// Value is a single attribute value: exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	Flt  float64
	Bln  bool
	Map  map[string]Value
}

// raw lowers the tagged sum back to a plain Go value the MessagePack
// codec's generic encoder already knows how to serialize: strings,
// integers, floats, bools, nil, and maps.
func (v Value) raw() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Flt
	case KindBool:
		return v.Bln
	case KindMap:
		m := make(map[string]interface{}, len(v.Map))
		for k, vv := range v.Map {
			m[k] = vv.raw()
		}
		return m
	default:
		return nil
	}
}

// ConvertAttributes validates and converts a raw, decoded-or-user-
// supplied attribute tree into the tagged Value representation. raw is
// either nil (empty attributes), or a map[string]interface{} whose
// values are themselves one of {string, signed/unsigned integer kinds,
// float32/64, bool, nil, map[string]interface{}} — the shape both a
// MessagePack generic decode and a caller's Go literal map naturally
// produce. depth starts at 1 for the root map (spec: "root map = depth
// 1"); nesting beyond utils.MaxAttributeDepth is rejected.
func ConvertAttributes(raw interface{}, depth int) (map[string]Value, error) {
	if raw == nil {
		return map[string]Value{}, nil
	}

	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, mfaferr.New(mfaferr.KindRange, "attributes value is not a map")
	}
	if depth > utils.MaxAttributeDepth {
		return nil, mfaferr.New(mfaferr.KindRange, fmt.Sprintf("attribute nesting exceeds depth %d", utils.MaxAttributeDepth))
	}

	out := make(map[string]Value, len(m))
	for k, rv := range m {
		if len(k) > utils.MaxKeyLength {
			return nil, mfaferr.New(mfaferr.KindRange, fmt.Sprintf("attribute key %q exceeds %d bytes", k, utils.MaxKeyLength))
		}

		val, err := convertValue(rv, depth)
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

func convertValue(rv interface{}, depth int) (Value, error) {
	switch t := rv.(type) {
	case nil:
		return Value{Kind: KindNil}, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case bool:
		return Value{Kind: KindBool, Bln: t}, nil
	case int:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int8:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int16:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int32:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int64:
		return Value{Kind: KindInt, Int: t}, nil
	case uint:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case uint8:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case uint16:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case uint32:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case uint64:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case float32:
		return Value{Kind: KindFloat, Flt: float64(t)}, nil
	case float64:
		return Value{Kind: KindFloat, Flt: t}, nil
	case map[string]interface{}:
		nested, err := ConvertAttributes(t, depth+1)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindMap, Map: nested}, nil
	default:
		return Value{}, mfaferr.New(mfaferr.KindRange, fmt.Sprintf("unsupported attribute value type %T", rv))
	}
}

// ToInterface converts the attribute tree back to plain Go values for
// the public Entry.Attributes field.
func ToInterface(m map[string]Value) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v.raw()
	}
	return out
}
