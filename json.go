package nbt

import (
	"math"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// UnmarshalJSON fills the compound from a JSON object, keeping key order.
// Numbers become Int, Long or Double tags depending on their range, booleans
// become Byte tags, objects become nested compounds and arrays become lists.
// NBT has no null, so JSON null is rejected.
func (ct *CompoundTag) UnmarshalJSON(data []byte) error {
	return jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return err
		}

		ct.Set(string(key), v)
		return nil
	})
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (v Tag, err error) {
	switch dataType {
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		if b {
			return NewByteTag(1), nil
		}
		return NewByteTag(0), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return NewDoubleTag(f), nil
		}

		if i < math.MinInt32 || i > math.MaxInt32 {
			return NewLongTag(i), nil
		}

		return NewIntTag(int32(i)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewStringTag(s), nil
	case jsonparser.Object:
		sub := NewCompoundTag()
		if err := sub.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return sub, nil
	case jsonparser.Array:
		return parseJSONArray(data)
	default:
		return nil, errors.Errorf("unsupported JSON type: %v", dataType)
	}
}

func parseJSONArray(data []byte) (ListTag, error) {
	l := NewListTag()

	var parseErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
		if parseErr != nil {
			return
		}

		v, err := parseJSONValue(dataType, value)
		if err != nil {
			parseErr = err
			return
		}

		l = append(l, v)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}

	return l, nil
}
