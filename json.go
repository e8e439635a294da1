package orderedmap

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/buger/jsonparser"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ json.Marshaler   = &OrderedMap[int, any]{}
	_ json.Unmarshaler = &OrderedMap[int, any]{}
)

// MarshalJSON renders the map as a JSON object whose members appear in
// insertion order. A nil map renders as null.
func (om *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	if om == nil || om.list == nil {
		return []byte("null"), nil
	}

	writer := jwriter.Writer{}
	writer.RawByte('{')

	for pair, firstIteration := om.Oldest(), true; pair != nil; pair = pair.Next() {
		if firstIteration {
			firstIteration = false
		} else {
			writer.RawByte(',')
		}

		if err := writeJSONKey(&writer, pair.Key); err != nil {
			return nil, err
		}
		writer.RawByte(':')
		writer.Raw(json.Marshal(pair.Value))
	}

	writer.RawByte('}')

	return writer.BuildBytes()
}

// writeJSONKey writes key as a JSON object member name. Strings, integers and
// TextMarshalers get a direct path; anything else must marshal to a JSON
// string or number, which then gets quoted as needed.
func writeJSONKey[K comparable](writer *jwriter.Writer, key K) error {
	switch typedKey := any(key).(type) {
	case string:
		writer.String(typedKey)
	case encoding.TextMarshaler:
		writer.RawByte('"')
		writer.Raw(typedKey.MarshalText())
		writer.RawByte('"')
	case int:
		writer.IntStr(typedKey)
	case int8:
		writer.Int8Str(typedKey)
	case int16:
		writer.Int16Str(typedKey)
	case int32:
		writer.Int32Str(typedKey)
	case int64:
		writer.Int64Str(typedKey)
	case uint:
		writer.UintStr(typedKey)
	case uint8:
		writer.Uint8Str(typedKey)
	case uint16:
		writer.Uint16Str(typedKey)
	case uint32:
		writer.Uint32Str(typedKey)
	case uint64:
		writer.Uint64Str(typedKey)
	default:
		// named string/integer types land here
		data, err := json.Marshal(typedKey)
		if err != nil {
			return err
		}
		if len(data) > 0 && data[0] == '"' {
			writer.Raw(data, nil)
		} else {
			writer.RawByte('"')
			writer.Raw(data, nil)
			writer.RawByte('"')
		}
	}
	return nil
}

// UnmarshalJSON rebuilds the map from a JSON object, binding its members in
// document order.
func (om *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	if om.list == nil {
		om.initialize(0)
	}

	return jsonparser.ObjectEach(data, func(keyData, valueData []byte, dataType jsonparser.ValueType, offset int) error {
		// jsonparser strips the quotes off string values; slice them back out
		// of the original document so encoding/json sees valid JSON
		if dataType == jsonparser.String {
			valueData = data[offset-len(valueData)-2 : offset]
		}

		key, err := parseJSONKey[K](keyData)
		if err != nil {
			return err
		}

		var value V
		if err := json.Unmarshal(valueData, &value); err != nil {
			return err
		}

		om.Set(key, value)
		return nil
	})
}

// parseJSONKey converts an object member name (already unquoted and
// unescaped) back into a key.
func parseJSONKey[K comparable](keyData []byte) (key K, err error) {
	switch typedKey := any(&key).(type) {
	case *string:
		*typedKey = string(keyData)
	case encoding.TextUnmarshaler:
		err = typedKey.UnmarshalText(keyData)
	case *int, *int8, *int16, *int32, *int64, *uint, *uint8, *uint16, *uint32, *uint64:
		err = json.Unmarshal(keyData, typedKey)
	default:
		// named string/integer types land here
		keyValue := reflect.ValueOf(&key).Elem()
		switch keyValue.Kind() {
		case reflect.String:
			keyValue.SetString(string(keyData))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			err = json.Unmarshal(keyData, &key)
		default:
			err = fmt.Errorf("unsupported key type: %T", key)
		}
	}
	return key, err
}
