package mqtt

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/util"
)

// Translate a raw value into its display value using the value map
//
// Unmapped values are returned unchanged.
func MapValue(pd *schema.PropertyDefinition, value any) any {
	if value == nil || pd.ValueMap == nil {
		return value
	}

	if mapped, ok := pd.ValueMap.Get(util.FormatValue(value)); ok {
		return mapped
	}

	logging.Log().Warnf("Unable to map value '%s' of property '%s' - using unmapped value!", util.FormatValue(value), pd.Key)
	return value
}

// MapValue for a complete property value, array items are mapped one by one
func MapProperty(pd *schema.PropertyDefinition, value any) any {
	if items, ok := value.([]any); ok && len(items) > 0 && pd.JsonType == schema.JsonTypeArray {
		result := make([]any, len(items))
		for i, item := range items {
			result[i] = MapValue(pd, item)
		}
		return result
	}

	return MapValue(pd, value)
}

// Translate a display value back into its raw value
func RemapValue(pd *schema.PropertyDefinition, value any) any {
	if pd.ValueMap == nil {
		return value
	}

	if key, ok := pd.ValueMap.Reverse(util.FormatValue(value)); ok {
		return decodeJSON(key)
	}

	logging.Log().Warnf("Unable to remap value '%s' of property '%s' - using mapped value!", util.FormatValue(value), pd.Key)
	return value
}

func RemapProperty(pd *schema.PropertyDefinition, value any) any {
	if items, ok := value.([]any); ok && pd.JsonType == schema.JsonTypeArray {
		result := make([]any, len(items))
		for i, item := range items {
			result[i] = RemapValue(pd, item)
		}
		return result
	}

	return RemapValue(pd, value)
}

// The state payload of a property value
//
// Arrays, objects, booleans and missing values are published as JSON,
// everything else as plain text.
func EncodeProperty(pd *schema.PropertyDefinition, value any) string {
	mapped := MapProperty(pd, value)

	switch {
	case value == nil,
		pd.JsonType == schema.JsonTypeArray,
		pd.JsonType == schema.JsonTypeObject,
		pd.JsonType == schema.JsonTypeBoolean:
		data, err := json.Marshal(mapped)
		if err != nil {
			logging.Log().Errorf("Failed to encode value of property '%s': %v", pd.Key, err)
			return util.FormatValue(mapped)
		}
		return string(data)
	}

	return util.FormatValue(mapped)
}

// Convert a set command payload into the raw property value
func DecodeProperty(pd *schema.PropertyDefinition, payload string) (any, error) {
	var decoded any = payload
	if pd.JsonType == schema.JsonTypeArray || pd.JsonType == schema.JsonTypeObject {
		value, err := parseJSON(payload)
		if err != nil {
			return nil, err
		}
		decoded = value
	}

	remapped := RemapProperty(pd, decoded)

	text, ok := remapped.(string)
	if !ok {
		return remapped, nil
	}

	switch pd.JsonType {
	case schema.JsonTypeInteger:
		return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	case schema.JsonTypeFloat:
		return strconv.ParseFloat(strings.TrimSpace(text), 64)
	case schema.JsonTypeBoolean:
		return strings.ToLower(text) == "true", nil
	}

	return text, nil
}

func parseJSON(data string) (any, error) {
	decoder := json.NewDecoder(bytes.NewBufferString(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	return model.NormalizeValue(value), nil
}

// value map keys hold JSON literals, anything else stays a string
func decodeJSON(data string) any {
	value, err := parseJSON(data)
	if err != nil {
		return data
	}
	return value
}
