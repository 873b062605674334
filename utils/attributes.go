package utils

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConvertAttributeValue converts a single DynamoDB attribute value into a
// plain Go value. Maps and lists are decoded recursively. Attribute types
// outside the handled set pass through unchanged rather than raising an
// error.
func ConvertAttributeValue(value types.AttributeValue) interface{} {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return v.Value
		}
		return n
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberM:
		return ConvertAttributeMap(v.Value)
	case *types.AttributeValueMemberL:
		list := make([]interface{}, 0, len(v.Value))
		for _, item := range v.Value {
			list = append(list, ConvertAttributeValue(item))
		}
		return list
	default:
		return value
	}
}

// ConvertAttributeMap converts one DynamoDB item into a plain map,
// preserving field names.
func ConvertAttributeMap(item map[string]types.AttributeValue) map[string]interface{} {
	plain := make(map[string]interface{}, len(item))
	for name, value := range item {
		plain[name] = ConvertAttributeValue(value)
	}
	return plain
}

// ConvertScanItems converts a scan result into plain maps, preserving the
// order of the input items. A nil input yields an empty slice.
func ConvertScanItems(items []map[string]types.AttributeValue) []map[string]interface{} {
	converted := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		converted = append(converted, ConvertAttributeMap(item))
	}
	return converted
}
