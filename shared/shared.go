package shared

import (
	"reflect"
	"shareit/shared/constant"
	"shareit/shared/dto"
	"shareit/shared/timezone"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// ConvertStringToBool parses a query flag such as approved. Empty or
// unparsable values give nil so the caller can answer with a bad request.
func ConvertStringToBool(value string) *bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}

	return &parsed
}

// TransformFields turns the non-zero db-tagged fields of data into an update
// set stamped with the acting user and the current time.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	for i := range val.NumField() {
		name := typ.Field(i).Tag.Get("db")
		if name == "" || val.Field(i).IsZero() {
			continue
		}

		fields[name] = val.Field(i).Interface()
	}

	return fields
}

// FilterByID matches one row of table by its id column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq, Table: table},
		},
		Operator: dto.FilterGroupOperatorAnd,
	}
}

// BuildCacheKey joins the prefix and the non-empty parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part != constant.Empty {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}
