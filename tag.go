package datecast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

const (
	//TagName defines date cast tag, its presence marks date field, its value defines field source format
	TagName = "datecast"
	//ColumnTag defines tag used for attribute name
	ColumnTag = "db"

	formatTag = "format"
)

//FieldName returns struct field attribute name: db tag name or lower underscore field name
func FieldName(field reflect.StructField) string {
	if column, ok := field.Tag.Lookup(ColumnTag); ok {
		if index := strings.Index(column, ","); index != -1 {
			column = column[:index]
		}
		if column != "" && column != "-" {
			return column
		}
	}
	return text.CaseFormatUpperCamel.Format(field.Name, text.CaseFormatLowerUnderscore)
}

//ConfigFromType creates config from struct tags
func ConfigFromType(t reflect.Type) (*Config, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported type: %v, expected struct", t.String())
	}
	ret := &Config{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value, ok := field.Tag.Lookup(TagName)
		if !ok || value == "-" {
			continue
		}
		name := FieldName(field)
		ret.DateFields = append(ret.DateFields, name)
		sourceFormat, err := fieldSourceFormat(field, value)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v tag: %w", t.Name(), field.Name, err)
		}
		if sourceFormat == "" {
			continue
		}
		if ret.SourceFormats == nil {
			ret.SourceFormats = map[string]string{}
		}
		ret.SourceFormats[name] = sourceFormat
	}
	return ret, nil
}

func fieldSourceFormat(field reflect.StructField, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	if _, ok := field.Tag.Lookup(formatTag); !ok {
		return "", nil
	}
	tag, err := format.Parse(field.Tag)
	if err != nil {
		return "", err
	}
	if tag.DateFormat != "" {
		return tag.DateFormat, nil
	}
	return tag.TimeLayout, nil
}
