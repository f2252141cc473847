package datecast

import (
	"fmt"
	"time"

	ftime "github.com/viant/datecast/format/time"
)

type direction int

const (
	toDisplay direction = iota
	toStorage
)

//reformat converts value between storage and display format
func (c *Caster) reformat(field string, value interface{}, dir direction) (interface{}, error) {
	ts, to, err := c.convert(field, value, dir)
	if err != nil || ts == nil {
		return nil, err
	}
	return ts.Format(to.format), nil
}

//convert parses value with the layout of its side and returns target layout,
//explicit field format always describes storage representation
func (c *Caster) convert(field string, value interface{}, dir direction) (*time.Time, layout, error) {
	if c.layouts == nil {
		return nil, layout{}, fmt.Errorf("failed to convert %v: caster was not created with datecast.New", field)
	}
	text, ts, err := normalize(field, value)
	if err != nil || (text == nil && ts == nil) {
		return nil, layout{}, err
	}
	from, to := c.layouts.source, c.layouts.dest
	if dir == toStorage {
		from, to = to, from
	}
	if fieldLayout, ok := c.layouts.fields[field]; ok {
		if dir == toDisplay {
			from = fieldLayout
		} else {
			to = fieldLayout
		}
	} else if c.config.AutoParse {
		from = layout{}
	}
	if ts != nil {
		return ts, to, nil
	}
	parsed, err := parse(field, *text, from)
	if err != nil {
		return nil, layout{}, err
	}
	return &parsed, to, nil
}

//parse parses value with layout, empty layout detects value format;
//when formatting layout does not match, parsing layout accepting unpadded numbers is tried
func parse(field, value string, from layout) (time.Time, error) {
	if from.format == "" {
		ret, err := ftime.ParseAny(value)
		if err != nil {
			return ret, &FormatError{Field: field, Value: value, Err: err}
		}
		return ret, nil
	}
	ret, err := ftime.Parse(from.format, value)
	if err == nil {
		return ret, nil
	}
	if from.parse != "" && from.parse != from.format {
		if relaxed, rErr := ftime.Parse(from.parse, value); rErr == nil {
			return relaxed, nil
		}
	}
	return ret, &FormatError{Field: field, Value: value, Layout: from.format, Err: err}
}

//normalize returns either text or time representation of a value, both nil for absent value
func normalize(field string, value interface{}) (*string, *time.Time, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil, nil
	case string:
		return &actual, nil, nil
	case *string:
		return actual, nil, nil
	case []byte:
		if actual == nil {
			return nil, nil, nil
		}
		text := string(actual)
		return &text, nil, nil
	case time.Time:
		return nil, &actual, nil
	case *time.Time:
		return nil, actual, nil
	default:
		return nil, nil, fmt.Errorf("unsupported %v value type: %T", field, value)
	}
}

//isEmpty returns true for values read as absent: nil, empty or "0" text, nil pointer and zero time
func isEmpty(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return true
	case string:
		return isEmptyText(actual)
	case *string:
		return actual == nil || isEmptyText(*actual)
	case []byte:
		return isEmptyText(string(actual))
	case time.Time:
		return actual.IsZero()
	case *time.Time:
		return actual == nil || actual.IsZero()
	}
	return false
}

func isEmptyText(text string) bool {
	return text == "" || text == "0"
}
