package record

import (
	"fmt"
	"sort"

	"github.com/viant/datecast"
)

type (
	//Map represents attribute map backed record
	Map struct {
		attributes  map[string]interface{}
		getMutators map[string]bool
		setMutators map[string]bool
		newQuery    func() datecast.Query
	}

	//MapOption represents map record option
	MapOption func(m *Map)
)

//Attribute returns raw attribute value
func (m *Map) Attribute(name string) (interface{}, bool) {
	value, ok := m.attributes[name]
	return value, ok
}

//SetAttribute sets raw attribute value
func (m *Map) SetAttribute(name string, value interface{}) error {
	m.attributes[name] = value
	return nil
}

//Attributes returns raw attributes
func (m *Map) Attributes() map[string]interface{} {
	return m.attributes
}

//HasGetMutator returns true if get mutator was declared for an attribute
func (m *Map) HasGetMutator(name string) bool {
	return m.getMutators[name]
}

//HasSetMutator returns true if set mutator was declared for an attribute
func (m *Map) HasSetMutator(name string) bool {
	return m.setMutators[name]
}

//MutatedAttributes returns attributes with declared get mutator
func (m *Map) MutatedAttributes() []string {
	ret := make([]string, 0, len(m.getMutators))
	for name := range m.getMutators {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

//NewQuery creates a query, it returns query reporting missing builder if none was supplied
func (m *Map) NewQuery() datecast.Query {
	if m.newQuery == nil {
		return noQuery{}
	}
	return m.newQuery()
}

//Increment increments numeric attribute: args are attribute name and optional amount (default 1)
func (m *Map) Increment(args ...interface{}) (interface{}, error) {
	return m.adjust(1, args)
}

//Decrement decrements numeric attribute: args are attribute name and optional amount (default 1)
func (m *Map) Decrement(args ...interface{}) (interface{}, error) {
	return m.adjust(-1, args)
}

func (m *Map) adjust(sign int, args []interface{}) (interface{}, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("invalid arguments count: %v, expected attribute name and optional amount", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid attribute name type: %T", args[0])
	}
	var amount interface{} = 1
	if len(args) == 2 {
		amount = args[1]
	}
	current := m.attributes[name]
	switch delta := amount.(type) {
	case int:
		value, err := asInt(name, current)
		if err != nil {
			return nil, err
		}
		m.attributes[name] = value + sign*delta
	case float64:
		value, err := asFloat64(name, current)
		if err != nil {
			return nil, err
		}
		m.attributes[name] = value + float64(sign)*delta
	default:
		return nil, fmt.Errorf("unsupported amount type: %T", amount)
	}
	return m.attributes[name], nil
}

func asInt(name string, value interface{}) (int, error) {
	switch actual := value.(type) {
	case nil:
		return 0, nil
	case int:
		return actual, nil
	case int64:
		return int(actual), nil
	case int32:
		return int(actual), nil
	}
	return 0, fmt.Errorf("failed to adjust %v: unsupported type %T", name, value)
}

func asFloat64(name string, value interface{}) (float64, error) {
	switch actual := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return actual, nil
	case float32:
		return float64(actual), nil
	case int:
		return float64(actual), nil
	}
	return 0, fmt.Errorf("failed to adjust %v: unsupported type %T", name, value)
}

type noQuery struct{}

func (noQuery) Call(method string, args ...interface{}) (interface{}, error) {
	return nil, fmt.Errorf("failed to call %v: %w", method, datecast.ErrMethodNotFound)
}

//WithGetMutators declares native get mutators
func WithGetMutators(names ...string) MapOption {
	return func(m *Map) {
		for _, name := range names {
			m.getMutators[name] = true
		}
	}
}

//WithSetMutators declares native set mutators
func WithSetMutators(names ...string) MapOption {
	return func(m *Map) {
		for _, name := range names {
			m.setMutators[name] = true
		}
	}
}

//WithQuery sets query factory
func WithQuery(fn func() datecast.Query) MapOption {
	return func(m *Map) {
		m.newQuery = fn
	}
}

//NewMap creates attribute map record
func NewMap(attributes map[string]interface{}, opts ...MapOption) *Map {
	if attributes == nil {
		attributes = map[string]interface{}{}
	}
	ret := &Map{attributes: attributes, getMutators: map[string]bool{}, setMutators: map[string]bool{}}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
