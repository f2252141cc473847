package datecast

import "fmt"

type testQuery struct {
	calls []string
}

func (q *testQuery) Call(method string, args ...interface{}) (interface{}, error) {
	q.calls = append(q.calls, method)
	if method == "where" {
		return fmt.Sprintf("where%v", args), nil
	}
	return nil, fmt.Errorf("call to undefined method %v", method)
}

type testModel struct {
	attributes map[string]interface{}
	getters    map[string]bool
	setters    map[string]bool
	mutated    []string
	query      *testQuery
	counted    [][]interface{}
}

func (m *testModel) Attribute(name string) (interface{}, bool) {
	value, ok := m.attributes[name]
	return value, ok
}

func (m *testModel) SetAttribute(name string, value interface{}) error {
	m.attributes[name] = value
	return nil
}

func (m *testModel) Attributes() map[string]interface{} {
	return m.attributes
}

func (m *testModel) HasGetMutator(name string) bool {
	return m.getters[name]
}

func (m *testModel) HasSetMutator(name string) bool {
	return m.setters[name]
}

func (m *testModel) MutatedAttributes() []string {
	return m.mutated
}

func (m *testModel) NewQuery() Query {
	return m.query
}

func (m *testModel) Increment(args ...interface{}) (interface{}, error) {
	m.counted = append(m.counted, append([]interface{}{"increment"}, args...))
	return len(m.counted), nil
}

func (m *testModel) Decrement(args ...interface{}) (interface{}, error) {
	m.counted = append(m.counted, append([]interface{}{"decrement"}, args...))
	return len(m.counted), nil
}

func newTestModel(attributes map[string]interface{}) *testModel {
	if attributes == nil {
		attributes = map[string]interface{}{}
	}
	return &testModel{attributes: attributes, getters: map[string]bool{}, setters: map[string]bool{}, query: &testQuery{}}
}

//plainModel implements only attribute storage
type plainModel map[string]interface{}

func (m plainModel) Attribute(name string) (interface{}, bool) {
	value, ok := m[name]
	return value, ok
}

func (m plainModel) SetAttribute(name string, value interface{}) error {
	m[name] = value
	return nil
}
