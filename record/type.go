package record

import (
	"fmt"
	"reflect"

	"github.com/viant/datecast"
	"github.com/viant/xunsafe"
)

type (
	//Type represents struct record type
	Type struct {
		rType  reflect.Type
		fields []*field
		index  map[string]int
		marker *Marker
	}

	field struct {
		name   string
		xField *xunsafe.Field
		setter setter
		pos    int
	}
)

//Type returns record underlying reflect type
func (t *Type) Type() reflect.Type {
	return t.rType
}

//Names returns attribute names in struct field order
func (t *Type) Names() []string {
	ret := make([]string, len(t.fields))
	for i, f := range t.fields {
		ret[i] = f.name
	}
	return ret
}

//HasMarker returns true if type declares presence marker
func (t *Type) HasMarker() bool {
	return t.marker != nil
}

func (t *Type) lookup(name string) *field {
	pos, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.fields[pos]
}

//WithValue creates a struct record for supplied struct pointer
func (t *Type) WithValue(value interface{}) (*Struct, error) {
	if actual := reflect.TypeOf(value); actual != reflect.PtrTo(t.rType) {
		return nil, fmt.Errorf("invalid value type: %T, expected *%v", value, t.rType.String())
	}
	if reflect.ValueOf(value).IsNil() {
		return nil, fmt.Errorf("invalid value: nil *%v", t.rType.String())
	}
	return &Struct{recordType: t, value: value, ptr: xunsafe.AsPointer(value)}, nil
}

//NewStruct creates a struct record with a new struct value
func (t *Type) NewStruct() *Struct {
	value := reflect.New(t.rType).Interface()
	return &Struct{recordType: t, value: value, ptr: xunsafe.AsPointer(value)}
}

//NewType creates struct record type, attribute names are resolved with datecast.FieldName
func NewType(rType reflect.Type) (*Type, error) {
	if rType = ensureStruct(rType); rType == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	ret := &Type{rType: rType, index: map[string]int{}}
	byGoName := map[string]int{}
	var holder *reflect.StructField
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		if IsSetMarker(structField.Tag) {
			holder = &structField
			continue
		}
		if !isSupported(structField) {
			continue
		}
		name := datecast.FieldName(structField)
		if _, ok := ret.index[name]; ok {
			return nil, fmt.Errorf("duplicate attribute %v in %v", name, rType.String())
		}
		pos := len(ret.fields)
		ret.fields = append(ret.fields, &field{
			name:   name,
			xField: xunsafe.NewField(structField),
			setter: lookupSetter(structField.Type),
			pos:    pos,
		})
		ret.index[name] = pos
		byGoName[structField.Name] = pos
	}
	if holder != nil {
		marker, err := newMarker(*holder, byGoName)
		if err != nil {
			return nil, fmt.Errorf("invalid %v marker: %w", rType.String(), err)
		}
		ret.marker = marker
	}
	return ret, nil
}

func isSupported(structField reflect.StructField) bool {
	if structField.PkgPath != "" || structField.Anonymous {
		return false
	}
	if column := structField.Tag.Get(datecast.ColumnTag); column == "-" {
		return false
	}
	switch structField.Type.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return false
	}
	return true
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
