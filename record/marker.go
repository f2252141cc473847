package record

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//SetMarkerTag defines presence marker holder tag
	SetMarkerTag = "setMarker"

	presenceMarkerTag = "presenceMarker"
)

//IsSetMarker returns true if struct field holds presence marker
func IsSetMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(SetMarkerTag); ok {
		return true
	}
	_, ok := tag.Lookup(presenceMarkerTag)
	return ok
}

//Marker tracks which record fields have been set, holder is a struct of bool fields named after record fields
type Marker struct {
	holder *xunsafe.Field
	fields []*xunsafe.Field
}

//IsSet returns true if field at position has been set, without holder all fields are considered set
func (m *Marker) IsSet(ptr unsafe.Pointer, pos int) bool {
	if !m.canUseHolder(ptr) {
		return true
	}
	if pos >= len(m.fields) || m.fields[pos] == nil {
		return false
	}
	return m.fields[pos].Bool(m.holder.ValuePointer(ptr))
}

//Set sets field marker
func (m *Marker) Set(ptr unsafe.Pointer, pos int, flag bool) error {
	if !m.canUseHolder(ptr) {
		return fmt.Errorf("holder was empty")
	}
	if pos >= len(m.fields) || m.fields[pos] == nil {
		return fmt.Errorf("field at index %v was missing in set marker", pos)
	}
	m.fields[pos].SetBool(m.holder.ValuePointer(ptr), flag)
	return nil
}

//Covers returns true if field at position has a marker flag
func (m *Marker) Covers(pos int) bool {
	return pos < len(m.fields) && m.fields[pos] != nil
}

func (m *Marker) canUseHolder(ptr unsafe.Pointer) bool {
	return m.holder != nil && !m.holder.IsNil(ptr)
}

func newMarker(holder reflect.StructField, index map[string]int) (*Marker, error) {
	holderType := holder.Type
	for holderType.Kind() == reflect.Ptr {
		holderType = holderType.Elem()
	}
	if holderType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marker holder %v has to be a struct", holder.Name)
	}
	ret := &Marker{holder: xunsafe.NewField(holder), fields: make([]*xunsafe.Field, len(index))}
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		if markerField.Type.Kind() != reflect.Bool {
			return nil, fmt.Errorf("marker field: '%v' has to be bool", markerField.Name)
		}
		pos, ok := index[markerField.Name]
		if !ok {
			return nil, fmt.Errorf("marker field: '%v' does not have corresponding struct field", markerField.Name)
		}
		ret.fields[pos] = xunsafe.NewField(markerField)
	}
	return ret, nil
}
