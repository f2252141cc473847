package record

import (
	"fmt"
	"unsafe"
)

//Struct represents struct backed record
type Struct struct {
	recordType *Type
	value      interface{}
	ptr        unsafe.Pointer
}

//Type returns record type
func (s *Struct) Type() *Type {
	return s.recordType
}

//Value returns underlying struct pointer
func (s *Struct) Value() interface{} {
	return s.value
}

//Attribute returns field value, fields not flagged by presence marker are reported as absent
func (s *Struct) Attribute(name string) (interface{}, bool) {
	f := s.recordType.lookup(name)
	if f == nil || !s.isSet(f) {
		return nil, false
	}
	return f.xField.Value(s.ptr), true
}

//SetAttribute sets field value and flags it with presence marker
func (s *Struct) SetAttribute(name string, value interface{}) error {
	f := s.recordType.lookup(name)
	if f == nil {
		return fmt.Errorf("failed to lookup attribute %v at %s", name, s.recordType.rType.String())
	}
	marker := s.recordType.marker
	useMarker := marker != nil && marker.canUseHolder(s.ptr)
	if useMarker && !marker.Covers(f.pos) {
		return fmt.Errorf("failed to set %v at %s: presence marker has no %v field", name, s.recordType.rType.String(), f.xField.Name)
	}
	if err := f.setter(f.xField, s.ptr, value); err != nil {
		return err
	}
	if useMarker {
		return marker.Set(s.ptr, f.pos, true)
	}
	return nil
}

//IsTimeAttribute returns true if attribute field is time.Time or *time.Time
func (s *Struct) IsTimeAttribute(name string) bool {
	f := s.recordType.lookup(name)
	if f == nil {
		return false
	}
	fieldType := f.xField.Type
	return fieldType == timeType || fieldType == timePtrType
}

//Attributes returns values of fields that are set
func (s *Struct) Attributes() map[string]interface{} {
	ret := make(map[string]interface{}, len(s.recordType.fields))
	for _, f := range s.recordType.fields {
		if !s.isSet(f) {
			continue
		}
		ret[f.name] = f.xField.Value(s.ptr)
	}
	return ret
}

func (s *Struct) isSet(f *field) bool {
	marker := s.recordType.marker
	if marker == nil {
		return true
	}
	return marker.IsSet(s.ptr, f.pos)
}
