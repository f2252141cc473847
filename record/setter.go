package record

import (
	"fmt"
	"math"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/xunsafe"
)

type setter func(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error

var (
	stringType    = reflect.TypeOf("")
	stringPtrType = reflect.PtrTo(stringType)
	bytesType     = reflect.TypeOf([]byte{})
	timeType      = reflect.TypeOf(time.Time{})
	timePtrType   = reflect.PtrTo(timeType)
)

func lookupSetter(fieldType reflect.Type) setter {
	switch fieldType {
	case stringType:
		return setString
	case stringPtrType:
		return setStringPtr
	case bytesType:
		return setBytes
	case timeType:
		return setTime
	case timePtrType:
		return setTimePtr
	}
	return setAny(fieldType)
}

func setString(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		field.SetString(ptr, "")
	case string:
		field.SetString(ptr, actual)
	case *string:
		if actual == nil {
			field.SetString(ptr, "")
			return nil
		}
		field.SetString(ptr, *actual)
	case []byte:
		field.SetString(ptr, string(actual))
	default:
		return fmt.Errorf("unable to set %v with %T", field.Name, value)
	}
	return nil
}

func setStringPtr(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		field.SetValue(ptr, (*string)(nil))
	case string:
		field.SetValue(ptr, &actual)
	case *string:
		field.SetValue(ptr, actual)
	case []byte:
		text := string(actual)
		field.SetValue(ptr, &text)
	default:
		return fmt.Errorf("unable to set %v with %T", field.Name, value)
	}
	return nil
}

func setBytes(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		field.SetValue(ptr, []byte(nil))
	case string:
		field.SetValue(ptr, []byte(actual))
	case []byte:
		field.SetValue(ptr, actual)
	default:
		return fmt.Errorf("unable to set %v with %T", field.Name, value)
	}
	return nil
}

func setTime(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		field.SetValue(ptr, time.Time{})
	case time.Time:
		field.SetValue(ptr, actual)
	case *time.Time:
		if actual == nil {
			field.SetValue(ptr, time.Time{})
			return nil
		}
		field.SetValue(ptr, *actual)
	default:
		return fmt.Errorf("unable to set %v(time.Time) with %T", field.Name, value)
	}
	return nil
}

func setTimePtr(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	switch actual := value.(type) {
	case nil:
		field.SetValue(ptr, (*time.Time)(nil))
	case time.Time:
		field.SetValue(ptr, &actual)
	case *time.Time:
		field.SetValue(ptr, actual)
	default:
		return fmt.Errorf("unable to set %v(*time.Time) with %T", field.Name, value)
	}
	return nil
}

func setAny(fieldType reflect.Type) setter {
	zero := reflect.Zero(fieldType).Interface()
	return func(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
		if value == nil {
			field.SetValue(ptr, zero)
			return nil
		}
		if reflect.TypeOf(value) == fieldType {
			field.SetValue(ptr, value)
			return nil
		}
		converted, err := convertNumber(value, fieldType)
		if err != nil {
			return fmt.Errorf("unable to set %v(%v) with %T: %w", field.Name, fieldType.String(), value, err)
		}
		field.SetValue(ptr, converted)
		return nil
	}
}

//convertNumber converts between numeric kinds, float values converted to integers have to be whole
func convertNumber(value interface{}, target reflect.Type) (interface{}, error) {
	source := reflect.ValueOf(value)
	if !isNumber(source.Kind()) || !isNumber(target.Kind()) {
		return nil, fmt.Errorf("incompatible type")
	}
	if isFloat(source.Kind()) && !isFloat(target.Kind()) {
		f := source.Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%v is not a whole number", f)
		}
	}
	return source.Convert(target).Interface(), nil
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}
