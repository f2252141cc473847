package record

import (
	"sort"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/datecast"
)

//attributes represents JSON object of record attributes
type attributes map[string]interface{}

func (a attributes) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch actual := a[k].(type) {
		case nil:
			enc.NullKey(k)
		case string:
			enc.StringKey(k, actual)
		case *string:
			if actual == nil {
				enc.NullKey(k)
				continue
			}
			enc.StringKey(k, *actual)
		case []byte:
			enc.StringKey(k, string(actual))
		case int:
			enc.IntKey(k, actual)
		case int64:
			enc.Int64Key(k, actual)
		case float64:
			enc.Float64Key(k, actual)
		case bool:
			enc.BoolKey(k, actual)
		case time.Time:
			enc.StringKey(k, actual.Format(time.RFC3339))
		default:
			enc.AddInterfaceKey(k, actual)
		}
	}
}

func (a attributes) IsNil() bool {
	return a == nil
}

func (a attributes) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	a[key] = value
	return nil
}

func (a attributes) NKeys() int {
	return 0
}

//MarshalJSON encodes record attributes, date fields are rendered in display format
func MarshalJSON(caster *datecast.Caster, model datecast.Lister) ([]byte, error) {
	values, err := caster.Attributes(model)
	if err != nil {
		return nil, err
	}
	return gojay.MarshalJSONObject(attributes(values))
}

//UnmarshalJSON decodes JSON object into record, date fields are expected in display format
func UnmarshalJSON(caster *datecast.Caster, model datecast.Model, data []byte) error {
	values := attributes{}
	if err := gojay.UnmarshalJSONObject(data, values); err != nil {
		return err
	}
	return caster.Fill(model, values)
}
