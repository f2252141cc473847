package record

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/datecast"
)

type invoiceHas struct {
	ID        bool
	DueDate   bool
	PaidAt    bool
	Signature bool
	Created   bool
}

type invoice struct {
	ID        int
	DueDate   string  `datecast:""`
	PaidAt    *string `datecast:"Y-m-d" db:"paid_on"`
	Signature []byte
	Created   time.Time
	internal  string
	Has       *invoiceHas `setMarker:"true"`
}

func TestNewType(t *testing.T) {
	var testCases = []struct {
		description string
		rType       reflect.Type
		names       []string
		hasMarker   bool
		hasError    bool
	}{
		{
			description: "struct with marker",
			rType:       reflect.TypeOf(&invoice{}),
			names:       []string{"id", "due_date", "paid_on", "signature", "created"},
			hasMarker:   true,
		},
		{
			description: "struct without marker",
			rType: reflect.TypeOf(struct {
				ID      int
				Ignored string `db:"-"`
				Any     interface{}
			}{}),
			names: []string{"id"},
		},
		{
			description: "marker with unknown field",
			rType: reflect.TypeOf(struct {
				ID  int
				Has *struct{ Name bool } `setMarker:"true"`
			}{}),
			hasError: true,
		},
		{
			description: "duplicate attribute",
			rType: reflect.TypeOf(struct {
				ID    int
				Other int `db:"id"`
			}{}),
			hasError: true,
		},
		{
			description: "not a struct",
			rType:       reflect.TypeOf(1),
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := NewType(testCase.rType)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.names, actual.Names(), testCase.description)
		assert.Equal(t, testCase.hasMarker, actual.HasMarker(), testCase.description)
	}
}

func TestStruct_Attribute(t *testing.T) {
	recordType, err := NewType(reflect.TypeOf(invoice{}))
	require.Nil(t, err)

	paidAt := "2021-03-06"
	value := &invoice{ID: 1, DueDate: "2021-03-05 00:00:00", PaidAt: &paidAt, Has: &invoiceHas{ID: true, PaidAt: true}}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	actual, ok := record.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, 1, actual)

	_, ok = record.Attribute("due_date")
	assert.False(t, ok, "due_date was not flagged by marker")

	actual, ok = record.Attribute("paid_on")
	assert.True(t, ok)
	assert.Equal(t, &paidAt, actual)

	_, ok = record.Attribute("unknown")
	assert.False(t, ok)
	assert.Equal(t, map[string]interface{}{"id": 1, "paid_on": &paidAt}, record.Attributes())

	value.Has = nil
	_, ok = record.Attribute("due_date")
	assert.True(t, ok, "without marker holder all fields are set")
}

func TestStruct_SetAttribute(t *testing.T) {
	recordType, err := NewType(reflect.TypeOf(invoice{}))
	require.Nil(t, err)
	value := &invoice{Has: &invoiceHas{}}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	created := time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)
	require.Nil(t, record.SetAttribute("id", 7))
	require.Nil(t, record.SetAttribute("due_date", "2021-03-05 00:00:00"))
	require.Nil(t, record.SetAttribute("paid_on", "2021-03-06"))
	require.Nil(t, record.SetAttribute("signature", "abc"))
	require.Nil(t, record.SetAttribute("created", created))

	assert.Equal(t, 7, value.ID)
	assert.Equal(t, "2021-03-05 00:00:00", value.DueDate)
	require.NotNil(t, value.PaidAt)
	assert.Equal(t, "2021-03-06", *value.PaidAt)
	assert.Equal(t, []byte("abc"), value.Signature)
	assert.True(t, created.Equal(value.Created))
	assert.Equal(t, invoiceHas{ID: true, DueDate: true, PaidAt: true, Signature: true, Created: true}, *value.Has)

	require.Nil(t, record.SetAttribute("paid_on", nil))
	assert.Nil(t, value.PaidAt)
	require.Nil(t, record.SetAttribute("id", nil))
	assert.Equal(t, 0, value.ID)

	assert.NotNil(t, record.SetAttribute("id", "7"))
	assert.NotNil(t, record.SetAttribute("due_date", 1))
	assert.NotNil(t, record.SetAttribute("internal", "x"))
}

func TestType_WithValue(t *testing.T) {
	recordType, err := NewType(reflect.TypeOf(invoice{}))
	require.Nil(t, err)
	_, err = recordType.WithValue(invoice{})
	assert.NotNil(t, err)
	_, err = recordType.WithValue((*invoice)(nil))
	assert.NotNil(t, err)
	record := recordType.NewStruct()
	assert.IsType(t, &invoice{}, record.Value())
}

func TestStruct_WithCaster(t *testing.T) {
	config, err := datecast.ConfigFromType(reflect.TypeOf(invoice{}))
	require.Nil(t, err)
	caster, err := datecast.New(*config)
	require.Nil(t, err)
	recordType, err := NewType(reflect.TypeOf(invoice{}))
	require.Nil(t, err)

	value := &invoice{Has: &invoiceHas{}}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	actual, err := caster.Get(record, "due_date")
	require.Nil(t, err)
	assert.Nil(t, actual)
	actual, err = caster.Get(record, "paid_on")
	require.Nil(t, err)
	assert.Nil(t, actual)

	_, err = caster.Resolve(record, "setDueDateAttribute", "03/05/2021")
	require.Nil(t, err)
	_, err = caster.Set(record, "paid_on", "03/06/2021")
	require.Nil(t, err)
	assert.Equal(t, "2021-03-05 00:00:00", value.DueDate)
	require.NotNil(t, value.PaidAt)
	assert.Equal(t, "2021-03-06", *value.PaidAt)
	assert.True(t, value.Has.DueDate)

	actual, err = caster.Resolve(record, "getPaidOnAttribute")
	require.Nil(t, err)
	assert.Equal(t, "03/06/2021", actual)
	actual, err = caster.Get(record, "due_date")
	require.Nil(t, err)
	assert.Equal(t, "03/05/2021", actual)
}

type shipment struct {
	ID        int
	Created   time.Time  `datecast:""`
	Delivered *time.Time `datecast:"Y-m-d"`
}

func TestStruct_TimeFieldWithCaster(t *testing.T) {
	config, err := datecast.ConfigFromType(reflect.TypeOf(shipment{}))
	require.Nil(t, err)
	caster, err := datecast.New(*config)
	require.Nil(t, err)
	recordType, err := NewType(reflect.TypeOf(shipment{}))
	require.Nil(t, err)
	value := &shipment{}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	assert.True(t, record.IsTimeAttribute("created"))
	assert.True(t, record.IsTimeAttribute("delivered"))
	assert.False(t, record.IsTimeAttribute("id"))
	assert.False(t, record.IsTimeAttribute("unknown"))

	actual, err := caster.Get(record, "created")
	require.Nil(t, err)
	assert.Nil(t, actual)

	_, err = caster.Set(record, "created", "03/05/2021")
	require.Nil(t, err)
	assert.True(t, time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC).Equal(value.Created))
	actual, err = caster.Get(record, "created")
	require.Nil(t, err)
	assert.Equal(t, "03/05/2021", actual)

	_, err = caster.Resolve(record, "setDeliveredAttribute", "3/6/2021")
	require.Nil(t, err)
	require.NotNil(t, value.Delivered)
	assert.True(t, time.Date(2021, 3, 6, 0, 0, 0, 0, time.UTC).Equal(*value.Delivered))
	actual, err = caster.Resolve(record, "getDeliveredAttribute")
	require.Nil(t, err)
	assert.Equal(t, "03/06/2021", actual)

	_, err = caster.Set(record, "delivered", nil)
	require.Nil(t, err)
	assert.Nil(t, value.Delivered)
	actual, err = caster.Get(record, "delivered")
	require.Nil(t, err)
	assert.Nil(t, actual)
}

func TestStruct_SetAttributeWithPartialMarker(t *testing.T) {
	type entityHas struct {
		ID bool
	}
	type entity struct {
		ID      int
		DueDate string      `datecast:""`
		Has     *entityHas `setMarker:"true"`
	}
	config, err := datecast.ConfigFromType(reflect.TypeOf(entity{}))
	require.Nil(t, err)
	caster, err := datecast.New(*config)
	require.Nil(t, err)
	recordType, err := NewType(reflect.TypeOf(entity{}))
	require.Nil(t, err)
	value := &entity{Has: &entityHas{}}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	require.Nil(t, record.SetAttribute("id", 5))
	assert.True(t, value.Has.ID)

	assert.NotNil(t, record.SetAttribute("due_date", "2021-03-05 00:00:00"))
	assert.Equal(t, "", value.DueDate)
	_, err = caster.Set(record, "due_date", "03/05/2021")
	assert.NotNil(t, err)
	assert.Equal(t, "", value.DueDate)

	value.Has = nil
	_, err = caster.Set(record, "due_date", "03/05/2021")
	require.Nil(t, err)
	actual, err := caster.Get(record, "due_date")
	require.Nil(t, err)
	assert.Equal(t, "03/05/2021", actual)
}

func TestStruct_SetNumericAttribute(t *testing.T) {
	type entity struct {
		ID    int
		Total float32
		Count uint8
	}
	recordType, err := NewType(reflect.TypeOf(entity{}))
	require.Nil(t, err)
	value := &entity{}
	record, err := recordType.WithValue(value)
	require.Nil(t, err)

	require.Nil(t, record.SetAttribute("id", float64(3)))
	assert.Equal(t, 3, value.ID)
	require.Nil(t, record.SetAttribute("id", int64(4)))
	assert.Equal(t, 4, value.ID)
	require.Nil(t, record.SetAttribute("total", 2.5))
	assert.Equal(t, float32(2.5), value.Total)
	require.Nil(t, record.SetAttribute("count", 7))
	assert.Equal(t, uint8(7), value.Count)

	assert.NotNil(t, record.SetAttribute("id", 2.5))
	assert.NotNil(t, record.SetAttribute("id", "3"))
	assert.Equal(t, 4, value.ID)
}
