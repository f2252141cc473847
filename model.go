package datecast

type (
	//Model represents a host record holding raw stored attributes
	Model interface {
		//Attribute returns raw stored value, false if attribute is absent
		Attribute(name string) (interface{}, bool)
		//SetAttribute stores raw value
		SetAttribute(name string, value interface{}) error
	}

	//Lister is implemented by models able to enumerate raw attributes
	Lister interface {
		Model
		Attributes() map[string]interface{}
	}

	//TimeAttributes is implemented by models storing some attributes as time values,
	//date fields reported here are stored as time.Time instead of storage formatted text
	TimeAttributes interface {
		IsTimeAttribute(name string) bool
	}

	//Accessors is implemented by models declaring their own accessors and mutators
	Accessors interface {
		HasGetMutator(name string) bool
		HasSetMutator(name string) bool
		MutatedAttributes() []string
	}

	//Query represents a query builder receiving forwarded method calls
	Query interface {
		Call(method string, args ...interface{}) (interface{}, error)
	}

	//Querier is implemented by models able to create a query for their type
	Querier interface {
		NewQuery() Query
	}

	//Counter is implemented by models handling increment and decrement natively
	Counter interface {
		Increment(args ...interface{}) (interface{}, error)
		Decrement(args ...interface{}) (interface{}, error)
	}
)

const (
	methodIncrement = "increment"
	methodDecrement = "decrement"
)
