package datecast

import (
	"fmt"

	"github.com/viant/tagly/format/text"
)

type (
	//Function represents registered accessor or mutator, model is passed explicitly
	Function func(model Model, args ...interface{}) (interface{}, error)

	//Registry maps conventional accessor/mutator names to functions
	Registry map[string]Function
)

//Lookup returns registered function or nil
func (r Registry) Lookup(name string) Function {
	if len(r) == 0 {
		return nil
	}
	return r[name]
}

//AccessorName returns conventional accessor name for a field, i.e. getDueDateAttribute for due_date
func AccessorName(field string) string {
	return "get" + studly(field) + "Attribute"
}

//MutatorName returns conventional mutator name for a field, i.e. setDueDateAttribute for due_date
func MutatorName(field string) string {
	return "set" + studly(field) + "Attribute"
}

func studly(field string) string {
	return text.CaseFormatLowerUnderscore.Format(field, text.CaseFormatUpperCamel)
}

func (c *Caster) buildRegistry() Registry {
	ret := make(Registry, 2*len(c.config.DateFields))
	for _, field := range c.config.DateFields {
		ret[AccessorName(field)] = c.accessor(field)
		ret[MutatorName(field)] = c.mutator(field)
	}
	return ret
}

func (c *Caster) accessor(field string) Function {
	return func(model Model, args ...interface{}) (interface{}, error) {
		return c.get(model, field)
	}
}

func (c *Caster) mutator(field string) Function {
	return func(model Model, args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%v expects 1 argument, but had %v", MutatorName(field), len(args))
		}
		return c.set(model, field, args[0])
	}
}
