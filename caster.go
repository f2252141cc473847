package datecast

import (
	"fmt"
	"sync"
)

//Caster casts configured record date fields between storage and display formats,
//use New to create it
type Caster struct {
	config   Config
	layouts  *layouts
	options  options
	once     sync.Once
	registry Registry
}

//Config returns caster config
func (c *Caster) Config() Config {
	return c.config
}

//Registry returns function registry, it is built on first use
func (c *Caster) Registry() Registry {
	c.once.Do(func() {
		c.registry = c.buildRegistry()
		if hook := c.options.registryHook; hook != nil {
			hook(c.registry)
		}
	})
	return c.registry
}

//Lookup returns registered accessor or mutator
func (c *Caster) Lookup(method string) Function {
	return c.Registry().Lookup(method)
}

//Resolve dispatches method call: registered accessor/mutator first, then native
//increment/decrement, then query forwarding
func (c *Caster) Resolve(model Model, method string, args ...interface{}) (interface{}, error) {
	if fn := c.Lookup(method); fn != nil {
		return fn(model, args...)
	}
	return c.forward(model, method, args)
}

func (c *Caster) forward(model Model, method string, args []interface{}) (interface{}, error) {
	if counter, ok := model.(Counter); ok {
		switch method {
		case methodIncrement:
			return counter.Increment(args...)
		case methodDecrement:
			return counter.Decrement(args...)
		}
	}
	querier, ok := model.(Querier)
	if !ok {
		return nil, fmt.Errorf("failed to call %v on %T: %w", method, model, ErrMethodNotFound)
	}
	return querier.NewQuery().Call(method, args...)
}

//HasGetAccessor returns true if model declares get mutator or field is a date field
func (c *Caster) HasGetAccessor(model Model, field string) bool {
	if accessors, ok := model.(Accessors); ok && accessors.HasGetMutator(field) {
		return true
	}
	return c.config.IsDateField(field)
}

//HasSetAccessor returns true if model declares set mutator or field is a date field
func (c *Caster) HasSetAccessor(model Model, field string) bool {
	if accessors, ok := model.(Accessors); ok && accessors.HasSetMutator(field) {
		return true
	}
	return c.config.IsDateField(field)
}

//MutatedAttributeNames returns model mutated attributes merged with date fields
func (c *Caster) MutatedAttributeNames(model Model) []string {
	var native []string
	if accessors, ok := model.(Accessors); ok {
		native = accessors.MutatedAttributes()
	}
	ret := make([]string, 0, len(native)+len(c.config.DateFields))
	seen := make(map[string]bool, cap(ret))
	for _, names := range [][]string{native, c.config.DateFields} {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			ret = append(ret, name)
		}
	}
	return ret
}

//Get returns date field value in display format, nil if value was not stored
func (c *Caster) Get(model Model, field string) (interface{}, error) {
	if !c.config.IsDateField(field) {
		return nil, fmt.Errorf("failed to get %v: %w", field, ErrNotDateField)
	}
	return c.get(model, field)
}

//Set converts display formatted value to storage format and stores it, returns stored value
func (c *Caster) Set(model Model, field string, value interface{}) (interface{}, error) {
	if !c.config.IsDateField(field) {
		return nil, fmt.Errorf("failed to set %v: %w", field, ErrNotDateField)
	}
	return c.set(model, field, value)
}

func (c *Caster) get(model Model, field string) (interface{}, error) {
	value, ok := model.Attribute(field)
	if !ok || isEmpty(value) {
		return nil, nil
	}
	return c.reformat(field, value, toDisplay)
}

func (c *Caster) set(model Model, field string, value interface{}) (interface{}, error) {
	var stored interface{}
	if holder, ok := model.(TimeAttributes); ok && holder.IsTimeAttribute(field) {
		ts, _, err := c.convert(field, value, toStorage)
		if err != nil {
			return nil, err
		}
		if ts != nil {
			stored = *ts
		}
	} else {
		var err error
		if stored, err = c.reformat(field, value, toStorage); err != nil {
			return nil, err
		}
	}
	if err := model.SetAttribute(field, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

//New creates a caster
func New(config Config, opts ...Option) (*Caster, error) {
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := &Caster{config: config, layouts: config.layouts()}
	ret.options.apply(opts)
	if ret.options.eager {
		ret.Registry()
	}
	return ret, nil
}
