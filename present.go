package datecast

import "sort"

//Attributes returns model attributes with date fields in display format
func (c *Caster) Attributes(model Lister) (map[string]interface{}, error) {
	raw := model.Attributes()
	ret := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		ret[k] = v
	}
	for _, field := range c.config.DateFields {
		if _, ok := raw[field]; !ok {
			continue
		}
		value, err := c.get(model, field)
		if err != nil {
			return nil, err
		}
		ret[field] = value
	}
	return ret, nil
}

//Fill assigns attributes to the model, date fields are converted to storage format
func (c *Caster) Fill(model Model, attributes map[string]interface{}) error {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := attributes[name]
		if c.config.IsDateField(name) {
			if _, err := c.set(model, name, value); err != nil {
				return err
			}
			continue
		}
		if err := model.SetAttribute(name, value); err != nil {
			return err
		}
	}
	return nil
}
