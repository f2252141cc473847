package datecast

import (
	"fmt"

	ftime "github.com/viant/datecast/format/time"
	"gopkg.in/yaml.v3"
)

const (
	//DefaultSourceFormat defines storage format used when no other format applies
	DefaultSourceFormat = "Y-m-d H:i:s"
	//DefaultDestFormat defines display format
	DefaultDestFormat = "m/d/Y"
)

//Config represents date cast configuration of a record type
type Config struct {
	DateFields    []string          `yaml:"dateFields"`
	SourceFormats map[string]string `yaml:"sourceFormats"`
	AutoParse     bool              `yaml:"autoParse"`
	SourceFormat  string            `yaml:"sourceFormat"`
	DestFormat    string            `yaml:"destFormat"`
}

//LoadConfig loads YAML encoded config
func LoadConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode date cast config: %w", err)
	}
	return ret, nil
}

//Init sets default formats
func (c *Config) Init() {
	if c.SourceFormat == "" {
		c.SourceFormat = DefaultSourceFormat
	}
	if c.DestFormat == "" {
		c.DestFormat = DefaultDestFormat
	}
}

//Validate checks config consistency
func (c *Config) Validate() error {
	index := make(map[string]bool, len(c.DateFields))
	for _, field := range c.DateFields {
		if field == "" {
			return fmt.Errorf("invalid date field: empty name")
		}
		if index[field] {
			return fmt.Errorf("invalid date field: %v was declared more than once", field)
		}
		index[field] = true
	}
	for field, format := range c.SourceFormats {
		if !index[field] {
			return fmt.Errorf("invalid source format: %v is not a date field", field)
		}
		if format == "" {
			return fmt.Errorf("invalid source format: %v format was empty", field)
		}
	}
	return nil
}

//IsDateField returns true if field is subject to date cast
func (c *Config) IsDateField(name string) bool {
	for _, field := range c.DateFields {
		if field == name {
			return true
		}
	}
	return false
}

type (
	//layout represents format resolved to formatting and parsing time layouts
	layout struct {
		format string
		parse  string
	}

	//layouts represents config formats resolved to time layouts
	layouts struct {
		source layout
		dest   layout
		fields map[string]layout
	}
)

func newLayout(format string) layout {
	return layout{format: ftime.Layout(format), parse: ftime.ParseLayout(format)}
}

func (c *Config) layouts() *layouts {
	ret := &layouts{
		source: newLayout(c.SourceFormat),
		dest:   newLayout(c.DestFormat),
		fields: make(map[string]layout, len(c.SourceFormats)),
	}
	for field, format := range c.SourceFormats {
		ret.fields[field] = newLayout(format)
	}
	return ret
}
