package schema

const (
	JsonTypeBoolean = "boolean"
	JsonTypeInteger = "integer"
	JsonTypeFloat   = "float"
	JsonTypeString  = "string"
	JsonTypeArray   = "array"
	JsonTypeObject  = "object"

	AccessRead      = "R"
	AccessWrite     = "W"
	AccessReadWrite = "R/W"
)

type MessageDefinition struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Source      string `yaml:"source"`
	Example     string `yaml:"example"`
}

// A single entry of a Home Assistant config block
type ConfigEntry struct {
	Key   string
	Value any
}

// Home Assistant discovery settings of a property
type HomeAssistant struct {
	Component string

	// discovery payload entries in definition order
	Config []ConfigEntry
}

// Returns the value of a config entry
func (h *HomeAssistant) ConfigValue(key string) (any, bool) {
	if h == nil {
		return nil, false
	}
	for _, entry := range h.Config {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

type PropertyDefinition struct {
	Key         string
	Alias       string
	Title       string
	Description string
	Category    string
	Unit        string
	Rw          string
	JsonType    string
	ItemType    string

	// array index or object field of a child property
	ValueRef string

	// set for child properties
	ParentProperty string

	// nil if the property has no value map
	ValueMap *ValueMap

	ChildProps []*PropertyDefinition

	// nil if the property has no homeAssistant entry
	HomeAssistant *HomeAssistant

	// the definition as JSON compatible values
	Raw map[string]any
}

// The display name, title before alias before key
func (p *PropertyDefinition) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	if p.Alias != "" {
		return p.Alias
	}
	return p.Key
}

func (p *PropertyDefinition) Writable() bool {
	return p.Rw == AccessReadWrite || p.Rw == AccessWrite
}

func (p *PropertyDefinition) HasChildren() bool {
	return len(p.ChildProps) > 0
}
