package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed wattpilot.yaml
var definitionYAML []byte

//go:embed property.schema.json
var propertySchemaJSON []byte

var ErrInvalidDefinition = errors.New("invalid api definition")

// The parsed api definition
type Definition struct {
	Config map[string]any

	Messages    map[string]*MessageDefinition
	MessageKeys []string

	Properties   map[string]*PropertyDefinition
	PropertyKeys []string

	// keys of the child properties registered in Properties
	SplitProperties []string
}

// Load the embedded definition
//
// With splitProperties the child properties of arrays and objects are
// registered as properties of their own
func Load(splitProperties bool) (*Definition, error) {
	return Parse(definitionYAML, splitProperties)
}

func Parse(data []byte, splitProperties bool) (*Definition, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	root, err := validateStructure(&document)
	if err != nil {
		return nil, err
	}

	validator, err := compilePropertySchema()
	if err != nil {
		return nil, err
	}

	def := &Definition{
		Config:     map[string]any{},
		Messages:   make(map[string]*MessageDefinition),
		Properties: make(map[string]*PropertyDefinition),
	}

	if config := mappingValue(root, "config"); config != nil {
		if values, ok := nodeValue(config).(map[string]any); ok {
			def.Config = values
		}
	}

	for _, node := range mappingValue(root, "messages").Content {
		msg := &MessageDefinition{}
		if err := node.Decode(msg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		if _, ok := def.Messages[msg.Key]; !ok {
			def.MessageKeys = append(def.MessageKeys, msg.Key)
		}
		def.Messages[msg.Key] = msg
	}

	for _, node := range mappingValue(root, "properties").Content {
		pd, err := parseProperty(node, validator)
		if err != nil {
			return nil, err
		}
		def.addProperty(pd)

		for i, childNode := range pd.childNodes {
			child, err := parseProperty(childNode, nil)
			if err != nil {
				return nil, err
			}
			child.inheritFrom(pd)
			pd.ChildProps[i] = child.PropertyDefinition

			if splitProperties && def.addProperty(child) {
				def.SplitProperties = append(def.SplitProperties, child.Key)
			}
		}
	}

	return def, nil
}

// returns false if the key is already defined
func (d *Definition) addProperty(pd *parsedProperty) bool {
	if _, ok := d.Properties[pd.Key]; ok {
		logging.Log().Warnf("About to add duplicate key %s to dictionary - skipping!", pd.Key)
		return false
	}

	d.Properties[pd.Key] = pd.PropertyDefinition
	d.PropertyKeys = append(d.PropertyKeys, pd.Key)
	return true
}

func (d *Definition) Property(key string) (*PropertyDefinition, bool) {
	pd, ok := d.Properties[key]
	return pd, ok
}

func (d *Definition) Message(key string) (*MessageDefinition, bool) {
	md, ok := d.Messages[key]
	return md, ok
}

// Returns the JSON type of the property, empty if unknown
func (d *Definition) JsonType(key string) string {
	if pd, ok := d.Properties[key]; ok {
		return pd.JsonType
	}
	return ""
}

// Resolve the value of a child property from the value of its parent
func (d *Definition) ChildValue(values map[string]any, childKey string) any {
	cpd, ok := d.Properties[childKey]
	if !ok {
		return nil
	}

	return d.ResolveChild(cpd, values)
}

// Resolve the value of a child property, also if it is not registered
// as a property of its own
func (d *Definition) ResolveChild(cpd *PropertyDefinition, values map[string]any) any {
	if cpd.ParentProperty == "" {
		logging.Log().Warnf("Child property '%s' is not linked to a parent property", cpd.Key)
		return nil
	}

	ppd, ok := d.Properties[cpd.ParentProperty]
	if !ok {
		return nil
	}
	parentValue, ok := values[ppd.Key]
	if !ok || parentValue == nil {
		return nil
	}

	switch ppd.JsonType {
	case JsonTypeArray:
		items, ok := parentValue.([]any)
		if !ok {
			return nil
		}
		index, err := strconv.Atoi(cpd.ValueRef)
		if err != nil || index < 0 || index >= len(items) {
			return nil
		}
		return items[index]

	case JsonTypeObject:
		if fields, ok := parentValue.(map[string]any); ok {
			if value, ok := fields[cpd.ValueRef]; ok {
				return value
			}
		}
		data, _ := json.Marshal(parentValue)
		logging.Log().Warnf("Unable to map child property %s: type=%T, value=%s", cpd.Key, parentValue, string(data))
		return nil
	}

	logging.Log().Warnf("Property %s cannot be split!", ppd.Key)
	return nil
}

// Returns the property values including the values of split child properties
//
// Without availableOnly every defined property is returned, nil if unknown
func (d *Definition) AllProperties(values map[string]any, availableOnly bool) map[string]any {
	if !availableOnly {
		result := make(map[string]any, len(d.Properties))
		for _, key := range d.PropertyKeys {
			result[key] = values[key]
		}
		return result
	}

	result := make(map[string]any, len(values)+len(d.SplitProperties))
	for key, value := range values {
		result[key] = value
	}
	for _, key := range d.SplitProperties {
		result[key] = d.ChildValue(values, key)
	}
	return result
}

/* parsing */

type parsedProperty struct {
	*PropertyDefinition

	childNodes []*yaml.Node

	// the fields set explicitly in the definition
	explicit map[string]bool
}

type propertyFields struct {
	Key         string `yaml:"key"`
	Alias       string `yaml:"alias"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Unit        string `yaml:"unit"`
	Rw          string `yaml:"rw"`
	JsonType    string `yaml:"jsonType"`
	ItemType    string `yaml:"itemType"`
}

func parseProperty(node *yaml.Node, validator *jsonschema.Schema) (*parsedProperty, error) {
	raw, _ := nodeValue(node).(map[string]any)

	if validator != nil {
		if err := validateProperty(validator, raw); err != nil {
			return nil, fmt.Errorf("%w: property %v: %w", ErrInvalidDefinition, raw["key"], err)
		}
	}

	fields := propertyFields{}
	if err := node.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	pd := &parsedProperty{
		PropertyDefinition: &PropertyDefinition{
			Key:         fields.Key,
			Alias:       fields.Alias,
			Title:       fields.Title,
			Description: fields.Description,
			Category:    fields.Category,
			Unit:        fields.Unit,
			Rw:          fields.Rw,
			JsonType:    fields.JsonType,
			ItemType:    fields.ItemType,
			Raw:         raw,
		},
		explicit: make(map[string]bool),
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		pd.explicit[key] = true

		switch key {
		case "valueRef":
			pd.ValueRef = value.Value
		case "valueMap":
			pd.ValueMap = parseValueMap(value)
		case "homeAssistant":
			pd.HomeAssistant = parseHomeAssistant(value)
		case "childProps":
			pd.childNodes = value.Content
			pd.ChildProps = make([]*PropertyDefinition, len(value.Content))
		}
	}

	return pd, nil
}

// fill the fields a child property takes over from its parent
func (p *parsedProperty) inheritFrom(parent *parsedProperty) {
	if !p.explicit["description"] {
		p.Description = fmt.Sprintf("This is a child property of '%s'. See its description for more information.", parent.Key)
	}
	if !p.explicit["category"] {
		p.Category = parent.Category
	}
	if !p.explicit["jsonType"] {
		p.JsonType = parent.ItemType
	}
	p.ParentProperty = parent.Key
	p.Rw = AccessRead
}

func parseValueMap(node *yaml.Node) *ValueMap {
	result := NewValueMap()
	if node.Kind != yaml.MappingNode {
		return result
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		result.Add(node.Content[i].Value, node.Content[i+1].Value)
	}
	return result
}

func parseHomeAssistant(node *yaml.Node) *HomeAssistant {
	result := &HomeAssistant{}
	if node.Kind != yaml.MappingNode {
		return result
	}

	if component := mappingValue(node, "component"); component != nil {
		result.Component = component.Value
	}
	if config := mappingValue(node, "config"); config != nil && config.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(config.Content); i += 2 {
			result.Config = append(result.Config, ConfigEntry{
				Key:   config.Content[i].Value,
				Value: nodeValue(config.Content[i+1]),
			})
		}
	}
	return result
}

func validateStructure(document *yaml.Node) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if document.Kind == yaml.DocumentNode && len(document.Content) > 0 {
		root = document.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: wattpilot.yaml must define a mapping at top level", ErrInvalidDefinition)
	}

	messages := mappingValue(root, "messages")
	if messages == nil || messages.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: wattpilot.yaml must contain a list 'messages'", ErrInvalidDefinition)
	}
	properties := mappingValue(root, "properties")
	if properties == nil || properties.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: wattpilot.yaml must contain a list 'properties'", ErrInvalidDefinition)
	}

	for _, entry := range messages.Content {
		if entry.Kind != yaml.MappingNode || mappingValue(entry, "key") == nil {
			return nil, fmt.Errorf("%w: Each message entry must be a mapping with a 'key'", ErrInvalidDefinition)
		}
	}

	for _, entry := range properties.Content {
		if entry.Kind != yaml.MappingNode || mappingValue(entry, "key") == nil {
			return nil, fmt.Errorf("%w: Each property entry must be a mapping with a 'key'", ErrInvalidDefinition)
		}
		if childProps := mappingValue(entry, "childProps"); childProps != nil && childProps.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: 'childProps' must be a list when present", ErrInvalidDefinition)
		}
	}

	return root, nil
}

func compilePropertySchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(propertySchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("property.schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("property.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}
	return compiled, nil
}

func validateProperty(validator *jsonschema.Schema, raw map[string]any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return validator.Validate(instance)
}

// returns the value node of a mapping entry
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// converts a node into JSON compatible values, mapping keys become strings
func nodeValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return nodeValue(node.Content[0])
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.MappingNode:
		result := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			result[node.Content[i].Value] = nodeValue(node.Content[i+1])
		}
		return result
	case yaml.SequenceNode:
		result := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			result = append(result, nodeValue(item))
		}
		return result
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return node.Value
	}
	if i, ok := value.(int); ok {
		return int64(i)
	}
	return model.NormalizeValue(value)
}
