package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDefinitionSuite(t *testing.T) {
	suite.Run(t, new(DefinitionSuite))
}

type DefinitionSuite struct {
	suite.Suite
}

func (s *DefinitionSuite) Test_LoadEmbedded() {
	def, err := Load(true)
	require.Nil(s.T(), err)

	assert.Contains(s.T(), def.Messages, "hello")
	assert.Contains(s.T(), def.Messages, "authRequired")
	assert.Contains(s.T(), def.Messages, "fullStatus")
	assert.Equal(s.T(), "hello", def.MessageKeys[0])

	amp, ok := def.Property("amp")
	require.True(s.T(), ok)
	assert.Equal(s.T(), JsonTypeInteger, amp.JsonType)
	assert.Equal(s.T(), AccessReadWrite, amp.Rw)
	assert.True(s.T(), amp.Writable())
	assert.Equal(s.T(), "Requested current", amp.DisplayName())

	lmo, _ := def.Property("lmo")
	require.NotNil(s.T(), lmo.ValueMap)
	assert.Equal(s.T(), []string{"3", "4", "5"}, lmo.ValueMap.Keys())
	assert.Equal(s.T(), []string{"Default", "Eco", "NextTrip"}, lmo.ValueMap.Values())

	// child properties are registered on their own
	v1, ok := def.Property("nrg_v1")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "nrg", v1.ParentProperty)
	assert.Equal(s.T(), AccessRead, v1.Rw)
	assert.Equal(s.T(), JsonTypeFloat, v1.JsonType)
	assert.Equal(s.T(), "Status", v1.Category)
	assert.Equal(s.T(), "This is a child property of 'nrg'. See its description for more information.", v1.Description)
	assert.Equal(s.T(), "0", v1.ValueRef)
	assert.Contains(s.T(), def.SplitProperties, "nrg_ptotal")

	nrg, _ := def.Property("nrg")
	assert.Len(s.T(), nrg.ChildProps, 12)
	assert.Equal(s.T(), v1, nrg.ChildProps[0])

	unit, ok := v1.HomeAssistant.ConfigValue("unit_of_measurement")
	assert.True(s.T(), ok)
	assert.Equal(s.T(), "V", unit)

	// explicit child fields win over the inherited ones
	ip, _ := def.Property("ccw_ip")
	assert.Equal(s.T(), JsonTypeString, ip.JsonType)

	assert.Equal(s.T(), JsonTypeBoolean, def.JsonType("alw"))
	assert.Equal(s.T(), "", def.JsonType("unknown"))
}

func (s *DefinitionSuite) Test_LoadWithoutSplit() {
	def, err := Load(false)
	require.Nil(s.T(), err)

	assert.Empty(s.T(), def.SplitProperties)
	_, ok := def.Property("nrg_v1")
	assert.False(s.T(), ok)

	nrg, _ := def.Property("nrg")
	assert.Len(s.T(), nrg.ChildProps, 12)
}

func (s *DefinitionSuite) Test_StructureValidation() {
	tests := []struct {
		yaml    string
		message string
	}{
		{"- a\n- b\n", "wattpilot.yaml must define a mapping at top level"},
		{"properties:\n  - key: amp\n", "wattpilot.yaml must contain a list 'messages'"},
		{"messages: bad\nproperties:\n  - key: amp\n", "wattpilot.yaml must contain a list 'messages'"},
		{"messages:\n  - key: hello\n", "wattpilot.yaml must contain a list 'properties'"},
		{"messages:\n  - key: hello\nproperties: bad\n", "wattpilot.yaml must contain a list 'properties'"},
		{"messages:\n  - type: hello\nproperties:\n  - key: amp\n", "Each message entry must be a mapping with a 'key'"},
		{"messages:\n  - hello\nproperties:\n  - key: amp\n", "Each message entry must be a mapping with a 'key'"},
		{"messages:\n  - key: hello\nproperties:\n  - name: amp\n", "Each property entry must be a mapping with a 'key'"},
		{"messages:\n  - key: hello\nproperties:\n  - key: nrg\n    childProps: bad\n", "'childProps' must be a list when present"},
		{"", "wattpilot.yaml must contain a list 'messages'"},
	}

	for _, tc := range tests {
		_, err := Parse([]byte(tc.yaml), true)
		require.NotNil(s.T(), err, tc.yaml)
		assert.True(s.T(), errors.Is(err, ErrInvalidDefinition))
		assert.Contains(s.T(), err.Error(), tc.message)
	}
}

func (s *DefinitionSuite) Test_SchemaValidation() {
	_, err := Parse([]byte("messages:\n  - key: hello\nproperties:\n  - key: amp\n    jsonType: number\n"), true)
	assert.True(s.T(), errors.Is(err, ErrInvalidDefinition))

	_, err = Parse([]byte("messages:\n  - key: hello\nproperties:\n  - key: amp\n    rw: RW\n"), true)
	assert.True(s.T(), errors.Is(err, ErrInvalidDefinition))

	_, err = Parse([]byte("messages:\n  - key: hello\nproperties:\n  - key: amp\n    rw: R/W\n    jsonType: integer\n"), true)
	assert.Nil(s.T(), err)
}

func (s *DefinitionSuite) Test_DuplicateKeys() {
	data := `
messages:
  - key: hello
properties:
  - key: amp
    title: first
  - key: amp
    title: second
  - key: nrg
    jsonType: array
    childProps:
      - key: amp
        valueRef: 0
`
	def, err := Parse([]byte(data), true)
	require.Nil(s.T(), err)

	amp, _ := def.Property("amp")
	assert.Equal(s.T(), "first", amp.Title)
	assert.Equal(s.T(), []string{"amp", "nrg"}, def.PropertyKeys)
	assert.Empty(s.T(), def.SplitProperties)
}

func (s *DefinitionSuite) Test_HomeAssistantBlock() {
	data := `
messages:
  - key: hello
properties:
  - key: amp
    homeAssistant:
  - key: lmo
    homeAssistant:
      component: select
      config:
        icon: mdi:cog
        enabled_by_default: false
        min: 6
  - key: fna
`
	def, err := Parse([]byte(data), true)
	require.Nil(s.T(), err)

	amp, _ := def.Property("amp")
	assert.NotNil(s.T(), amp.HomeAssistant)
	assert.Empty(s.T(), amp.HomeAssistant.Config)

	lmo, _ := def.Property("lmo")
	assert.Equal(s.T(), "select", lmo.HomeAssistant.Component)
	assert.Equal(s.T(), []ConfigEntry{
		{Key: "icon", Value: "mdi:cog"},
		{Key: "enabled_by_default", Value: false},
		{Key: "min", Value: int64(6)},
	}, lmo.HomeAssistant.Config)

	fna, _ := def.Property("fna")
	assert.Nil(s.T(), fna.HomeAssistant)
	_, ok := fna.HomeAssistant.ConfigValue("icon")
	assert.False(s.T(), ok)
}

func (s *DefinitionSuite) Test_ChildValue() {
	def, err := Load(true)
	require.Nil(s.T(), err)

	values := map[string]any{
		"nrg": []any{int64(230), int64(231), int64(232)},
		"ccw": map[string]any{"ssid": "home", "ip": "192.168.1.10"},
	}

	assert.Equal(s.T(), int64(230), def.ChildValue(values, "nrg_v1"))
	assert.Equal(s.T(), int64(232), def.ChildValue(values, "nrg_v3"))
	// index out of range
	assert.Nil(s.T(), def.ChildValue(values, "nrg_ptotal"))
	assert.Equal(s.T(), "home", def.ChildValue(values, "ccw_ssid"))
	assert.Equal(s.T(), "192.168.1.10", def.ChildValue(values, "ccw_ip"))

	// no parent value
	assert.Nil(s.T(), def.ChildValue(map[string]any{}, "nrg_v1"))
	// not a child
	assert.Nil(s.T(), def.ChildValue(values, "amp"))
	// unknown
	assert.Nil(s.T(), def.ChildValue(values, "unknown"))
	// missing field
	assert.Nil(s.T(), def.ChildValue(map[string]any{"ccw": map[string]any{}}, "ccw_ip"))
}

func (s *DefinitionSuite) Test_ResolveChildWithoutSplit() {
	def, err := Load(false)
	require.Nil(s.T(), err)

	nrg, ok := def.Property("nrg")
	require.True(s.T(), ok)
	require.True(s.T(), nrg.HasChildren())

	values := map[string]any{"nrg": []any{int64(230), int64(231)}}

	// not registered, but resolvable through the parent
	assert.Nil(s.T(), def.ChildValue(values, nrg.ChildProps[1].Key))
	assert.Equal(s.T(), int64(231), def.ResolveChild(nrg.ChildProps[1], values))
}

func (s *DefinitionSuite) Test_AllProperties() {
	def, err := Load(true)
	require.Nil(s.T(), err)

	values := map[string]any{
		"amp": int64(16),
		"nrg": []any{int64(230), int64(231), int64(232)},
	}

	all := def.AllProperties(values, true)
	assert.Equal(s.T(), int64(16), all["amp"])
	assert.Equal(s.T(), int64(231), all["nrg_v2"])
	assert.Contains(s.T(), all, "nrg_ptotal")
	assert.Nil(s.T(), all["nrg_ptotal"])
	assert.NotContains(s.T(), all, "lmo")

	all = def.AllProperties(values, false)
	assert.Len(s.T(), all, len(def.Properties))
	assert.Contains(s.T(), all, "lmo")
	assert.Nil(s.T(), all["lmo"])
	assert.Equal(s.T(), int64(16), all["amp"])
}

func TestValueMap(t *testing.T) {
	vm := NewValueMap()
	vm.Add("0", "Open")
	vm.Add("1", "Wait")
	vm.Add("0", "Closed")

	assert.Equal(t, 2, vm.Len())
	value, ok := vm.Get("0")
	assert.True(t, ok)
	assert.Equal(t, "Open", value)

	key, ok := vm.Reverse("Wait")
	assert.True(t, ok)
	assert.Equal(t, "1", key)

	_, ok = vm.Reverse("Closed")
	assert.False(t, ok)
}
