package mdns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTXT(t *testing.T) {
	var txt []string

	result := parseTxt(txt)
	assert.Equal(t, 0, len(result))

	txt = []string{"test"}
	result = parseTxt(txt)
	assert.Equal(t, 0, len(result))

	txt = []string{"test=more"}
	result = parseTxt(txt)
	assert.Equal(t, 1, len(result))

	txt = []string{"Serial=12345678", "version=38.5=beta"}
	result = parseTxt(txt)
	assert.Equal(t, "12345678", result["serial"])
	assert.Equal(t, "38.5=beta", result["version"])
}

func TestSerialForService(t *testing.T) {
	tests := []struct {
		elements map[string]string
		name     string
		expected string
	}{
		{nil, "Wattpilot_12345678", "12345678"},
		{nil, "wattpilot_12345678", "12345678"},
		{map[string]string{"serial": "87654321"}, "Wattpilot_12345678", "87654321"},
		{nil, "Wattpilot_", ""},
		{nil, "go-eCharger_123", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, serialForService(tc.elements, tc.name), tc.name)
	}
}

func TestParseProviderSelection(t *testing.T) {
	assert.Equal(t, MdnsProviderSelectionAll, ParseProviderSelection(""))
	assert.Equal(t, MdnsProviderSelectionAll, ParseProviderSelection("all"))
	assert.Equal(t, MdnsProviderSelectionAvahiOnly, ParseProviderSelection("Avahi"))
	assert.Equal(t, MdnsProviderSelectionGoZeroConfOnly, ParseProviderSelection(" zeroconf "))
	assert.Equal(t, MdnsProviderSelectionAll, ParseProviderSelection("bonjour"))
}
