package util

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSerial(t *testing.T) {
	assert.Equal(t, "12345678", NormalizeSerial(" 1234-5678 "))
	assert.Equal(t, "12345678", NormalizeSerial("1234 5678"))
	assert.Equal(t, "", NormalizeSerial("  "))
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(int64(16))
	assert.True(t, ok)
	assert.Equal(t, 16.0, f)

	f, ok = ToFloat(json.Number("231.5"))
	assert.True(t, ok)
	assert.Equal(t, 231.5, f)

	_, ok = ToFloat("16")
	assert.False(t, ok)

	_, ok = ToFloat(json.Number("abc"))
	assert.False(t, ok)
}

func TestToInt(t *testing.T) {
	i, ok := ToInt(10.9)
	assert.True(t, ok)
	assert.Equal(t, int64(10), i)

	i, ok = ToInt(json.Number("42"))
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = ToInt(math.NaN())
	assert.False(t, ok)

	_, ok = ToInt(true)
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", FormatValue(nil))
	assert.Equal(t, "Eco", FormatValue("Eco"))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "16", FormatValue(int64(16)))
	assert.Equal(t, "16.5", FormatValue(16.5))
	assert.Equal(t, "16", FormatValue(16.0))
	assert.Equal(t, "[1,2]", FormatValue([]int{1, 2}))
}

func TestDeepCopy(t *testing.T) {
	type entry struct {
		Name  string
		Ports []int
	}

	source := &entry{Name: "wattpilot", Ports: []int{80}}
	dest := &entry{}
	DeepCopy(source, dest)

	assert.Equal(t, source, dest)
	dest.Ports[0] = 443
	assert.Equal(t, 80, source.Ports[0])
}

func TestPtr(t *testing.T) {
	p := Ptr(5)
	assert.Equal(t, 5, *p)
}
