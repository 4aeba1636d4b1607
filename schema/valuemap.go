package schema

// An ordered mapping from raw protocol values to display values
type ValueMap struct {
	keys   []string
	values map[string]string
}

func NewValueMap() *ValueMap {
	return &ValueMap{
		values: make(map[string]string),
	}
}

// adds an entry, the first entry of a key wins
func (v *ValueMap) Add(key, value string) {
	if _, ok := v.values[key]; ok {
		return
	}
	v.keys = append(v.keys, key)
	v.values[key] = value
}

// Returns the display value of the raw key
func (v *ValueMap) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Returns the first raw key mapped to the display value
func (v *ValueMap) Reverse(value string) (string, bool) {
	for _, key := range v.keys {
		if v.values[key] == value {
			return key, true
		}
	}
	return "", false
}

func (v *ValueMap) Keys() []string {
	return append([]string(nil), v.keys...)
}

// the display values in definition order
func (v *ValueMap) Values() []string {
	result := make([]string, 0, len(v.keys))
	for _, key := range v.keys {
		result = append(result, v.values[key])
	}
	return result
}

func (v *ValueMap) Len() int {
	return len(v.keys)
}
