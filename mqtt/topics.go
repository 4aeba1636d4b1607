package mqtt

import (
	"regexp"
	"strings"
)

const topicLevelPattern = `([^/]+)`

// Replace the {placeholders} of a topic template
//
// With expandTilde a leading "~" is replaced by the property base template
// first. {baseTopic} is always available, unknown placeholders are kept.
func SubstituteTopic(template, propertyBase, baseTopic string, values map[string]string, expandTilde bool) string {
	result := template
	if expandTilde && strings.HasPrefix(result, "~") {
		result = propertyBase + result[1:]
	}

	var b strings.Builder
	for {
		start := strings.IndexByte(result, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(result[start:], '}')
		if end < 0 {
			break
		}
		end += start

		name := result[start+1 : end]
		b.WriteString(result[:start])
		switch value, ok := values[name]; {
		case ok:
			b.WriteString(value)
		case name == PlaceholderBaseTopic:
			b.WriteString(baseTopic)
		default:
			b.WriteString(result[start : end+1])
		}
		result = result[end+1:]
	}
	b.WriteString(result)

	return b.String()
}

// the topic for the template using the configured bases
func (c Config) Topic(template string, values map[string]string) string {
	return SubstituteTopic(template, c.TopicPropertyBase, c.TopicBase, values, true)
}

// Matches a concrete set topic and captures the property name
func (c Config) SetTopicPattern() *regexp.Regexp {
	const marker = "\x00"

	topic := c.Topic(c.TopicPropertySet, map[string]string{PlaceholderPropName: marker})
	parts := strings.Split(topic, marker)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}

	return regexp.MustCompile("^" + strings.Join(parts, topicLevelPattern) + "$")
}
