package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const propertyBase = "{baseTopic}/properties/{propName}"

func TestSubstituteTopic(t *testing.T) {
	values := map[string]string{"propName": "amp", "serialNumber": "12345678"}

	assert.Equal(t, "wattpilot/properties/amp/state",
		SubstituteTopic("~/state", propertyBase, "wattpilot", values, true))
	assert.Equal(t, "~/state",
		SubstituteTopic("~/state", propertyBase, "wattpilot", values, false))
	// only a leading tilde is expanded
	assert.Equal(t, "wattpilot/~/amp",
		SubstituteTopic("{baseTopic}/~/{propName}", propertyBase, "wattpilot", values, true))
	assert.Equal(t, "wallbox/12345678/amp",
		SubstituteTopic("wallbox/{serialNumber}/{propName}", propertyBase, "wattpilot", values, true))
	assert.Equal(t, "wattpilot/{unknown}/amp",
		SubstituteTopic("{baseTopic}/{unknown}/{propName}", propertyBase, "wattpilot", values, true))
	assert.Equal(t, "wattpilot/{open",
		SubstituteTopic("{baseTopic}/{open", propertyBase, "wattpilot", values, true))
	// explicit values win over the base topic
	assert.Equal(t, "other/available",
		SubstituteTopic("{baseTopic}/available", propertyBase, "wattpilot", map[string]string{"baseTopic": "other"}, true))
}

func TestConfigTopics(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "wattpilot/available", config.Topic(config.TopicAvailable, nil))
	assert.Equal(t, "wattpilot/messages/fullStatus",
		config.Topic(config.TopicMessages, map[string]string{PlaceholderMessageType: "fullStatus"}))
	assert.Equal(t, "wattpilot/properties/+/set",
		config.Topic(config.TopicPropertySet, map[string]string{PlaceholderPropName: "+"}))
}

func TestSetTopicPattern(t *testing.T) {
	config := DefaultConfig()
	config.TopicBase = "home.wp"
	pattern := config.SetTopicPattern()

	match := pattern.FindStringSubmatch("home.wp/properties/amp/set")
	if assert.NotNil(t, match) {
		assert.Equal(t, "amp", match[1])
	}

	assert.Nil(t, pattern.FindStringSubmatch("homeXwp/properties/amp/set"))
	assert.Nil(t, pattern.FindStringSubmatch("home.wp/properties/amp/state"))
	assert.Nil(t, pattern.FindStringSubmatch("home.wp/properties/a/b/set"))
	assert.Nil(t, pattern.FindStringSubmatch("prefix/home.wp/properties/amp/set"))
}
