package shell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/enbility/wattpilot-go/hass"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
	"github.com/enbility/wattpilot-go/mqtt"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/util"
)

var errWrongArguments = errors.New("Wrong number of arguments!")

// prints the hint and returns false if there is no connected client
func (s *Shell) ensureConnected() bool {
	client := s.Client()
	if client == nil || !client.Connected() {
		s.println("Not connected to wattpilot!")
		return false
	}
	return true
}

// the definition of a property, a bare one for properties the definition does not know
func (s *Shell) property(name string) *schema.PropertyDefinition {
	if pd, ok := s.definition.Property(name); ok {
		return pd
	}
	return &schema.PropertyDefinition{Key: name}
}

func (s *Shell) allProperties(availableOnly bool) map[string]any {
	client := s.Client()
	if client == nil {
		return map[string]any{}
	}
	values := client.AllProperties()
	result := s.definition.AllProperties(values, true)
	if availableOnly {
		return result
	}

	// every defined property, the split children resolved from their parents
	for key, value := range s.definition.AllProperties(values, false) {
		if _, ok := result[key]; !ok {
			result[key] = value
		}
	}
	return result
}

// filter the properties by an anchored, case-insensitive name pattern
// and an optional pattern for the encoded value
func (s *Shell) propertiesMatching(args []string, availableOnly bool) (map[string]any, error) {
	namePattern := ".*"
	if len(args) > 0 && args[0] != "" {
		namePattern = args[0]
	}
	valuePattern := ".*"
	if len(args) > 1 {
		valuePattern = args[1]
	}

	nameRegex, err := regexp.Compile("(?i)^(?:" + namePattern + ")$")
	if err != nil {
		return nil, err
	}
	valueRegex, err := regexp.Compile("(?i)^(?:" + valuePattern + ")$")
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	for name, value := range s.allProperties(availableOnly) {
		if !nameRegex.MatchString(name) {
			continue
		}
		if !valueRegex.MatchString(mqtt.EncodeProperty(s.property(name), value)) {
			continue
		}
		result[name] = value
	}

	return result, nil
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func valueToJSON(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return util.FormatValue(value)
	}
	return string(data)
}

// true, false, digits and decimals are converted, anything else stays a string
func parseInput(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	if isDigits(raw) {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return value
		}
	}
	if strings.Count(raw, ".") == 1 && isDigits(strings.Replace(raw, ".", "", 1)) {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			return value
		}
	}

	return raw
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

/* connection */

func (s *Shell) cmdConnect(_ context.Context, _ []string, _ string) error {
	// the bridges and watches belong to the previous client
	s.Close()

	client := s.newClient()

	s.mux.Lock()
	s.client = client
	s.mux.Unlock()

	if err := client.Connect(); err != nil {
		return err
	}

	s.printf("Connected to %s (%s)\n", client.Name(), client.Serial())
	return nil
}

func (s *Shell) cmdDisconnect(_ context.Context, _ []string, _ string) error {
	if s.Client() == nil {
		return nil
	}

	s.Close()
	s.println("Disconnected.")
	return nil
}

func (s *Shell) cmdInfo(_ context.Context, _ []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}

	s.println(s.Client().String())
	return nil
}

func (s *Shell) cmdServer(ctx context.Context, _ []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}

	logging.Log().Info("Server started.")
	<-ctx.Done()
	logging.Log().Info("Server shutting down.")

	return nil
}

func (s *Shell) cmdHelp(_ context.Context, _ []string, _ string) error {
	s.printf("Wattpilot Shell v%s\n", Version)
	s.println(`Commands:
  connect         Connect to Wattpilot
  disconnect      Disconnect from Wattpilot
  get <prop>      Get property value
  set <prop> <v>  Set property value
  info            Print device info
  properties [r]  List properties (optional regex filter)
  values [r] [v]  List values with mapping (optional filters)
  rawvalues [r]   List raw values (optional regex filter)
  watch <type> <n>  Watch message/property changes
  unwatch <type> <n> Unwatch message/property changes
  mqtt <sub>      MQTT bridge (start|stop|status|properties)
  ha <sub>        HA discovery (start|stop|status|properties|discover|undiscover|enable|disable)
  server          Start in server mode
  exit            Exit the shell`)
	return nil
}

/* properties */

func (s *Shell) cmdGet(_ context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) == 0 || args[0] == "" {
		return errWrongArguments
	}

	name := args[0]
	values := s.Client().AllProperties()

	if value, ok := values[name]; ok {
		s.println(mqtt.EncodeProperty(s.property(name), value))
		return nil
	}
	if slices.Contains(s.definition.SplitProperties, name) {
		s.println(mqtt.EncodeProperty(s.property(name), s.definition.ChildValue(values, name)))
		return nil
	}

	return fmt.Errorf("Unknown property: %s", name)
}

func (s *Shell) cmdSet(_ context.Context, args []string, arg string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) < 2 || arg == "" {
		return errWrongArguments
	}

	client := s.Client()
	name, raw := args[0], args[1]
	if _, ok := client.AllProperties()[name]; !ok {
		return fmt.Errorf("Unknown property: %s", name)
	}

	pd := s.property(name)

	var value any
	switch input := parseInput(raw).(type) {
	case string:
		decoded, err := mqtt.DecodeProperty(pd, input)
		if err != nil {
			return err
		}
		value = decoded
	default:
		value = mqtt.RemapProperty(pd, input)
	}

	return client.SetProperty(name, value)
}

func (s *Shell) cmdProperties(_ context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}

	props, err := s.propertiesMatching(args, false)
	if err != nil {
		return err
	}
	if len(props) == 0 {
		s.println("No matching properties found!")
		return nil
	}

	values := s.Client().AllProperties()

	s.println("Properties:")
	for _, name := range sortedKeys(props) {
		value := props[name]
		pd := s.property(name)

		jsonType := pd.JsonType
		if jsonType == "" {
			jsonType = "unknown"
		}
		var extra string
		if pd.Alias != "" {
			extra += ", alias:" + pd.Alias
		}
		if pd.Rw != "" {
			extra += ", rw:" + pd.Rw
		}

		s.printf("- %s (%s%s): %s\n", name, jsonType, extra, pd.DisplayName())
		if pd.Description != "" {
			s.printf("  Description: %s\n", pd.Description)
		}

		_, available := values[name]
		if !available && pd.ParentProperty != "" {
			_, available = values[pd.ParentProperty]
		}
		if !available {
			s.println("  NOTE: Not provided by the connected device!")
			continue
		}

		var raw string
		if pd.ValueMap != nil {
			raw = " (raw:" + valueToJSON(value) + ")"
		}
		s.printf("  Value: %s%s\n", mqtt.EncodeProperty(pd, value), raw)
	}
	s.println()

	return nil
}

func (s *Shell) cmdValues(_ context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}

	props, err := s.propertiesMatching(args, true)
	if err != nil {
		return err
	}

	s.println("List values of properties (with value mapping):")
	for _, name := range sortedKeys(props) {
		s.printf("- %s: %s\n", name, mqtt.EncodeProperty(s.property(name), props[name]))
	}
	s.println()

	return nil
}

func (s *Shell) cmdRawValues(_ context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}

	props, err := s.propertiesMatching(args, true)
	if err != nil {
		return err
	}

	s.println("List raw values of properties (without value mapping):")
	for _, name := range sortedKeys(props) {
		s.printf("- %s: %s\n", name, valueToJSON(props[name]))
	}
	s.println()

	return nil
}

/* watching */

func (s *Shell) cmdWatch(_ context.Context, args []string, arg string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) < 2 || arg == "" {
		return errWrongArguments
	}

	client := s.Client()
	kind, target := args[0], args[1]

	s.mux.Lock()
	defer s.mux.Unlock()

	switch kind {
	case "property":
		if _, ok := client.AllProperties()[target]; !ok {
			return fmt.Errorf("Unknown property: %s", target)
		}
		if s.unwatchProperties == nil {
			s.unwatchProperties = client.OnPropertyChange(s.watchedPropertyChanged)
		}
		if !slices.Contains(s.watchingProperties, target) {
			s.watchingProperties = append(s.watchingProperties, target)
		}

	case "message":
		if _, ok := s.definition.Message(target); !ok {
			return fmt.Errorf("Unknown message type: %s", target)
		}
		if s.unwatchMessages == nil {
			s.unwatchMessages = client.OnMessage(s.watchedMessageReceived)
		}
		if !slices.Contains(s.watchingMessages, target) {
			s.watchingMessages = append(s.watchingMessages, target)
		}

	default:
		return fmt.Errorf("Unknown watch type: %s", kind)
	}

	return nil
}

func (s *Shell) cmdUnwatch(_ context.Context, args []string, arg string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) < 2 || arg == "" {
		return errWrongArguments
	}

	kind, target := args[0], args[1]

	s.mux.Lock()
	defer s.mux.Unlock()

	switch {
	case kind == "property" && slices.Contains(s.watchingProperties, target):
		s.watchingProperties = slices.DeleteFunc(s.watchingProperties, func(item string) bool { return item == target })
	case kind == "message" && slices.Contains(s.watchingMessages, target):
		s.watchingMessages = slices.DeleteFunc(s.watchingMessages, func(item string) bool { return item == target })
	default:
		return fmt.Errorf("Not watching %s '%s'", kind, target)
	}

	return nil
}

func (s *Shell) watchedPropertyChanged(key string, value any) {
	s.mux.Lock()
	watching := slices.Contains(s.watchingProperties, key)
	s.mux.Unlock()

	if !watching {
		return
	}

	s.printf("\n[watch] Property %s changed to %s\n", key, mqtt.EncodeProperty(s.property(key), value))
}

func (s *Shell) watchedMessageReceived(frame *model.Frame) {
	s.mux.Lock()
	watching := slices.Contains(s.watchingMessages, string(frame.Type))
	s.mux.Unlock()

	if !watching {
		return
	}

	s.printf("\n[watch] Message %s: %s\n", frame.Type, string(frame.Raw))
}

func (s *Shell) resetWatches() {
	s.mux.Lock()
	unwatchProperties := s.unwatchProperties
	unwatchMessages := s.unwatchMessages
	s.unwatchProperties = nil
	s.unwatchMessages = nil
	s.watchingProperties = nil
	s.watchingMessages = nil
	s.mux.Unlock()

	if unwatchProperties != nil {
		unwatchProperties()
	}
	if unwatchMessages != nil {
		unwatchMessages()
	}
}

/* bridges */

func (s *Shell) cmdMqtt(_ context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) == 0 || args[0] == "" {
		return errWrongArguments
	}

	switch sub := args[0]; sub {
	case "start":
		// a running bridge is replaced
		s.stopMqtt()
		if _, err := s.startMqtt(); err != nil {
			return err
		}
		s.println("MQTT bridge started.")

	case "stop":
		s.stopMqtt()
		s.println("MQTT bridge stopped.")

	case "status":
		state := "stopped"
		if s.mqttBridge() != nil {
			state = "running"
		}
		s.printf("MQTT bridge is %s.\n", state)

	case "properties":
		var props []string
		if bridge := s.mqttBridge(); bridge != nil {
			props = bridge.Properties()
		}
		s.printf("MQTT properties: %v\n", props)

	default:
		return fmt.Errorf("Unknown MQTT subcommand: %s", sub)
	}

	return nil
}

func (s *Shell) cmdHa(ctx context.Context, args []string, _ string) error {
	if !s.ensureConnected() {
		return nil
	}
	if len(args) == 0 || args[0] == "" {
		return errWrongArguments
	}

	switch sub := args[0]; sub {
	case "start":
		bridge := s.mqttBridge()
		if bridge == nil {
			var err error
			if bridge, err = s.startMqtt(); err != nil {
				return err
			}
		}

		s.stopHomeAssistant()

		discovery := hass.NewDiscovery(s.Client(), bridge, s.haConfig)
		s.mux.Lock()
		s.discovery = discovery
		s.mux.Unlock()

		if err := discovery.Setup(ctx); err != nil {
			return err
		}
		s.println("HA discovery started.")

	case "stop":
		s.stopHomeAssistant()
		s.stopMqtt()
		s.println("HA discovery stopped.")

	case "status":
		state := "stopped"
		if s.homeAssistant() != nil {
			state = "running"
		}
		s.printf("HA discovery is %s.\n", state)

	case "properties":
		var props []string
		if discovery := s.homeAssistant(); discovery != nil {
			props = discovery.Properties()
		}
		s.printf("HA properties: %v\n", props)

	case "discover", "undiscover", "enable", "disable":
		if len(args) < 2 {
			return fmt.Errorf("Unknown HA subcommand: %s", sub)
		}

		discovery := s.homeAssistant()
		if discovery == nil {
			return errors.New("HA discovery not started!")
		}

		name := args[1]
		switch sub {
		case "discover", "enable":
			return discovery.DiscoverProperty(name, false, util.Ptr(true))
		case "disable":
			return discovery.DiscoverProperty(name, false, util.Ptr(false))
		default:
			return discovery.UndiscoverProperty(name)
		}

	default:
		return fmt.Errorf("Unknown HA subcommand: %s", sub)
	}

	return nil
}

func (s *Shell) mqttBridge() *mqtt.Bridge {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.bridge
}

func (s *Shell) homeAssistant() *hass.Discovery {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.discovery
}

func (s *Shell) startMqtt() (*mqtt.Bridge, error) {
	bridge := mqtt.NewBridge(s.Client(), s.newMqttClient(s.mqttConfig), s.definition, s.mqttConfig)
	if err := bridge.Start(); err != nil {
		return nil, err
	}

	s.mux.Lock()
	s.bridge = bridge
	s.mux.Unlock()

	return bridge, nil
}

func (s *Shell) stopMqtt() {
	s.mux.Lock()
	bridge := s.bridge
	s.bridge = nil
	s.mux.Unlock()

	if bridge != nil {
		bridge.Stop()
	}
}

func (s *Shell) stopHomeAssistant() {
	s.mux.Lock()
	discovery := s.discovery
	s.discovery = nil
	s.mux.Unlock()

	if discovery == nil {
		return
	}

	if err := discovery.Stop(); err != nil {
		logging.Log().Warn("HA discovery stop:", err)
	}
}
