package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/hass"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/mqtt"
	"github.com/enbility/wattpilot-go/schema"
)

const (
	Version = "0.3.0"

	prompt = "wattpilot> "
)

// creates a new, not yet connected device client
type ClientFactory func() api.ClientInterface

// creates the message bus client of the MQTT bridge
type MqttClientFactory func(config mqtt.Config) api.MqttClientInterface

type Option func(*Shell)

// write the command output to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

func WithMqtt(config mqtt.Config) Option {
	return func(s *Shell) {
		s.mqttConfig = config
	}
}

func WithHomeAssistant(config hass.Config) Option {
	return func(s *Shell) {
		s.haConfig = config
	}
}

func WithMqttClientFactory(factory MqttClientFactory) Option {
	return func(s *Shell) {
		s.newMqttClient = factory
	}
}

// connect and start the configured bridges when Run starts
func WithAutoconnect(autoconnect bool) Option {
	return func(s *Shell) {
		s.autoconnect = autoconnect
	}
}

type commandHandler func(ctx context.Context, args []string, arg string) error

// Interactive command shell for a single wallbox
type Shell struct {
	definition    *schema.Definition
	newClient     ClientFactory
	newMqttClient MqttClientFactory

	mqttConfig  mqtt.Config
	haConfig    hass.Config
	autoconnect bool

	client    api.ClientInterface
	bridge    *mqtt.Bridge
	discovery *hass.Discovery

	watchingProperties []string
	watchingMessages   []string
	unwatchProperties  func()
	unwatchMessages    func()

	commands map[string]commandHandler

	out    io.Writer
	muxOut sync.Mutex

	mux sync.Mutex
}

func NewShell(definition *schema.Definition, factory ClientFactory, opts ...Option) *Shell {
	s := &Shell{
		definition: definition,
		newClient:  factory,
		newMqttClient: func(config mqtt.Config) api.MqttClientInterface {
			return mqtt.NewClient(config)
		},
		mqttConfig: mqtt.DefaultConfig(),
		haConfig:   hass.DefaultConfig(),
		out:        os.Stdout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.commands = map[string]commandHandler{
		"connect":    s.cmdConnect,
		"disconnect": s.cmdDisconnect,
		"get":        s.cmdGet,
		"ha":         s.cmdHa,
		"help":       s.cmdHelp,
		"info":       s.cmdInfo,
		"mqtt":       s.cmdMqtt,
		"properties": s.cmdProperties,
		"rawvalues":  s.cmdRawValues,
		"server":     s.cmdServer,
		"set":        s.cmdSet,
		"unwatch":    s.cmdUnwatch,
		"values":     s.cmdValues,
		"watch":      s.cmdWatch,
	}

	return s
}

// the names of all commands, including exit
func (s *Shell) Commands() []string {
	result := []string{"exit"}
	for name := range s.commands {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

// the current device client, nil if not connected yet
func (s *Shell) Client() api.ClientInterface {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.client
}

// Execute a single command line, returns true if the shell should exit
func (s *Shell) RunCommand(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	if cmd == "exit" {
		return true
	}
	if cmd == "?" {
		cmd = "help"
	}

	handler, ok := s.commands[cmd]
	if !ok {
		s.printf("Unknown command: %s. Type 'help' for a list.\n", cmd)
		return false
	}

	if err := handler(ctx, strings.Split(arg, " "), arg); err != nil {
		s.printf("ERROR: %v\n", err)
	}

	return false
}

// Run the interactive loop until exit, EOF, interrupt or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.setOutput(rl.Stdout())

	s.printf("Welcome to the Wattpilot Shell v%s. Type help or ? to list commands.\n\n", Version)

	if s.autoconnect {
		s.Autoconnect(ctx)
	}

	// readline blocks, closing it ends the loop when ctx is done
	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if !errors.Is(err, io.EOF) && !errors.Is(err, readline.ErrInterrupt) {
				logging.Log().Debug("readline:", err)
			}
			break
		}

		if s.RunCommand(ctx, line) {
			break
		}
	}

	s.Close()

	return nil
}

// Connect and start the configured bridges
func (s *Shell) Autoconnect(ctx context.Context) {
	logging.Log().Info("Automatically connecting to Wattpilot...")

	s.RunCommand(ctx, "connect")

	switch {
	case s.mqttConfig.Host != "" && s.haConfig.Enabled:
		s.RunCommand(ctx, "ha start")
	case s.mqttConfig.Host != "":
		s.RunCommand(ctx, "mqtt start")
	}

	s.RunCommand(ctx, "info")
}

// Stop the bridges and disconnect
func (s *Shell) Close() {
	s.stopHomeAssistant()
	s.stopMqtt()

	s.mux.Lock()
	client := s.client
	s.client = nil
	s.mux.Unlock()

	s.resetWatches()

	if client != nil {
		client.Disconnect()
	}
}

func (s *Shell) completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	for _, name := range s.Commands() {
		switch name {
		case "mqtt":
			items = append(items, readline.PcItem(name,
				readline.PcItem("start"),
				readline.PcItem("stop"),
				readline.PcItem("status"),
				readline.PcItem("properties"),
			))
		case "ha":
			items = append(items, readline.PcItem(name,
				readline.PcItem("start"),
				readline.PcItem("stop"),
				readline.PcItem("status"),
				readline.PcItem("properties"),
				readline.PcItem("discover", readline.PcItemDynamic(s.propertyNames)),
				readline.PcItem("undiscover", readline.PcItemDynamic(s.propertyNames)),
				readline.PcItem("enable", readline.PcItemDynamic(s.propertyNames)),
				readline.PcItem("disable", readline.PcItemDynamic(s.propertyNames)),
			))
		case "get", "set":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(s.propertyNames)))
		case "watch", "unwatch":
			items = append(items, readline.PcItem(name,
				readline.PcItem("property", readline.PcItemDynamic(s.propertyNames)),
				readline.PcItem("message", readline.PcItemDynamic(s.messageNames)),
			))
		default:
			items = append(items, readline.PcItem(name))
		}
	}

	return readline.NewPrefixCompleter(items...)
}

func (s *Shell) propertyNames(string) []string {
	return s.definition.PropertyKeys
}

func (s *Shell) messageNames(string) []string {
	return s.definition.MessageKeys
}

func (s *Shell) setOutput(w io.Writer) {
	s.muxOut.Lock()
	defer s.muxOut.Unlock()

	s.out = w
}

func (s *Shell) printf(format string, args ...any) {
	s.muxOut.Lock()
	defer s.muxOut.Unlock()

	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(args ...any) {
	s.muxOut.Lock()
	defer s.muxOut.Unlock()

	fmt.Fprintln(s.out, args...)
}
