// Command wattpilotshell is an interactive shell for Fronius Wattpilot wallboxes.
//
// Usage:
//
//	wattpilotshell [flags] [command]
//
// Flags:
//
//	-config string   YAML configuration file, WATTPILOT_CONFIG if not set
//
// Without a command the interactive shell is started. With a command it
// is executed once, e.g. "wattpilotshell get amp". The "server" command
// keeps the connection alive, bridges to MQTT if configured and
// reconnects whenever the wallbox goes away.
//
// All settings can be given via the environment, e.g. WATTPILOT_HOST,
// WATTPILOT_PASSWORD, MQTT_ENABLED, MQTT_HOST and HA_ENABLED.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/client"
	"github.com/enbility/wattpilot-go/config"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/shell"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", os.Getenv("WATTPILOT_CONFIG"), "YAML configuration file")
}

func main() {
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogrusLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()
	logging.SetLogging(logger)

	definition, err := schema.Load(cfg.Wattpilot.SplitProperties)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := strings.TrimSpace(strings.Join(args, " "))

	if command == "server" {
		return runServer(ctx, cfg, definition)
	}

	sh := newShell(cfg, definition, func() api.ClientInterface {
		return newClient(cfg, definition, cfg.Wattpilot.Host)
	})

	if command == "" {
		return sh.Run(ctx)
	}

	// single command mode
	defer sh.Close()

	if cfg.Wattpilot.Autoconnect && needsConnection(command) {
		sh.Autoconnect(ctx)
	}
	sh.RunCommand(ctx, command)

	return nil
}

func newShell(cfg *config.Config, definition *schema.Definition, factory shell.ClientFactory) *shell.Shell {
	return shell.NewShell(definition, factory,
		shell.WithMqtt(cfg.Mqtt),
		shell.WithHomeAssistant(cfg.HomeAssistant),
		shell.WithAutoconnect(cfg.Wattpilot.Autoconnect),
	)
}

func newClient(cfg *config.Config, definition *schema.Definition, host string) api.ClientInterface {
	opts := []client.Option{
		client.WithDefinition(definition),
		client.WithConnectTimeout(cfg.Wattpilot.ConnectTimeout),
		client.WithInitTimeout(cfg.Wattpilot.InitTimeout),
	}
	if cfg.Wattpilot.Serial != "" {
		opts = append(opts, client.WithSerial(cfg.Wattpilot.Serial))
	}
	if cfg.Wattpilot.Cloud {
		opts = append(opts, client.WithCloud())
	}

	return client.NewWattpilot(host, cfg.Wattpilot.Password, opts...)
}

// commands that work without a wallbox connection
func needsConnection(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "help", "?", "exit", "connect":
		return false
	}
	return true
}
