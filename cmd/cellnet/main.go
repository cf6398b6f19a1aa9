package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/danderson/cellnet/bus"
	"golang.org/x/sys/unix"
)

var globalArgs struct {
	UseSessionBus bool          `flag:"session,Connect to session bus instead of system bus"`
	Format        string        `flag:"format,default=text,Output format: text, pretty or yaml"`
	Verbose       bool          `flag:"verbose,Log bus activity to stderr"`
	Timeout       time.Duration `flag:"timeout,default=30s,Timeout for bus operations"`
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if globalArgs.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func busConn(ctx context.Context) (*bus.Conn, error) {
	mk := bus.SystemBus
	if globalArgs.UseSessionBus {
		mk = bus.SessionBus
	}
	conn, err := mk(ctx, bus.WithLogger(logger()))
	if err != nil {
		return nil, fmt.Errorf("connecting to bus: %w", err)
	}
	return conn, nil
}

// opContext returns a context bounded by the --timeout flag.
func opContext(env *command.Env) (context.Context, context.CancelFunc) {
	return context.WithTimeout(env.Context(), globalArgs.Timeout)
}

func main() {
	root := &command.C{
		Name:     "cellnet",
		Usage:    "command args...",
		Help:     "Inspect and control ModemManager modems and NetworkManager devices.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "modems",
				Usage: "modems args...",
				Help:  "Inspect ModemManager modems.",
				Commands: []*command.C{
					{
						Name:  "list",
						Usage: "list",
						Help:  "List modems.",
						Run:   command.Adapt(runModemsList),
					},
					{
						Name:  "show",
						Usage: "show index",
						Help:  "Show a modem's properties.",
						Run:   command.Adapt(runModemsShow),
					},
					{
						Name:  "pretty",
						Usage: "pretty index",
						Help: `Show a modem's properties with enumerations and bitmasks decoded.

Only known properties present on the modem are shown.`,
						Run: command.Adapt(runModemsPretty),
					},
					{
						Name:  "3gpp",
						Usage: "3gpp index",
						Help:  "Show a modem's 3GPP registration properties.",
						Run:   command.Adapt(runModems3gpp),
					},
					{
						Name:  "sim",
						Usage: "sim index",
						Help:  "Show the properties of a modem's SIM card.",
						Run:   command.Adapt(runModemsSim),
					},
					{
						Name:  "watch",
						Usage: "watch index",
						Help:  "Print a modem's properties every time they change.",
						Run:   command.Adapt(runModemsWatch),
					},
					{
						Name:  "scan",
						Usage: "scan",
						Help:  "Ask ModemManager to look for new modems.",
						Run:   command.Adapt(runModemsScan),
					},
				},
			},
			{
				Name:  "bearer",
				Usage: "bearer args...",
				Help:  "Control modem bearers.",
				Commands: []*command.C{
					{
						Name:  "connect",
						Usage: "connect modem-index bearer-path",
						Help:  "Connect a bearer.",
						Run:   command.Adapt(runBearerConnect),
					},
					{
						Name:  "disconnect",
						Usage: "disconnect modem-index bearer-path",
						Help:  "Disconnect a bearer.",
						Run:   command.Adapt(runBearerDisconnect),
					},
				},
			},
			{
				Name:  "nm",
				Usage: "nm args...",
				Help:  "Inspect and control NetworkManager.",
				Commands: []*command.C{
					{
						Name:  "status",
						Usage: "status",
						Help:  "Show NetworkManager's state.",
						Run:   command.Adapt(runNMStatus),
					},
					{
						Name:  "devices",
						Usage: "devices",
						Help:  "List network devices.",
						Run:   command.Adapt(runNMDevices),
					},
					{
						Name:  "connectivity",
						Usage: "connectivity",
						Help:  "Run a connectivity check.",
						Run:   command.Adapt(runNMConnectivity),
					},
					{
						Name:  "wifi",
						Usage: "wifi args...",
						Commands: []*command.C{
							{
								Name:  "scan",
								Usage: "scan",
								Help:  "Scan for Wi-Fi access points on every Wi-Fi device.",
								Run:   command.Adapt(runNMWifiScan),
							},
							{
								Name:  "aps",
								Usage: "aps",
								Help:  "List visible Wi-Fi access points.",
								Run:   command.Adapt(runNMWifiAPs),
							},
							{
								Name:     "add",
								Usage:    "add ssid [password]",
								Help:     "Save a connection profile for a Wi-Fi network.",
								SetFlags: command.Flags(flax.MustBind, &wifiAddArgs),
								Run:      runNMWifiAdd,
							},
						},
					},
					{
						Name:  "connections",
						Usage: "connections [args...]",
						Help:  "List saved connection profiles.",
						Run:   command.Adapt(runNMConnections),
						Commands: []*command.C{
							{
								Name:  "remove",
								Usage: "remove path",
								Help:  "Delete a saved connection profile.",
								Run:   command.Adapt(runNMConnectionsRemove),
							},
						},
					},
				},
			},
			{
				Name:  "decode",
				Usage: "decode enum value",
				Help: `Decode an enumeration or bitmask value.

enum is the name of a ModemManager or NetworkManager enumeration, for
example ModemCapability or DeviceState. value may be decimal or
0x-prefixed hex.`,
				Run: command.Adapt(runDecode),
			},
			{
				Name:  "enums",
				Usage: "enums [pattern]",
				Help:  "List the enumerations known to decode, or those whose name matches pattern.",
				Run:   command.Adapt(runEnums),
			},
			{
				Name:  "enumgen",
				Usage: "enumgen input.yaml output.go",
				Help:  "Generate Go enumeration types from a YAML description.",
				Run:   command.Adapt(runEnumgen),
			},
			{
				Name:  "listen",
				Usage: "listen",
				Help:  "Print property changes of ModemManager and NetworkManager objects.",
				Run:   command.Adapt(runListen),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}
