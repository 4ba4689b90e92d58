package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/haukened/dnsping/internal/dns/common/clock"
	"github.com/haukened/dnsping/internal/dns/common/log"
	"github.com/haukened/dnsping/internal/dns/config"
	"github.com/haukened/dnsping/internal/dns/gateways/address"
	"github.com/haukened/dnsping/internal/dns/gateways/transport"
	"github.com/haukened/dnsping/internal/dns/gateways/wire"
	"github.com/haukened/dnsping/internal/dns/services/prober"
)

const (
	version = "0.1.0-dev"
	appName = "dnsping"
)

// options are the command-line flags. Defaults live in config so that
// only flags the user actually set override the environment.
type options struct {
	Name     string `short:"n" long:"name" description:"Hostname to query (default: google.com)"`
	Server   string `short:"d" long:"dnsserver" description:"DNS server, optionally with :port (default: 8.8.8.8)"`
	Port     int    `short:"p" long:"port" description:"DNS server port (default: 53)"`
	QType    string `short:"t" long:"qtype" description:"Record type: A, AAAA, CNAME, MX, NS, PTR, SOA, SRV, TXT, ANY (default: A)"`
	Count    int    `short:"c" long:"count" description:"Number of queries to send (default: 10)"`
	Interval int    `short:"i" long:"interval" description:"Pause between queries in ms (default: 1000)"`
	Timeout  int    `short:"w" long:"timeout" description:"Response timeout in ms (default: 2000)"`
	Verbose  bool   `short:"v" long:"verbose" description:"Print each decoded response"`
	IPv4     bool   `short:"4" long:"ipv4" description:"Force IPv4"`
	IPv6     bool   `short:"6" long:"ipv6" description:"Force IPv6"`
	LogLevel string `long:"log-level" description:"Log level: debug, info, warn, error (default: warn)"`
	Env      string `long:"env" description:"Log format: dev or prod (default: prod)"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, builds the prober and runs it, returning the process
// exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flagValues, err := parseFlags(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, fe.Message)
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	cfg, err := config.Load(flagValues)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Logging configuration error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log.Debug(map[string]any{
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
		"server":    cfg.Server,
		"name":      cfg.Name,
		"qtype":     cfg.QType,
		"count":     cfg.Count,
	}, "Starting dnsping")

	runner, err := buildRunner(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	if _, err := runner.Run(ctx); err != nil {
		log.Error(map[string]any{"error": err.Error()}, "Probe run aborted")
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// parseFlags parses args and returns only the options that were given,
// keyed the way config.Load expects them.
func parseFlags(args []string) (map[string]any, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	// NewParser files the struct's options under an "Application Options" group.
	values := make(map[string]any)
	for _, group := range parser.Groups() {
		for _, opt := range group.Options() {
			if !opt.IsSet() {
				continue
			}
			values[configKey(opt.LongName)] = opt.Value()
		}
	}
	return values, nil
}

// configKey maps a long flag name to its configuration key.
func configKey(long string) string {
	return strings.ReplaceAll(long, "-", "_")
}

// buildRunner wires the gateways into a prober.Runner.
func buildRunner(cfg *config.AppConfig, out io.Writer) (*prober.Runner, error) {
	probeCfg, err := cfg.ProbeConfig()
	if err != nil {
		return nil, err
	}

	// one clock shared by the probe loop and the transport
	clk := clock.RealClock{}
	logger := log.GetLogger()

	resolver := address.NewResolver(address.Options{
		Family: probeCfg.Family,
		Logger: logger,
	})
	exchanger := transport.NewUDPExchanger(transport.Options{
		Family: probeCfg.Family,
		Clock:  clk,
		Logger: logger,
	})

	return prober.NewRunner(prober.Options{
		Config:    probeCfg,
		Resolver:  resolver,
		Codec:     wire.NewUDPCodec(logger),
		Exchanger: exchanger,
		Clock:     clk,
		Logger:    logger,
		Out:       out,
	})
}
