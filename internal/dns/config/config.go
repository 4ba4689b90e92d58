// Package config layers defaults, DNSPING_* environment variables and
// command-line flags into a validated AppConfig.
package config

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/haukened/dnsping/internal/dns/domain"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DNSPING_"

// AppConfig holds the probe settings. Durations are in milliseconds, as on
// the command line.
type AppConfig struct {
	// Name is the hostname asked about in every query.
	Name string `koanf:"name" validate:"required"`

	// Server is the nameserver: an IP literal or hostname, optionally with a port.
	Server string `koanf:"dnsserver" validate:"required,server_addr"`

	// Port is used when Server carries no port of its own.
	Port int `koanf:"port" validate:"gte=1,lte=65535"`

	// QType is the record type queried.
	QType string `koanf:"qtype" validate:"required,oneof=A AAAA CNAME MX NS PTR SOA SRV TXT ANY"`

	Count    int  `koanf:"count" validate:"gte=0"`
	Interval int  `koanf:"interval" validate:"gte=0"`
	Timeout  int  `koanf:"timeout" validate:"gte=1"`
	Verbose  bool `koanf:"verbose"`

	// IPv4 and IPv6 force the address family; at most one may be set.
	IPv4 bool `koanf:"ipv4"`
	IPv6 bool `koanf:"ipv6" validate:"excluded_with=IPv4"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// DEFAULT_APP_CONFIG defines the settings used when neither the environment
// nor the command line says otherwise.
var DEFAULT_APP_CONFIG = AppConfig{
	Name:     "google.com",
	Server:   "8.8.8.8",
	Port:     53,
	QType:    "A",
	Count:    10,
	Interval: 1000,
	Timeout:  2000,
	Env:      "prod",
	LogLevel: "warn",
}

// validServerAddr accepts an IP literal, a bracketed IPv6 literal, a host
// name, or any of those followed by ":port".
func validServerAddr(fl validator.FieldLevel) bool {
	addr := strings.TrimSpace(fl.Field().String())
	if addr == "" {
		return false
	}
	if validHost(addr) {
		return true
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum > 0 && validHost(host)
}

// validHost reports whether host is an IP literal (optionally bracketed) or
// a host name that survives IDNA lookup processing.
func validHost(host string) bool {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		_, err := netip.ParseAddr(host[1 : len(host)-1])
		return err == nil
	}
	if _, err := netip.ParseAddr(host); err == nil {
		return true
	}
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil || ascii == "" || len(ascii) > 253 {
		return false
	}
	for _, label := range strings.Split(ascii, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
	}
	return true
}

// envLoader loads environment variables with the prefix "DNSPING_".
// It transforms the keys to lowercase and removes the prefix,
// and can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into the provided Koanf instance.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// flagLoader loads the flags the user set explicitly, keyed like AppConfig.
var flagLoader = func(k *koanf.Koanf, flags map[string]any) error {
	if len(flags) == 0 {
		return nil
	}
	return k.Load(confmap.Provider(flags, "."), nil)
}

// registerValidation registers the custom "server_addr" rule.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("server_addr", validServerAddr)
}

// Load builds the configuration from defaults, then the environment, then
// flags, each layer overriding the one before, and validates the result.
// flags maps koanf keys (e.g. "dnsserver", "log_level") to values.
func Load(flags map[string]any) (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	err = flagLoader(k, flags)
	if err != nil {
		return nil, fmt.Errorf("error loading flags: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.normalize()

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// normalize canonicalizes case and whitespace before validation.
func (c *AppConfig) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Server = strings.TrimSpace(c.Server)
	c.QType = strings.ToUpper(strings.TrimSpace(c.QType))
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Family returns the forced address family, if any.
func (c *AppConfig) Family() domain.AddressFamily {
	switch {
	case c.IPv4:
		return domain.FamilyIPv4
	case c.IPv6:
		return domain.FamilyIPv6
	default:
		return domain.FamilyAuto
	}
}

// ProbeConfig converts the validated settings into the probe's typed form.
func (c *AppConfig) ProbeConfig() (domain.ProbeConfig, error) {
	code, ok := dns.StringToType[c.QType]
	if !ok || !domain.RRType(code).IsValid() {
		return domain.ProbeConfig{}, fmt.Errorf("unsupported qtype %q", c.QType)
	}
	if c.Port < 1 || c.Port > 65535 {
		return domain.ProbeConfig{}, fmt.Errorf("port out of range: %d", c.Port)
	}
	return domain.ProbeConfig{
		Hostname: c.Name,
		Server:   c.Server,
		Port:     uint16(c.Port),
		Type:     domain.RRType(code),
		Count:    c.Count,
		Interval: time.Duration(c.Interval) * time.Millisecond,
		Timeout:  time.Duration(c.Timeout) * time.Millisecond,
		Verbose:  c.Verbose,
		Family:   c.Family(),
	}, nil
}
