package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a listen address given as host:port. It implements
// flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or an empty string for the zero address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP literal; IPv6 literals are written in brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q out of range", ErrInvalidAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags registers the configuration flags on fs and parses args.
// Commands register their own flags on the same set beforehand.
//
//	-a               listen address host:port
//	-d               database DSN
//	-driver          database driver (pgx or sqlite3)
//	-max-open-conns  database pool size
//	-c, -config      config file, JSON or YAML
//	-token-sign-key  JWT signing key
//	-token-issuer    JWT issuer
//	-token-duration  JWT lifetime, e.g. 1h
//	-request-timeout request timeout, e.g. 30s
//	-version         application version
//	-log-level       minimum log level
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		address NetAddress
		cfg     StructuredConfig
	)

	fs.Var(&address, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver (pgx, sqlite3)")
	fs.IntVar(&cfg.Storage.DB.MaxOpenConns, "max-open-conns", 0, "database pool size")
	fs.StringVar(&cfg.FilePath, "c", "", "config file (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "config file (alias of -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "JWT lifetime (e.g. 1h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout (e.g. 30s)")
	fs.StringVar(&cfg.App.Version, "version", "", "application version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return &cfg, nil
}
