package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a devstore listen address in format [host]:[port]
//	-r remote store base URL
//	-t remote store access token
//	-d local SQLite DSN
//	-c/-config json file path with configs
//	-debounce autosave quiet period (e.g., "2s")
//	-poll-interval drift poll interval (e.g., "30s")
//	-guard-window local-edit guard window (e.g., "5s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-sign-key token signing key (devstore)
//	-token-issuer token issuer name (devstore)
//	-token-duration token duration (e.g., "24h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var remoteAddress string
	var accessToken string
	var databaseDSN string
	var jsonConfigPath string
	var debounceDelay time.Duration
	var pollInterval time.Duration
	var guardWindow time.Duration
	var requestTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.Var(&serverAddress, "a", "Devstore listen address host:port")
	flag.StringVar(&remoteAddress, "r", "", "Remote store base URL")
	flag.StringVar(&accessToken, "t", "", "Remote store access token")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&debounceDelay, "debounce", 0, "Autosave quiet period (e.g., 2s)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Drift poll interval (e.g., 30s)")
	flag.DurationVar(&guardWindow, "guard-window", 0, "Local-edit guard window (e.g., 5s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			Address:        remoteAddress,
			AccessToken:    accessToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			DebounceDelay: debounceDelay,
			PollInterval:  pollInterval,
			GuardWindow:   guardWindow,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or the empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
