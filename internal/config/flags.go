package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all tracker configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	// ExitOnError flag sets never return parse errors
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// ParseTrainerFlags parses all trainer configuration flags.
//
// Flags:
//
//	-e/-experiment experiment YAML file path
//	-watch directory watched for new experiment files
//	-tui enable the live dashboard
//	-local-db local SQLite run store path
//	-tracker-url tracker server base URL
//	-tracker-login tracker login
//	-tracker-password tracker password
//	-tracker-timeout publish request timeout
func ParseTrainerFlags() *TrainerConfig {
	return parseTrainerFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseTrainerFlags(fs *flag.FlagSet, args []string) *TrainerConfig {
	var experimentFile string
	var watchDir string
	var ui bool
	var localDBPath string
	var trackerURL string
	var trackerLogin string
	var trackerPassword string
	var trackerTimeout time.Duration

	fs.StringVar(&experimentFile, "e", "", "Experiment YAML file path")
	fs.StringVar(&experimentFile, "experiment", "", "Experiment YAML file path (alias)")
	fs.StringVar(&watchDir, "watch", "", "Directory watched for new experiment files")
	fs.BoolVar(&ui, "tui", false, "Enable the live dashboard")
	fs.StringVar(&localDBPath, "local-db", "", "Local SQLite run store path")
	fs.StringVar(&trackerURL, "tracker-url", "", "Tracker server base URL")
	fs.StringVar(&trackerLogin, "tracker-login", "", "Tracker login")
	fs.StringVar(&trackerPassword, "tracker-password", "", "Tracker password")
	fs.DurationVar(&trackerTimeout, "tracker-timeout", 0, "Publish request timeout (e.g., 15s)")

	_ = fs.Parse(args)

	return &TrainerConfig{
		ExperimentFile: experimentFile,
		WatchDir:       watchDir,
		UI:             ui,
		Local: Local{
			DBPath: localDBPath,
		},
		Tracker: Tracker{
			BaseURL:        trackerURL,
			Login:          trackerLogin,
			Password:       trackerPassword,
			RequestTimeout: trackerTimeout,
		},
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
