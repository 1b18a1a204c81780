package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags registers the configuration flags on fs and parses args.
//
// Flags:
//
//	-a                   server listen address host:port
//	-d                   database DSN (postgres URL or sqlite path)
//	-c / -config         JSON config file path
//	-password-hash-key   password pepper (empty keeps plain SHA-256)
//	-token-sign-key      caller token signing key
//	-token-issuer        caller token issuer
//	-token-duration      lifetime of client-minted tokens
//	-request-timeout     inbound request timeout
//	-otp-ttl             one-time code validity window
//	-verify-otp-mode     strict | legacy
//	-log-level           zerolog level
//	-smtp-host, -smtp-port, -smtp-user, -smtp-password, -smtp-from
//	-alphavantage-key    Alpha Vantage API key
//	-newsapi-key         NewsAPI key
//	-training-data       CSV used to train the return model
//	-otp-purge-interval  expired OTP sweep interval
//	-server              backend address used by the client
//	-identity            caller identity used by the client
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var (
		databaseDSN      string
		jsonConfigPath   string
		passwordHashKey  string
		tokenSignKey     string
		tokenIssuer      string
		tokenDuration    time.Duration
		requestTimeout   time.Duration
		otpTTL           time.Duration
		verifyOTPMode    string
		logLevel         string
		smtpHost         string
		smtpPort         int
		smtpUser         string
		smtpPassword     string
		smtpFrom         string
		alphaVantageKey  string
		newsAPIKey       string
		trainingDataPath string
		otpPurgeInterval time.Duration
		adapterAddress   string
		identity         int64
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&otpTTL, "otp-ttl", 0, "OTP validity window (e.g., 5m)")
	fs.StringVar(&verifyOTPMode, "verify-otp-mode", "", "OTP verification mode: strict or legacy")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	fs.IntVar(&smtpPort, "smtp-port", 0, "SMTP port")
	fs.StringVar(&smtpUser, "smtp-user", "", "SMTP username")
	fs.StringVar(&smtpPassword, "smtp-password", "", "SMTP password")
	fs.StringVar(&smtpFrom, "smtp-from", "", "SMTP sender address")
	fs.StringVar(&alphaVantageKey, "alphavantage-key", "", "Alpha Vantage API key")
	fs.StringVar(&newsAPIKey, "newsapi-key", "", "NewsAPI key")
	fs.StringVar(&trainingDataPath, "training-data", "", "Return model training CSV")
	fs.DurationVar(&otpPurgeInterval, "otp-purge-interval", 0, "Expired OTP sweep interval")
	fs.StringVar(&adapterAddress, "server", "", "Backend address used by the client")
	fs.Int64Var(&identity, "identity", 0, "Caller identity used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			OTPTTL:          otpTTL,
			VerifyOTPMode:   verifyOTPMode,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mailer: Mailer{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: smtpUser,
			Password: smtpPassword,
			From:     smtpFrom,
		},
		Market: Market{
			AlphaVantageKey: alphaVantageKey,
			NewsAPIKey:      newsAPIKey,
		},
		Predict: Predict{
			TrainingDataPath: trainingDataPath,
		},
		Workers: Workers{
			OTPPurgeInterval: otpPurgeInterval,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Identity:    identity,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty, or an IP
// address; the port must be positive.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
