// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-server vault server base URL
//	-driver disk tier driver (sqlite3, pgx)
//	-d database DSN
//	-c/-config json file path with configs
//	-min-pbkdf2-iterations PBKDF2 minimum enforced by migrations
//	-force-update-kdf enable the minimum-KDF migration locally
//	-request-timeout local API request timeout (e.g., "30s", "1m")
//	-adapter-timeout vault server request timeout
//	-sync-interval background sync period
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("keycore", flag.ContinueOnError)

	var serverAddress NetAddress
	var vaultAddress string
	var driver string
	var databaseDSN string
	var jsonConfigPath string
	var minIterations int
	var forceUpdateKdf bool
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var syncInterval time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Local API address host:port")
	fs.StringVar(&vaultAddress, "server", "", "Vault server base URL")
	fs.StringVar(&driver, "driver", "", "Disk tier driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&minIterations, "min-pbkdf2-iterations", 0, "Minimum PBKDF2 iterations")
	fs.BoolVar(&forceUpdateKdf, "force-update-kdf", false, "Enable the minimum KDF migration")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Vault server request timeout")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Crypto: Crypto{MinPBKDF2Iterations: minIterations},
		Storage: Storage{
			Driver: driver,
			DSN:    databaseDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    vaultAddress,
			RequestTimeout: adapterTimeout,
		},
		Features:     Features{ForceUpdateKdfSettings: forceUpdateKdf},
		Workers:      Workers{SyncInterval: syncInterval},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
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
