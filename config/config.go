package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
)

type Configuration struct {
	global *GlobalConfiguration
}

const (
	CfgFileName = "config.yaml"
	PathLocal   = "."
	PathGlobal  = "/etc/dirscan"

	DefaultOutput         = "table"
	DefaultUnknownOwner   = "unknown"
	DefaultOwnerCacheSize = 256
	downloadsDirectory    = "Downloads"
)

// SearchDirectories returns the directories checked for a configuration file, in order
func SearchDirectories() []string {
	directories := []string{PathLocal}

	userHome, err := os.UserHomeDir()

	if err == nil {
		directories = append(directories, filepath.Join(userHome, ".dirscan"))
	}

	return append(directories, PathGlobal)
}

// Load reads the configuration from path. If path is empty, the first config.yaml found in SearchDirectories is used.
// Without any configuration file the defaults are returned.
func Load(path string) (*Configuration, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, directory := range SearchDirectories() {
		possibleConfigPath := filepath.Join(directory, CfgFileName)
		log.Debugf("Checking for configuration file at %s", possibleConfigPath)

		if _, err := os.Stat(possibleConfigPath); err == nil {
			log.Debugf("Found configuration file at location %s", possibleConfigPath)
			return loadFile(possibleConfigPath)
		}
	}

	log.Debugf("No configuration file found, using defaults")

	return NewConfigurationInstance(Raw{}), nil
}

func loadFile(path string) (*Configuration, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open configuration file")
	}

	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	return NewConfigurationInstance(cfg), nil
}

func NewConfigurationInstance(cfg Raw) *Configuration {
	return &Configuration{global: parseGlobal(cfg)}
}

func (c *Configuration) Global() *GlobalConfiguration {
	return c.global
}

func parseGlobal(cfg Raw) *GlobalConfiguration {
	logLevel := log.InfoLevel
	if cfg.Has("log_level") {
		parsedLevel, err := log.ParseLevel(cfg.String("log_level"))
		if err == nil {
			logLevel = parsedLevel
		} else {
			log.Warnf("Cannot parse log level, defaulting to 'info': %s", err)
		}
	}

	defaultTarget := defaultDownloadsDirectory()
	if cfg.Has("default_target") {
		defaultTarget = cfg.String("default_target")
	}

	location := time.Local
	if cfg.Has("timezone") {
		parsedLocation, err := ParseLocation(cfg.String("timezone"))
		if err == nil {
			location = parsedLocation
		} else {
			log.Warnf("Cannot parse timezone, defaulting to local timezone: %s", err)
		}
	}

	workers := 0
	if cfg.Has("workers") {
		workers = cfg.Int("workers")
	}

	if workers < 0 {
		log.Warn("Number of workers must not be negative, using automatic worker count.")
		workers = 0
	}

	unknownOwner := DefaultUnknownOwner
	if cfg.Has("unknown_owner") {
		unknownOwner = cfg.String("unknown_owner")
	}

	output := DefaultOutput
	if cfg.Has("output") {
		output = cfg.String("output")
	}

	ownerCacheSize := DefaultOwnerCacheSize
	if cfg.Has("owner_cache_size") {
		ownerCacheSize = cfg.Int("owner_cache_size")
	}

	if ownerCacheSize < 1 {
		log.Warnf("Owner cache size must be at least 1, defaulting to %d.", DefaultOwnerCacheSize)
		ownerCacheSize = DefaultOwnerCacheSize
	}

	return &GlobalConfiguration{
		logLevel:       logLevel,
		defaultTarget:  defaultTarget,
		location:       location,
		workers:        workers,
		unknownOwner:   unknownOwner,
		strictOwner:    cfg.Bool("strict_owner"),
		output:         output,
		metricsFile:    cfg.String("metrics_file"),
		ownerCacheSize: ownerCacheSize,
	}
}

// ParseLocation accepts IANA zone names, "UTC" and "Local"
func ParseLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, errors.New("empty timezone")
	}

	return time.LoadLocation(name)
}

func defaultDownloadsDirectory() string {
	userHome, err := os.UserHomeDir()

	if err != nil {
		log.Debugf("Unable to determine home directory, defaulting to current directory: %s", err)
		return PathLocal
	}

	return filepath.Join(userHome, downloadsDirectory)
}
