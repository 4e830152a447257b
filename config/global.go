package config

import (
	log "github.com/sirupsen/logrus"
	"time"
)

type GlobalConfiguration struct {
	logLevel       log.Level
	defaultTarget  string
	location       *time.Location
	workers        int
	unknownOwner   string
	strictOwner    bool
	output         string
	metricsFile    string
	ownerCacheSize int
}

func (config *GlobalConfiguration) LogLevel() log.Level {
	return config.logLevel
}

// DefaultTarget is scanned if no directory has been given on the command line
func (config *GlobalConfiguration) DefaultTarget() string {
	return config.defaultTarget
}

// Location is used for rendering modification times
func (config *GlobalConfiguration) Location() *time.Location {
	return config.location
}

// Workers is the number of files read in parallel; 0 means automatic
func (config *GlobalConfiguration) Workers() int {
	return config.workers
}

func (config *GlobalConfiguration) UnknownOwner() string {
	return config.unknownOwner
}

func (config *GlobalConfiguration) StrictOwner() bool {
	return config.strictOwner
}

func (config *GlobalConfiguration) Output() string {
	return config.output
}

// MetricsFile is empty if no metrics should be written
func (config *GlobalConfiguration) MetricsFile() string {
	return config.metricsFile
}

func (config *GlobalConfiguration) OwnerCacheSize() int {
	return config.ownerCacheSize
}
