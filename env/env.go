//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the runtime environment for the sha1sum
// tool.
package env

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// DefaultMaxInput is the default input size limit in bytes.
const DefaultMaxInput = 128 * 1024

// Config defines the sha1sum tool configuration. Config must not be
// modified after being passed to the tool. It is safe for concurrent
// use as the tool does not modify it.
type Config struct {
	// MaxInput limits how many bytes are read from the input
	// file. Bytes beyond the limit are ignored.
	MaxInput int
	Log      log.FieldLogger
}

// GetMaxInput returns the input size limit.
func (config *Config) GetMaxInput() int {
	if config.MaxInput > 0 {
		return config.MaxInput
	}
	return DefaultMaxInput
}

// GetLog returns the logger for diagnostics. Without a configured
// logger, log output is discarded.
func (config *Config) GetLog() log.FieldLogger {
	if config.Log != nil {
		return config.Log
	}
	logger := log.New()
	logger.Out = io.Discard
	return logger
}
