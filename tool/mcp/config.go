//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package mcp

import (
	"errors"
	"time"

	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// defaultClientInfo identifies this client during the MCP handshake.
var defaultClientInfo = mcp.Implementation{
	Name:    "trpc-weather-agent-go",
	Version: "1.0.0",
}

// defaultTimeout bounds every MCP operation unless the caller's context
// already carries a deadline.
const defaultTimeout = 30 * time.Second

// ConnectionConfig defines the configuration for connecting to an MCP
// server over stdio: the sidecar command is spawned and spoken to on
// its standard streams.
type ConnectionConfig struct {
	// Command is the program to spawn.
	Command string `json:"command"`

	// Args are the program arguments.
	Args []string `json:"args,omitempty"`

	// Timeout bounds individual MCP operations. Zero means the default.
	Timeout time.Duration `json:"timeout,omitempty"`

	// ClientInfo overrides the client identification sent during the
	// initialization handshake.
	ClientInfo mcp.Implementation `json:"client_info,omitempty"`
}

// validate checks the configuration and fills in defaults.
func (c *ConnectionConfig) validate() error {
	if c.Command == "" {
		return errors.New("mcp: command must not be empty")
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ClientInfo.Name == "" {
		c.ClientInfo = defaultClientInfo
	}
	return nil
}
