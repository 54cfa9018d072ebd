//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package mcp provides the stdio MCP session used to reach the sidecar
// tool server.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/tool"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// Session manages the MCP client connection to a stdio sidecar process.
// A Session must be connected before tools can be listed or called.
type Session struct {
	config ConnectionConfig

	mu          sync.RWMutex
	client      mcp.Connector
	connected   bool
	initialized bool
}

var _ tool.Caller = (*Session)(nil)

// NewSession creates a session for the given connection configuration.
// The sidecar is not spawned until Connect is called.
func NewSession(config ConnectionConfig) *Session {
	return &Session{config: config}
}

// Connect spawns the sidecar process and performs the MCP
// initialization handshake. Calling Connect on a connected session is a
// no-op.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected && s.initialized {
		return nil
	}
	if err := s.config.validate(); err != nil {
		return err
	}

	log.Debug("Connecting to MCP server", "command", s.config.Command)

	client, err := mcp.NewStdioClient(mcp.StdioTransportConfig{
		ServerParams: mcp.StdioServerParameters{
			Command: s.config.Command,
			Args:    s.config.Args,
		},
		Timeout: s.config.Timeout,
	}, s.config.ClientInfo)
	if err != nil {
		return fmt.Errorf("failed to create MCP client: %w", err)
	}

	initCtx, cancel := s.timeoutContext(ctx)
	defer cancel()
	initResp, err := client.Initialize(initCtx, &mcp.InitializeRequest{})
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			log.Error("Failed to close client after initialization failure", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	log.Debug("MCP session initialized",
		"server_name", initResp.ServerInfo.Name,
		"server_version", initResp.ServerInfo.Version,
		"protocol_version", initResp.ProtocolVersion)

	s.client = client
	s.connected = true
	s.initialized = true
	return nil
}

// ListTools retrieves the declarations of all tools exposed by the
// sidecar.
func (s *Session) ListTools(ctx context.Context) ([]*tool.Declaration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.client == nil {
		return nil, fmt.Errorf("mcp: session not connected")
	}

	listCtx, cancel := s.timeoutContext(ctx)
	defer cancel()
	listResp, err := s.client.ListTools(listCtx, &mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	log.Debug("Listed tools from MCP server", "count", len(listResp.Tools))

	decls := make([]*tool.Declaration, 0, len(listResp.Tools))
	for _, t := range listResp.Tools {
		decls = append(decls, &tool.Declaration{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: convertMCPSchemaToSchema(t.InputSchema),
		})
	}
	return decls, nil
}

// HasTool reports whether the sidecar exposes a tool with the given name.
func (s *Session) HasTool(ctx context.Context, name string) (bool, error) {
	decls, err := s.ListTools(ctx)
	if err != nil {
		return false, err
	}
	for _, d := range decls {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// CallTool implements tool.Caller. It invokes the named tool on the
// sidecar and returns the concatenated text content of the result.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.client == nil {
		return "", fmt.Errorf("mcp: session not connected")
	}

	log.Debug("Calling tool", "name", name, "arguments", args)

	callCtx, cancel := s.timeoutContext(ctx)
	defer cancel()
	callReq := &mcp.CallToolRequest{}
	callReq.Params.Name = name
	callReq.Params.Arguments = args

	callResp, err := s.client.CallTool(callCtx, callReq)
	if err != nil {
		log.Errorf("Tool call failed (name=%s, error=%v)", name, err)
		return "", fmt.Errorf("failed to call tool %s: %w", name, err)
	}

	log.Debug("Tool call completed", "name", name, "content_count", len(callResp.Content))
	return textContent(callResp.Content), nil
}

// Close terminates the sidecar connection. A closed session can be
// reconnected with Connect.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected || s.client == nil {
		return nil
	}

	err := s.client.Close()
	s.client = nil
	s.connected = false
	s.initialized = false
	if err != nil {
		return fmt.Errorf("failed to close MCP client: %w", err)
	}

	log.Debug("MCP session closed")
	return nil
}

// IsConnected reports whether the session is connected and initialized.
func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected && s.initialized
}

// timeoutContext applies the configured timeout when the caller's
// context carries no deadline of its own.
func (s *Session) timeoutContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			return context.WithTimeout(ctx, s.config.Timeout)
		}
	}
	return ctx, func() {}
}

// textContent concatenates the text parts of an MCP result. Non-text
// content is ignored.
func textContent(contents []mcp.Content) string {
	var parts []string
	for _, c := range contents {
		if text, ok := c.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
