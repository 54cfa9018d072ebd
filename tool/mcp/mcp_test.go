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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

func TestConnectionConfigValidate(t *testing.T) {
	t.Run("empty command rejected", func(t *testing.T) {
		config := ConnectionConfig{}
		assert.Error(t, config.validate())
	})

	t.Run("defaults filled", func(t *testing.T) {
		config := ConnectionConfig{Command: "python"}
		require.NoError(t, config.validate())
		assert.Equal(t, defaultTimeout, config.Timeout)
		assert.Equal(t, defaultClientInfo, config.ClientInfo)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		info := mcp.Implementation{Name: "custom", Version: "2.0.0"}
		config := ConnectionConfig{
			Command:    "node",
			Args:       []string{"server.js"},
			Timeout:    5 * time.Second,
			ClientInfo: info,
		}
		require.NoError(t, config.validate())
		assert.Equal(t, 5*time.Second, config.Timeout)
		assert.Equal(t, info, config.ClientInfo)
	})
}

func TestSessionRequiresConnection(t *testing.T) {
	s := NewSession(ConnectionConfig{Command: "python"})

	assert.False(t, s.IsConnected())

	_, err := s.ListTools(context.Background())
	assert.Error(t, err)

	_, err = s.CallTool(context.Background(), "query_weather", map[string]any{"city": "Beijing"})
	assert.Error(t, err)

	// Closing an unconnected session is a no-op.
	assert.NoError(t, s.Close())
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	s := NewSession(ConnectionConfig{})
	assert.Error(t, s.Connect(context.Background()))
}

func TestTimeoutContext(t *testing.T) {
	s := NewSession(ConnectionConfig{Command: "python", Timeout: time.Second})

	t.Run("applies configured timeout", func(t *testing.T) {
		ctx, cancel := s.timeoutContext(context.Background())
		defer cancel()
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
	})

	t.Run("respects caller deadline", func(t *testing.T) {
		parent, parentCancel := context.WithTimeout(context.Background(), time.Minute)
		defer parentCancel()

		ctx, cancel := s.timeoutContext(parent)
		defer cancel()
		assert.Same(t, parent, ctx)
	})
}

func TestTextContent(t *testing.T) {
	testCases := []struct {
		name     string
		contents []mcp.Content
		expected string
	}{
		{name: "empty", expected: ""},
		{
			name:     "single text part",
			contents: []mcp.Content{mcp.NewTextContent("hello")},
			expected: "hello",
		},
		{
			name: "multiple parts joined",
			contents: []mcp.Content{
				mcp.NewTextContent("line one"),
				mcp.NewTextContent("line two"),
			},
			expected: "line one\nline two",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textContent(tc.contents))
		})
	}
}

func TestConvertMCPSchemaToSchema(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, convertMCPSchemaToSchema(nil))
	})

	t.Run("full schema", func(t *testing.T) {
		input := map[string]any{
			"type":        "object",
			"description": "weather lookup arguments",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "city name",
				},
			},
			"required": []any{"city"},
		}

		schema := convertMCPSchemaToSchema(input)

		require.NotNil(t, schema)
		assert.Equal(t, "object", schema.Type)
		assert.Equal(t, "weather lookup arguments", schema.Description)
		assert.Equal(t, []string{"city"}, schema.Required)
		require.Contains(t, schema.Properties, "city")
		assert.Equal(t, "string", schema.Properties["city"].Type)
		assert.Equal(t, "city name", schema.Properties["city"].Description)
	})

	t.Run("non-map properties skipped", func(t *testing.T) {
		input := map[string]any{
			"type": "object",
			"properties": map[string]any{
				"bogus": "not a schema",
			},
		}

		schema := convertMCPSchemaToSchema(input)

		require.NotNil(t, schema)
		assert.Empty(t, schema.Properties)
	})
}
