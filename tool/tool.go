//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tool provides tool interfaces and declarations for the assistant.
package tool

import "context"

// Caller is the transport-facing capability of a tool host: invoke a
// named tool with a JSON argument object and get its text content back.
// It is implemented by the MCP session and by test fakes.
type Caller interface {
	// CallTool invokes the named tool. The returned string is the
	// concatenated text content of the result; it may be empty.
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// Declaration describes the metadata of a tool, such as its name, description, and expected arguments.
type Declaration struct {
	// Name is the unique identifier of the tool
	Name string `json:"name"`

	// Description explains the tool's purpose and functionality
	Description string `json:"description"`

	// InputSchema defines the expected input for the tool in JSON schema format.
	InputSchema *Schema `json:"inputSchema"`
}

// Schema represents the structure of JSON Schema used for defining arguments.
// It follows the JSON Schema standard, supporting various types, properties,
// and validation rules.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
}
