//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package model

import "time"

// Error type constants for ResponseError.
const (
	// ErrorTypeAPIError indicates an error reported by the model API.
	ErrorTypeAPIError = "api_error"
	// ErrorTypeInvalidRequest indicates a malformed request.
	ErrorTypeInvalidRequest = "invalid_request_error"
)

// ToolCall represents a call to a tool (function) in the model response.
type ToolCall struct {
	// Type of the tool. Currently, only `function` is supported.
	Type string `json:"type"`
	// Function definition for the tool.
	Function FunctionCall `json:"function,omitempty"`
	// The ID of the tool call returned by the model.
	ID string `json:"id,omitempty"`
}

// FunctionCall names a function and carries its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments []byte `json:"arguments,omitempty"`
}

// Choice represents a single completion choice.
type Choice struct {
	// Index is the index of the choice.
	Index int `json:"index"`

	// Message is the complete message for this choice.
	Message Message `json:"message"`

	// FinishReason is why the model stopped generating. Typical values
	// are "stop", "length" and "tool_calls".
	FinishReason string `json:"finish_reason,omitempty"`
}

// Usage contains token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ResponseError contains API-level error information.
type ResponseError struct {
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Type categorizes the error.
	Type string `json:"type"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return e.Message
}

// Response is the response from the model.
type Response struct {
	// ID is the unique identifier for this response.
	ID string `json:"id"`

	// Model is the model used to generate the response.
	Model string `json:"model"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`

	// Choices contains the completion choices.
	Choices []Choice `json:"choices"`

	// Usage contains token usage information, when the backend reports it.
	Usage *Usage `json:"usage,omitempty"`

	// Error contains API-level error information if the request failed.
	// This is nil for successful responses.
	Error *ResponseError `json:"error,omitempty"`

	// Timestamp is when this response was received.
	Timestamp time.Time `json:"timestamp"`
}

// Text returns the assistant message content of the first choice, or
// the empty string when the response carries no choices.
func (rsp *Response) Text() string {
	if rsp == nil || len(rsp.Choices) == 0 {
		return ""
	}
	return rsp.Choices[0].Message.Content
}

// ToolCalls returns the tool calls of the first choice, if any.
func (rsp *Response) ToolCalls() []ToolCall {
	if rsp == nil || len(rsp.Choices) == 0 {
		return nil
	}
	return rsp.Choices[0].Message.ToolCalls
}
