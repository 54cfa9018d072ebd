//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package model provides interfaces for working with LLMs.
package model

import "context"

// Model is the interface for all language models.
//
// System-level failures (nil request, network errors, invalid
// parameters) are returned as an error. API-level failures reported by
// the model service are carried in Response.Error so that callers can
// distinguish "could not talk to the service" from "the service said no".
type Model interface {
	// GenerateContent generates a completion for the given request.
	// The call is synchronous; streaming is not part of this interface.
	GenerateContent(ctx context.Context, request *Request) (*Response, error)

	// Info returns basic information about the model.
	Info() Info
}

// Info contains basic information about a model.
type Info struct {
	// Name is the name of the model.
	Name string
}
