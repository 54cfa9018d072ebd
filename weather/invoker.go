//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package weather

import (
	"context"
	"encoding/json"
	"strings"

	"trpc.group/trpc-go/trpc-weather-agent-go/gazetteer"
	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/tool"
)

// DefaultToolName is the weather-lookup capability exposed by the
// sidecar.
const DefaultToolName = "query_weather"

// Invoker normalizes a detected city, calls the weather capability
// through the tool transport, and reduces whatever comes back to a
// Result. Transport and parse failures are absorbed into the error
// variant; Invoke never returns a Go error.
type Invoker struct {
	caller   tool.Caller
	toolName string
}

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithToolName overrides the name of the weather capability.
func WithToolName(name string) InvokerOption {
	return func(inv *Invoker) {
		if name != "" {
			inv.toolName = name
		}
	}
}

// NewInvoker creates an invoker calling through the given transport.
func NewInvoker(caller tool.Caller, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		caller:   caller,
		toolName: DefaultToolName,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Invoke looks up current weather for the given city. The city may be
// in any supported language; it is normalized to the provider's English
// form before the call.
func (inv *Invoker) Invoke(ctx context.Context, city string) Result {
	normalized := gazetteer.Normalize(city)
	log.Info("Resolved city", "requested", city, "normalized", normalized)

	text, err := inv.caller.CallTool(ctx, inv.toolName, map[string]any{"city": normalized})
	if err != nil {
		log.Warn("Weather tool call failed", "city", normalized, "error", err)
		return Errorf("weather tool call failed: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("Weather tool returned empty result", "city", normalized)
		return Errorf("empty result")
	}

	return normalize(text)
}

// openWeatherPayload mirrors the subset of the provider response the
// composer needs. The provider may instead return {"error": "..."} or
// pre-formatted plain text.
type openWeatherPayload struct {
	Error string `json:"error"`
	Name  string `json:"name"`
	Sys   struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	AirQuality *struct {
		AQI float64 `json:"aqi"`
	} `json:"air_quality"`
}

// normalize folds the raw tool text into the closed Result variant set:
// a JSON error object becomes the error variant, a complete JSON
// payload becomes structured fields, anything that does not parse as
// JSON is passed through as pre-formatted text, and a JSON payload
// missing required fields is rejected as an error.
func normalize(text string) Result {
	var payload openWeatherPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		// Not JSON; the provider sent pre-formatted text.
		log.Debug("Weather tool returned pre-formatted text")
		return Preformatted(text)
	}

	if payload.Error != "" {
		log.Warn("Weather provider returned error", "error", payload.Error)
		return Errorf("%s", payload.Error)
	}

	// The composer relies on this subset being present; incomplete
	// payloads are rejected here rather than downstream.
	if payload.Main == nil || payload.Wind == nil || len(payload.Weather) == 0 {
		log.Warn("Weather payload missing required fields")
		return Errorf("incomplete weather payload")
	}

	report := &Report{
		Location:    payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Description: payload.Weather[0].Description,
	}
	if payload.AirQuality != nil {
		aqi := payload.AirQuality.AQI
		report.AirQualityIndex = &aqi
	}
	return Structured(report)
}
