//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package weather normalizes weather-tool responses and composes the
// user-facing replies built from them.
package weather

import "fmt"

// Kind discriminates the variants of a normalized weather result.
type Kind int

const (
	// KindError is a failed lookup with a message.
	KindError Kind = iota
	// KindStructured carries parsed weather fields.
	KindStructured
	// KindPreformatted carries provider-rendered text passed through
	// verbatim.
	KindPreformatted
)

// Report holds the structured weather fields of a successful lookup.
type Report struct {
	// Location is the resolved place name.
	Location string
	// Country is the ISO country code, possibly empty.
	Country string
	// Temperature in degrees Celsius.
	Temperature float64
	// Humidity in percent.
	Humidity float64
	// WindSpeed in meters per second.
	WindSpeed float64
	// Description is the condition description, e.g. "clear sky".
	Description string
	// AirQualityIndex is the optional AQI reading.
	AirQualityIndex *float64
}

// Result is the normalized shape every weather-tool response is reduced
// to. Downstream consumers only ever switch on Kind; the raw tool
// payload never leaves the invoker.
type Result struct {
	Kind Kind

	// Report is set when Kind is KindStructured.
	Report *Report

	// Text is set when Kind is KindPreformatted.
	Text string

	// Message is set when Kind is KindError.
	Message string
}

// Structured wraps a report.
func Structured(report *Report) Result {
	return Result{Kind: KindStructured, Report: report}
}

// Preformatted wraps provider-rendered text.
func Preformatted(text string) Result {
	return Result{Kind: KindPreformatted, Text: text}
}

// Errorf builds an error result.
func Errorf(format string, args ...any) Result {
	return Result{Kind: KindError, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether the result is the error variant.
func (r Result) IsError() bool {
	return r.Kind == KindError
}
