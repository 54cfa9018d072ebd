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
	"fmt"
	"strings"
)

// missingField is rendered in place of an absent report field.
const missingField = "N/A"

// Suitability classifies current weather for outdoor activity.
type Suitability int

const (
	// SuitabilitySuitable means no adverse rule fired.
	SuitabilitySuitable Suitability = iota
	// SuitabilityMarginal means conditions are workable but adverse.
	SuitabilityMarginal
	// SuitabilityUnsuitable means conditions rule outdoor activity out.
	SuitabilityUnsuitable
)

// String returns the user-facing word for the suitability level.
func (s Suitability) String() string {
	switch s {
	case SuitabilityMarginal:
		return "marginal"
	case SuitabilityUnsuitable:
		return "unsuitable"
	default:
		return "suitable"
	}
}

// adverseConditions are condition-description keywords that downgrade
// outdoor suitability.
var adverseConditions = []string{"rain", "thunderstorm", "drizzle", "snow", "shower"}

// FormatReport renders a result as a readable weather report.
// Pre-formatted text passes through verbatim; structured fields are
// rendered in fixed order. The error variant renders its message.
func FormatReport(result Result) string {
	switch result.Kind {
	case KindPreformatted:
		return result.Text
	case KindStructured:
		return renderReport(result.Report)
	default:
		return "⚠️ " + result.Message
	}
}

// renderReport renders the fixed-order multi-line report: location and
// country, temperature, humidity, wind speed, conditions.
func renderReport(report *Report) string {
	location := report.Location
	if location == "" {
		location = missingField
	}
	if report.Country != "" {
		location += ", " + report.Country
	}
	description := report.Description
	if description == "" {
		description = missingField
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 Current weather in %s:\n", location)
	fmt.Fprintf(&b, "🌡 Temperature: %.1f°C\n", report.Temperature)
	fmt.Fprintf(&b, "💧 Humidity: %.0f%%\n", report.Humidity)
	fmt.Fprintf(&b, "🌬 Wind speed: %.1f m/s\n", report.WindSpeed)
	fmt.Fprintf(&b, "🌤 Conditions: %s", description)
	return b.String()
}

// verdict is an accumulating suitability classification. Rules only
// ever raise the level; reasons accumulate across all fired rules.
type verdict struct {
	level   Suitability
	reasons []string
}

func (v *verdict) raise(level Suitability, reason string) {
	if level > v.level {
		v.level = level
	}
	v.reasons = append(v.reasons, reason)
}

// Assess applies the ordered suitability rule cascade to a structured
// report.
func Assess(report *Report) (Suitability, []string) {
	v := &verdict{}

	if report.Temperature > 30 {
		v.raise(SuitabilityMarginal, "high temperature")
	}
	if report.Temperature > 35 {
		v.raise(SuitabilityUnsuitable, "extreme heat")
	}
	if report.Temperature < 5 {
		v.raise(SuitabilityMarginal, "low temperature")
	}
	if report.Temperature < -5 {
		v.raise(SuitabilityUnsuitable, "extreme cold")
	}

	description := strings.ToLower(report.Description)
	for _, keyword := range adverseConditions {
		if strings.Contains(description, keyword) {
			v.raise(SuitabilityMarginal, "precipitation")
			break
		}
	}

	if report.WindSpeed > 10 {
		v.raise(SuitabilityMarginal, "strong wind")
	}
	if report.WindSpeed > 15 {
		v.raise(SuitabilityUnsuitable, "very strong wind")
	}

	if report.AirQualityIndex != nil {
		if *report.AirQualityIndex > 150 {
			v.raise(SuitabilityMarginal, "poor air quality")
		}
		if *report.AirQualityIndex > 200 {
			v.raise(SuitabilityUnsuitable, "bad air quality")
		}
	}

	return v.level, v.reasons
}

// FormatSuitability renders a result as an outdoor-suitability verdict:
// the regular report followed by a verdict sentence. Pre-formatted text
// passes through verbatim.
func FormatSuitability(result Result) string {
	switch result.Kind {
	case KindPreformatted:
		return result.Text
	case KindStructured:
	default:
		return "⚠️ " + result.Message
	}

	level, reasons := Assess(result.Report)

	var b strings.Builder
	b.WriteString(renderReport(result.Report))
	b.WriteString("\n\n")
	if level == SuitabilitySuitable {
		b.WriteString("✅ The current weather is good, suitable for outdoor activities. Suggest dressing appropriately.")
	} else {
		fmt.Fprintf(&b, "⚠️ The current weather has %s, %s for going out. Adjust plans based on actual conditions.",
			strings.Join(reasons, ", "), level)
	}
	return b.String()
}
