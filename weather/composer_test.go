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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestFormatReportStructured(t *testing.T) {
	result := Structured(&Report{
		Location:    "Beijing",
		Country:     "CN",
		Temperature: 22.5,
		Humidity:    40,
		WindSpeed:   3.2,
		Description: "clear sky",
	})

	expected := "🌍 Current weather in Beijing, CN:\n" +
		"🌡 Temperature: 22.5°C\n" +
		"💧 Humidity: 40%\n" +
		"🌬 Wind speed: 3.2 m/s\n" +
		"🌤 Conditions: clear sky"
	assert.Equal(t, expected, FormatReport(result))
}

func TestFormatReportMissingFields(t *testing.T) {
	result := Structured(&Report{Temperature: 10, Humidity: 50, WindSpeed: 1})

	report := FormatReport(result)
	assert.Contains(t, report, "Current weather in N/A:")
	assert.Contains(t, report, "Conditions: N/A")
}

func TestFormatReportNoCountry(t *testing.T) {
	result := Structured(&Report{Location: "Paris", Description: "mist"})

	assert.Contains(t, FormatReport(result), "Current weather in Paris:")
}

func TestFormatReportPassthroughAndError(t *testing.T) {
	assert.Equal(t, "already rendered", FormatReport(Preformatted("already rendered")))
	assert.Equal(t, "⚠️ city not found", FormatReport(Errorf("city not found")))
}

func TestAssess(t *testing.T) {
	testCases := []struct {
		name            string
		report          *Report
		expectedLevel   Suitability
		expectedReasons []string
	}{
		{
			name:          "mild conditions",
			report:        &Report{Temperature: 20, WindSpeed: 3, Description: "clear sky"},
			expectedLevel: SuitabilitySuitable,
		},
		{
			name:            "high temperature",
			report:          &Report{Temperature: 32, WindSpeed: 5, Description: "clear sky"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"high temperature"},
		},
		{
			name:            "extreme heat accumulates reasons",
			report:          &Report{Temperature: 36, WindSpeed: 5, Description: "clear sky"},
			expectedLevel:   SuitabilityUnsuitable,
			expectedReasons: []string{"high temperature", "extreme heat"},
		},
		{
			name:            "low temperature",
			report:          &Report{Temperature: 2, WindSpeed: 1, Description: "clear sky"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"low temperature"},
		},
		{
			name:            "extreme cold",
			report:          &Report{Temperature: -10, WindSpeed: 1, Description: "clear sky"},
			expectedLevel:   SuitabilityUnsuitable,
			expectedReasons: []string{"low temperature", "extreme cold"},
		},
		{
			name:            "precipitation keyword",
			report:          &Report{Temperature: 20, WindSpeed: 2, Description: "light rain"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"precipitation"},
		},
		{
			name:            "precipitation counted once",
			report:          &Report{Temperature: 20, WindSpeed: 2, Description: "snow shower"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"precipitation"},
		},
		{
			name:            "strong wind",
			report:          &Report{Temperature: 20, WindSpeed: 12, Description: "clear sky"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"strong wind"},
		},
		{
			name:            "very strong wind",
			report:          &Report{Temperature: 20, WindSpeed: 18, Description: "clear sky"},
			expectedLevel:   SuitabilityUnsuitable,
			expectedReasons: []string{"strong wind", "very strong wind"},
		},
		{
			name: "poor air quality",
			report: &Report{
				Temperature: 20, WindSpeed: 2, Description: "haze",
				AirQualityIndex: floatPtr(180),
			},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"poor air quality"},
		},
		{
			name: "bad air quality",
			report: &Report{
				Temperature: 20, WindSpeed: 2, Description: "haze",
				AirQualityIndex: floatPtr(220),
			},
			expectedLevel:   SuitabilityUnsuitable,
			expectedReasons: []string{"poor air quality", "bad air quality"},
		},
		{
			name:            "multiple rule groups accumulate",
			report:          &Report{Temperature: 32, WindSpeed: 12, Description: "light rain"},
			expectedLevel:   SuitabilityMarginal,
			expectedReasons: []string{"high temperature", "precipitation", "strong wind"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, reasons := Assess(tc.report)

			assert.Equal(t, tc.expectedLevel, level)
			assert.Equal(t, tc.expectedReasons, reasons)
		})
	}
}

func TestFormatSuitabilitySuitable(t *testing.T) {
	result := Structured(&Report{
		Location:    "Beijing",
		Temperature: 20,
		Humidity:    40,
		WindSpeed:   3,
		Description: "clear sky",
	})

	out := FormatSuitability(result)

	require.True(t, strings.HasPrefix(out, "🌍 Current weather in Beijing:"))
	assert.Contains(t, out, "\n\n✅ The current weather is good, suitable for outdoor activities. Suggest dressing appropriately.")
}

func TestFormatSuitabilityAdverse(t *testing.T) {
	result := Structured(&Report{
		Location:    "Beijing",
		Temperature: 32,
		Humidity:    40,
		WindSpeed:   5,
		Description: "clear sky",
	})

	out := FormatSuitability(result)

	assert.Contains(t, out, "⚠️ The current weather has high temperature, marginal for going out. Adjust plans based on actual conditions.")
}

func TestFormatSuitabilityUnsuitable(t *testing.T) {
	result := Structured(&Report{
		Location:    "Beijing",
		Temperature: 36,
		Humidity:    40,
		WindSpeed:   5,
		Description: "clear sky",
	})

	out := FormatSuitability(result)

	assert.Contains(t, out, "high temperature, extreme heat, unsuitable for going out")
}

func TestFormatSuitabilityPassthroughAndError(t *testing.T) {
	assert.Equal(t, "already rendered", FormatSuitability(Preformatted("already rendered")))
	assert.Equal(t, "⚠️ boom", FormatSuitability(Errorf("boom")))
}

func TestSuitabilityString(t *testing.T) {
	assert.Equal(t, "suitable", SuitabilitySuitable.String())
	assert.Equal(t, "marginal", SuitabilityMarginal.String())
	assert.Equal(t, "unsuitable", SuitabilityUnsuitable.String())
}
