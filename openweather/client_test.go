//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	const payload = `{"name":"Beijing","main":{"temp":22.5,"humidity":40}}`

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":     q.Get("q"),
			"appid": q.Get("appid"),
			"units": q.Get("units"),
			"lang":  q.Get("lang"),
		}
		assert.Equal(t, "weather-app/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	body, err := c.Current(context.Background(), "Beijing")
	require.NoError(t, err)

	assert.Equal(t, payload, string(body))
	assert.Equal(t, map[string]string{
		"q":     "Beijing",
		"appid": "test-key",
		"units": "metric",
		"lang":  "en",
	}, gotQuery)
}

func TestCurrentHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	_, err := c.Current(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error: 404")
}

func TestCurrentTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c := New("test-key", WithBaseURL(server.URL))

	_, err := c.Current(context.Background(), "Beijing")
	assert.Error(t, err)
}

func TestErrorPayload(t *testing.T) {
	assert.Equal(t, `{"error":"API key invalid"}`, ErrorPayload(errors.New("API key invalid")))
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name: "full payload",
			raw:  `{"name":"Beijing","sys":{"country":"CN"},"main":{"temp":22.5,"humidity":40},"wind":{"speed":3.2},"weather":[{"description":"clear sky"}]}`,
			expected: "🌍 Beijing, CN\n" +
				"🌡 Temperature: 22.5°C\n" +
				"💧 Humidity: 40%\n" +
				"🌬 Wind Speed: 3.2 m/s\n" +
				"🌤 Conditions: clear sky\n",
		},
		{
			name: "missing fields render placeholders",
			raw:  `{}`,
			expected: "🌍 Unknown, Unknown\n" +
				"🌡 Temperature: N/A°C\n" +
				"💧 Humidity: N/A%\n" +
				"🌬 Wind Speed: N/A m/s\n" +
				"🌤 Conditions: Unknown\n",
		},
		{
			name:     "error object",
			raw:      `{"error":"API key invalid"}`,
			expected: "⚠️ API key invalid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format([]byte(tc.raw)))
		})
	}
}

func TestFormatUnparseable(t *testing.T) {
	assert.Contains(t, Format([]byte("not json")), "Failed to parse weather data")
}
