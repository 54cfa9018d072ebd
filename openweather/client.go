//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package openweather fetches current conditions from the OpenWeather
// API. It backs the sidecar weather server; the assistant core never
// talks to it directly.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// defaultBaseURL is the OpenWeather current-conditions endpoint.
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	// userAgent identifies this client to the provider.
	userAgent = "weather-app/1.0"

	// defaultTimeout bounds a single lookup.
	defaultTimeout = 30 * time.Second
)

// Client queries the OpenWeather current-conditions API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, e.g. for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current fetches current weather for an English city name and returns
// the raw JSON payload. Units are metric and the condition description
// is requested in English.
func (c *Client) Current(ctx context.Context, city string) ([]byte, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return body, nil
}

// ErrorPayload renders an error as the JSON error object the tool
// contract defines.
func ErrorPayload(err error) string {
	b, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return `{"error":"internal error"}`
	}
	return string(b)
}

// Format renders a raw payload as readable text. A payload carrying an
// error object renders its message; missing fields render placeholders.
func Format(raw []byte) string {
	var data struct {
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
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Sprintf("Failed to parse weather data: %v", err)
	}
	if data.Error != "" {
		return "⚠️ " + data.Error
	}

	name := data.Name
	if name == "" {
		name = "Unknown"
	}
	country := data.Sys.Country
	if country == "" {
		country = "Unknown"
	}
	temp, humidity, wind := "N/A", "N/A", "N/A"
	if data.Main != nil {
		temp = fmt.Sprintf("%g", data.Main.Temp)
		humidity = fmt.Sprintf("%g", data.Main.Humidity)
	}
	if data.Wind != nil {
		wind = fmt.Sprintf("%g", data.Wind.Speed)
	}
	description := "Unknown"
	if len(data.Weather) > 0 && data.Weather[0].Description != "" {
		description = data.Weather[0].Description
	}

	return fmt.Sprintf(
		"🌍 %s, %s\n🌡 Temperature: %s°C\n💧 Humidity: %s%%\n🌬 Wind Speed: %s m/s\n🌤 Conditions: %s\n",
		name, country, temp, humidity, wind, description,
	)
}
