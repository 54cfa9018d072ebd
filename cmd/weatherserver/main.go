//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command weatherserver is the MCP stdio sidecar exposing the
// query_weather tool over the OpenWeather API. Run it through
// weatherchat rather than directly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"trpc.group/trpc-go/trpc-weather-agent-go/config"
	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/openweather"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	format := flag.String("format", "json", "tool output format: json or text")
	flag.Parse()

	if err := run(*configPath, *format); err != nil {
		log.Fatalf("weatherserver: %v", err)
	}
}

func run(configPath, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	if cfg.OpenWeatherAPIKey == "" {
		return errors.New("OPENWEATHER_API_KEY is not set")
	}
	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q, expected json or text", format)
	}

	client := openweather.New(cfg.OpenWeatherAPIKey)

	server := mcp.NewStdioServer("WeatherServer", "1.0.0")
	weatherTool := mcp.NewTool("query_weather",
		mcp.WithDescription("Input a city name in English and return today's weather information."),
		mcp.WithString("city", mcp.Required(), mcp.Description("City name (must be in English, e.g. Beijing)")),
	)
	server.RegisterTool(weatherTool, queryWeatherHandler(client, format))

	log.Info("Starting weather MCP server", "format", format)
	return server.Start()
}

// queryWeatherHandler builds the query_weather tool handler. Provider
// failures are reported inside the tool result as a JSON error object,
// never as an MCP-level error, matching the tool contract.
func queryWeatherHandler(client *openweather.Client, format string) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city, _ := req.Params.Arguments["city"].(string)
		if city == "" {
			return nil, fmt.Errorf("missing required parameter: city")
		}

		var text string
		raw, err := client.Current(ctx, city)
		if err != nil {
			log.Warn("OpenWeather lookup failed", "city", city, "error", err)
			text = openweather.ErrorPayload(err)
		} else {
			text = string(raw)
		}
		if format == "text" {
			text = openweather.Format([]byte(text))
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(text)},
		}, nil
	}
}
