//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command weatherchat is the interactive weather assistant. It spawns
// the MCP weather sidecar given on the command line and answers
// utterances either from the chat model or from the weather tool.
//
// Usage:
//
//	weatherchat [-config config.yaml] <path_to_server_program>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"trpc.group/trpc-go/trpc-weather-agent-go/agent"
	"trpc.group/trpc-go/trpc-weather-agent-go/config"
	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/model/openai"
	"trpc.group/trpc-go/trpc-weather-agent-go/router"
	toolmcp "trpc.group/trpc-go/trpc-weather-agent-go/tool/mcp"
	"trpc.group/trpc-go/trpc-weather-agent-go/weather"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: weatherchat [-config config.yaml] <path_to_server_program>")
		os.Exit(1)
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		log.Fatalf("weatherchat: %v", err)
	}
}

func run(configPath, serverPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	command, args := serverCommand(serverPath, cfg.Tool.Args)
	session := toolmcp.NewSession(toolmcp.ConnectionConfig{
		Command: command,
		Args:    args,
		Timeout: cfg.Tool.Timeout,
	})
	if err := session.Connect(ctx); err != nil {
		return fmt.Errorf("connect to tool server: %w", err)
	}
	defer session.Close()

	available, err := session.HasTool(ctx, weather.DefaultToolName)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	if available {
		log.Info("Connected to server, weather query tool is available")
	} else {
		log.Warn("Connected to server, weather query tool is NOT available")
	}

	chatModel := openai.New(cfg.Chat.Model,
		openai.WithAPIKey(cfg.Chat.APIKey),
		openai.WithBaseURL(cfg.Chat.BaseURL),
	)
	classifierModel := openai.New(cfg.Classifier.Model,
		openai.WithAPIKey(cfg.Classifier.APIKey),
		openai.WithBaseURL(cfg.Classifier.BaseURL),
	)

	assistant := agent.New(
		chatModel,
		router.New(classifierModel, router.WithLocales(locales(cfg.Locale)...)),
		weather.NewInvoker(session),
	)

	chatLoop(ctx, assistant)
	return nil
}

// serverCommand maps the sidecar program path onto a spawnable command.
// Python and Node scripts run through their interpreters; anything else
// is executed directly.
func serverCommand(serverPath string, extraArgs []string) (string, []string) {
	switch {
	case strings.HasSuffix(serverPath, ".py"):
		return "python", append([]string{serverPath}, extraArgs...)
	case strings.HasSuffix(serverPath, ".js"):
		return "node", append([]string{serverPath}, extraArgs...)
	default:
		return serverPath, extraArgs
	}
}

// locales returns the locale set with the configured language first.
func locales(primary string) []*router.Locale {
	if primary == "en" {
		return []*router.Locale{router.English(), router.Chinese()}
	}
	return []*router.Locale{router.Chinese(), router.English()}
}

// chatLoop drives the interactive session until EOF or "quit".
func chatLoop(ctx context.Context, assistant *agent.Assistant) {
	fmt.Println("🤖 AI Assistant started! Type 'quit' to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			break
		}

		reply := assistant.ProcessQuery(ctx, query)
		fmt.Printf("\n🤖: %s\n", reply)
	}
}
