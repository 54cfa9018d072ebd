//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package agent drives one conversation turn at a time: it records the
// utterance, routes it, invokes the weather tool when warranted,
// composes the reply and records it.
package agent

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-weather-agent-go/dialogue"
	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/model"
	"trpc.group/trpc-go/trpc-weather-agent-go/router"
	"trpc.group/trpc-go/trpc-weather-agent-go/weather"
)

// Fallback replies. Every failure inside a turn surfaces as one of
// these; raw errors never reach the user.
const (
	// weatherFallbackFormat names the requested city.
	weatherFallbackFormat = "Sorry, I can't get weather information for %s right now. You can check weather apps later for updated information."

	// answerFallback is used when the direct-answer completion fails.
	answerFallback = "Sorry, I can't process this request right now. Please try again later."

	// genericApology is used for any unclassified failure during a turn.
	genericApology = "Sorry, an error occurred while processing your request. Please try again later."
)

const answerPrompt = `You are a friendly AI assistant capable of understanding context and providing helpful responses.
Current dialogue context:
%s

User question:
%s

Please provide a natural and helpful response based on the context and user question.`

// WeatherInvoker looks up current weather for a city. Implemented by
// weather.Invoker and by test stubs.
type WeatherInvoker interface {
	Invoke(ctx context.Context, city string) weather.Result
}

// Assistant orchestrates a single conversation. Turns are processed
// strictly sequentially; an Assistant must not be shared across
// concurrent sessions.
type Assistant struct {
	chat    model.Model
	router  *router.Router
	invoker WeatherInvoker
	memory  *dialogue.Memory
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithMemory substitutes the dialogue memory, e.g. one with a different
// retention bound.
func WithMemory(m *dialogue.Memory) Option {
	return func(a *Assistant) {
		if m != nil {
			a.memory = m
		}
	}
}

// New creates an assistant answering directly through chat and routing
// weather lookups through invoker.
func New(chat model.Model, rt *router.Router, invoker WeatherInvoker, opts ...Option) *Assistant {
	a := &Assistant{
		chat:    chat,
		router:  rt,
		invoker: invoker,
		memory:  dialogue.NewMemory(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Memory exposes the assistant's dialogue memory.
func (a *Assistant) Memory() *dialogue.Memory {
	return a.memory
}

// ProcessQuery handles one turn: the utterance is recorded, routed and
// answered, and the reply recorded. A turn never returns an error; any
// failure is absorbed into an apologetic reply so the session loop
// survives.
func (a *Assistant) ProcessQuery(ctx context.Context, query string) (reply string) {
	a.memory.Record(model.RoleUser, query)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic while processing query", "panic", r)
			reply = genericApology
			a.memory.Record(model.RoleAssistant, reply)
		}
	}()

	reply = a.answer(ctx, query)
	a.memory.Record(model.RoleAssistant, reply)
	return reply
}

// answer produces the reply for one routed utterance.
func (a *Assistant) answer(ctx context.Context, query string) string {
	decision := a.router.Decide(ctx, query, a.memory)
	if decision.CallTool && decision.City != "" {
		return a.answerWeather(ctx, query, decision.City)
	}
	return a.answerDirect(ctx, query)
}

// answerWeather is the tool path. An error result is terminal for the
// turn: the fallback sentence is returned without a further model call.
func (a *Assistant) answerWeather(ctx context.Context, query, city string) string {
	result := a.invoker.Invoke(ctx, city)
	if result.IsError() {
		log.Warn("Weather lookup failed", "city", city, "error", result.Message)
		return fmt.Sprintf(weatherFallbackFormat, city)
	}
	if a.router.WantsSuitability(query) {
		return weather.FormatSuitability(result)
	}
	return weather.FormatReport(result)
}

// answerDirect is the no-tool path: a context-grounded completion.
func (a *Assistant) answerDirect(ctx context.Context, query string) string {
	renderedContext := a.memory.RenderContext()
	if renderedContext == "" {
		renderedContext = "None"
	}

	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(fmt.Sprintf(answerPrompt, renderedContext, query)),
		},
	}
	response, err := a.chat.GenerateContent(ctx, request)
	if err != nil {
		log.Warn("Direct answer call failed", "error", err)
		return answerFallback
	}
	if response.Error != nil {
		log.Warn("Direct answer returned error", "error", response.Error.Message)
		return answerFallback
	}

	text := strings.TrimSpace(response.Text())
	if text == "" {
		return answerFallback
	}
	return text
}
