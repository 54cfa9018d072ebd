//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package router decides, per utterance, whether the weather tool
// should be called and with which city.
package router

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-weather-agent-go/dialogue"
	"trpc.group/trpc-go/trpc-weather-agent-go/log"
	"trpc.group/trpc-go/trpc-weather-agent-go/model"
)

const (
	// classifierMaxTokens keeps the classification reply short.
	classifierMaxTokens = 50
	// classifierTemperature keeps the classification deterministic.
	classifierTemperature = 0.0
)

// Decision is the outcome of routing one utterance.
type Decision struct {
	// CallTool indicates that the weather tool should be invoked.
	CallTool bool
	// City is the extracted location, in whatever language the user
	// wrote it. Empty when CallTool is false.
	City string
}

// Router classifies utterances and extracts target locations. The
// decision pipeline is strictly ordered and short-circuiting: keyword
// screen, regex location extraction, then a model-assisted
// classification fallback that fails closed.
type Router struct {
	classifier model.Model
	locales    []*Locale
}

// Option configures a Router.
type Option func(*Router)

// WithLocales overrides the locale set screened against. The first
// locale is primary: its prompt and markers drive the classification
// fallback.
func WithLocales(locales ...*Locale) Option {
	return func(r *Router) {
		if len(locales) > 0 {
			r.locales = locales
		}
	}
}

// New creates a Router using the given model for the classification
// fallback. By default both the Chinese and the English locale are
// screened.
func New(classifier model.Model, opts ...Option) *Router {
	r := &Router{
		classifier: classifier,
		locales:    []*Locale{Chinese(), English()},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsWeatherQuery reports whether the utterance contains a weather
// keyword of any configured locale.
func (r *Router) IsWeatherQuery(utterance string) bool {
	lowered := strings.ToLower(utterance)
	for _, loc := range r.locales {
		if loc.containsKeyword(lowered) {
			return true
		}
	}
	return false
}

// WantsSuitability reports whether the utterance asks about outdoor
// suitability rather than a plain weather report.
func (r *Router) WantsSuitability(utterance string) bool {
	lowered := strings.ToLower(utterance)
	for _, loc := range r.locales {
		if loc.containsOutdoorCue(lowered) {
			return true
		}
	}
	return false
}

// ExtractLocation runs the three-tier extraction cascade over the
// utterance: generic "X weather" phrasing first, then the enumerated
// city list, then the enumerated province list. Returns the empty
// string when no tier matches.
func (r *Router) ExtractLocation(utterance string) string {
	stripped := utterance
	for _, loc := range r.locales {
		stripped = loc.stripFillers(stripped)
	}

	// Tiers take precedence over locales: a tier-1 match in any locale
	// beats a tier-2 match in another.
	for tier := 0; tier < 3; tier++ {
		for _, loc := range r.locales {
			if tier >= len(loc.extractPatterns) {
				continue
			}
			if m := loc.extractPatterns[tier].FindStringSubmatch(stripped); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}

// Decide routes one utterance against the current dialogue memory.
func (r *Router) Decide(ctx context.Context, utterance string, memory *dialogue.Memory) Decision {
	if r.IsWeatherQuery(utterance) {
		if city := r.ExtractLocation(utterance); city != "" {
			return Decision{CallTool: true, City: city}
		}
		// Weather-related but no location found; let the model try.
	}
	return r.classify(ctx, utterance, memory)
}

// classify asks the classification model whether the utterance warrants
// a tool call. Any failure or ambiguity fails closed to "no tool".
func (r *Router) classify(ctx context.Context, utterance string, memory *dialogue.Memory) Decision {
	loc := r.locales[0]

	renderedContext := ""
	if memory != nil {
		renderedContext = memory.RenderContext()
	}
	if renderedContext == "" {
		renderedContext = "None"
	}

	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(fmt.Sprintf(loc.ClassifierPrompt, renderedContext)),
			model.NewUserMessage(utterance),
		},
		GenerationConfig: model.GenerationConfig{
			Temperature: model.FloatPtr(classifierTemperature),
			MaxTokens:   model.IntPtr(classifierMaxTokens),
		},
	}

	response, err := r.classifier.GenerateContent(ctx, request)
	if err != nil {
		log.Warn("Classification model call failed", "error", err)
		return Decision{}
	}
	if response.Error != nil {
		log.Warn("Classification model returned error", "error", response.Error.Message)
		return Decision{}
	}

	reply := strings.TrimSpace(response.Text())
	log.Debug("Classification decision", "reply", reply)

	lowered := strings.ToLower(reply)
	for _, locale := range r.locales {
		for _, marker := range locale.NegativeMarkers {
			if strings.Contains(lowered, marker) {
				return Decision{}
			}
		}
	}

	for _, locale := range r.locales {
		if m := locale.cityLabelPattern.FindStringSubmatch(reply); m != nil {
			return Decision{CallTool: true, City: strings.TrimSpace(m[1])}
		}
	}

	// The model said yes without naming a city; retry extraction on the
	// original utterance.
	if city := r.ExtractLocation(utterance); city != "" {
		return Decision{CallTool: true, City: city}
	}
	return Decision{}
}
