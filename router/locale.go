//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package router

import (
	"regexp"
	"strings"

	"trpc.group/trpc-go/trpc-weather-agent-go/gazetteer"
)

// Locale carries the language-specific material of the routing
// pipeline: keyword lists, filler words, extraction patterns and the
// classification prompt. The detection logic itself is shared across
// locales.
type Locale struct {
	// Name identifies the locale, e.g. "en" or "zh".
	Name string

	// WeatherKeywords classify an utterance as weather-related.
	// Matching is case-insensitive on the lowered utterance.
	WeatherKeywords []string

	// FillerWords are stripped from the utterance before location
	// extraction.
	FillerWords []string

	// extractPatterns is the three-tier extraction cascade, in order:
	// generic "X weather" phrasing, enumerated city names, enumerated
	// province names.
	extractPatterns []*regexp.Regexp

	// NegativeMarkers indicate a negative classification decision in
	// the model's free-text reply.
	NegativeMarkers []string

	// cityLabelPattern extracts a city from a labeled "city: X" answer.
	cityLabelPattern *regexp.Regexp

	// OutdoorCues mark an utterance as asking about outdoor suitability.
	OutdoorCues []string

	// ClassifierPrompt is the system prompt for the classification
	// fallback; the single %s receives the rendered dialogue context.
	ClassifierPrompt string
}

// containsKeyword reports whether the lowered utterance contains any
// weather keyword of this locale.
func (l *Locale) containsKeyword(lowered string) bool {
	for _, kw := range l.WeatherKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// containsOutdoorCue reports whether the lowered utterance asks about
// going out.
func (l *Locale) containsOutdoorCue(lowered string) bool {
	for _, cue := range l.OutdoorCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

// stripFillers removes this locale's filler words from the utterance.
func (l *Locale) stripFillers(utterance string) string {
	for _, w := range l.FillerWords {
		utterance = strings.ReplaceAll(utterance, w, "")
	}
	return strings.TrimSpace(utterance)
}

const englishClassifierPrompt = `You are an assistant helping to judge user intent. Determine whether the user is asking for weather information.

Judgment principles:
1. If the query clearly asks about the weather (words like "weather", "temperature", "humidity", "rain") and names a city, the weather query tool should be called
2. If the query is casual chat, a general question, or a request that needs no external data, do not call the tool
3. If the query does not match a standard weather phrasing but the intent is clearly weather, still call the tool
4. Prefer the tool for real-time data over built-in knowledge

Current dialogue context:
%s

Answer "yes" or "no". When yes, also name the city as "city: <name>".`

const chineseClassifierPrompt = `你是一个帮助判断用户意图的助手。请判断用户是否在询问天气信息。

判断原则：
1. 如果查询明显是询问天气（包含"天气"、"温度"、"湿度"、"下雨"等词）且指定了城市，则应该调用天气查询工具
2. 如果查询是闲聊、一般性问题或不需要外部数据的请求，则不需要调用工具
3. 如果查询格式不符合标准天气查询格式，但意图明显是查询天气，仍应调用工具
4. 优先使用工具获取实时数据，而不是依赖内置知识

当前对话上下文：
%s

请回答"是"或"否"。如果需要调用工具，请以"城市: <名称>"的形式给出城市。`

// English returns the English locale.
func English() *Locale {
	return &Locale{
		Name: "en",
		WeatherKeywords: []string{
			"weather", "temperature", "humidity", "rain", "snow",
			"sunny", "cloudy", "wind",
		},
		FillerWords: []string{"please", "know", "you"},
		extractPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(.+?)(?: now| today|'s) weather`),
			nameListPattern(gazetteer.EnglishCityNames(), `(?: city| municipality)?`, true),
			nameListPattern(gazetteer.EnglishProvinceNames(), `(?: province| autonomous region)?`, true),
		},
		NegativeMarkers:  []string{"no", "not needed", "none"},
		cityLabelPattern: regexp.MustCompile(`(?i)city[:：]\s*(\S+)`),
		OutdoorCues:      []string{"go out", "outdoor"},
		ClassifierPrompt: englishClassifierPrompt,
	}
}

// Chinese returns the Chinese locale.
func Chinese() *Locale {
	return &Locale{
		Name: "zh",
		WeatherKeywords: []string{
			"天气", "温度", "气温", "湿度", "下雨", "下雪",
			"晴天", "雨天", "多云", "风力",
		},
		FillerWords: []string{"请问", "请", "知道", "你"},
		extractPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(.+?)(?:现在|今天|的)天气`),
			nameListPattern(gazetteer.NativeCityNames(), `[市省]?`, false),
			nameListPattern(gazetteer.NativeProvinceNames(), `(?:省|市|自治区)?`, false),
		},
		NegativeMarkers:  []string{"否", "不需要", "无"},
		cityLabelPattern: regexp.MustCompile(`城市[:：]\s*(\S+)`),
		OutdoorCues:      []string{"出门", "外出", "户外"},
		ClassifierPrompt: chineseClassifierPrompt,
	}
}

// nameListPattern builds a capture pattern over an enumerated name
// list with an optional trailing administrative suffix. The list must
// be ordered longest-first so that longer names win inside the
// alternation.
func nameListPattern(names []string, suffix string, caseInsensitive bool) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	pattern := `((?:` + strings.Join(quoted, "|") + `)` + suffix + `)`
	if caseInsensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.MustCompile(pattern)
}
