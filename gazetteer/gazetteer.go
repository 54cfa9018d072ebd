//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package gazetteer maps native place names to the canonical English
// form the weather provider expects. Resolution is a best-effort
// lexical lookup with a transliteration fallback, not a geocoding
// service.
package gazetteer

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Normalize resolves a place name to its canonical English form.
// Resolution order, first match wins:
//  1. exact match against the city and province tables
//  2. prefix/substring match, so administrative suffixes such as
//     "北京市" or "广东省" still resolve
//  3. pinyin transliteration, capitalized
//
// Normalize never fails: when nothing applies, the input is returned
// unchanged.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	if en, ok := cityMap[name]; ok {
		return en
	}
	if en, ok := provinceMap[name]; ok {
		return en
	}

	if en, ok := partialMatch(name, cityMap); ok {
		return en
	}
	if en, ok := partialMatch(name, provinceMap); ok {
		return en
	}

	return transliterate(name)
}

// partialMatch finds a table key that the name starts with or contains.
// Longer keys are tried first so that e.g. 黑龙江 wins over 龙江.
func partialMatch(name string, table map[string]string) (string, bool) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	for _, key := range keys {
		if strings.HasPrefix(name, key) || strings.Contains(name, key) {
			return table[key], true
		}
	}
	return "", false
}

// transliterate converts Han characters to a capitalized pinyin
// sequence. Non-Han runes pass through unchanged, so names already in
// Latin letters come back intact apart from capitalization.
func transliterate(name string) string {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}

	syllables := pinyin.LazyPinyin(name, args)
	if len(syllables) == 0 {
		return name
	}

	joined := strings.Join(syllables, "")
	if joined == "" {
		return name
	}
	return titleCaser.String(joined)
}

// NativeCityNames returns the native-language city names known to the
// gazetteer, longest first. The router builds its extraction patterns
// from this list.
func NativeCityNames() []string {
	return sortedKeys(cityMap)
}

// EnglishCityNames returns the canonical English city names, longest first.
func EnglishCityNames() []string {
	return sortedValues(cityMap)
}

// NativeProvinceNames returns the native province-level region names,
// longest first.
func NativeProvinceNames() []string {
	return sortedKeys(provinceMap)
}

// EnglishProvinceNames returns the English province-level region names,
// longest first.
func EnglishProvinceNames() []string {
	return sortedValues(provinceMap)
}

func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sortLongestFirst(keys)
	return keys
}

func sortedValues(table map[string]string) []string {
	seen := make(map[string]bool, len(table))
	values := make([]string, 0, len(table))
	for _, v := range table {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sortLongestFirst(values)
	return values
}

// sortLongestFirst orders names by length descending, then
// lexicographically for determinism. Longest-first matters when the
// names are joined into a regex alternation.
func sortLongestFirst(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
}
