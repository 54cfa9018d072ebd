//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package dialogue provides bounded conversational memory for a single
// session.
package dialogue

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-weather-agent-go/model"
)

const (
	// defaultMaxTurns is how many turns are retained before the oldest
	// are evicted.
	defaultMaxTurns = 5

	// maxContextPairs is how many user/assistant pairs RenderContext
	// includes.
	maxContextPairs = 3
)

// Turn is one recorded utterance or reply. Turns are immutable once
// created.
type Turn struct {
	// ID uniquely identifies the turn.
	ID string `json:"id"`
	// Role is the author of the turn: user or assistant.
	Role model.Role `json:"role"`
	// Content is the turn text.
	Content string `json:"content"`
	// Timestamp is when the turn was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// Memory is a bounded FIFO log of conversation turns. It retains at
// most the configured number of most recent turns; recording beyond the
// bound evicts the oldest first.
//
// Memory assumes single-writer, single-reader sequential access. Each
// concurrent session needs its own Memory instance.
type Memory struct {
	turns    []Turn
	maxTurns int
}

// Option configures a Memory.
type Option func(*Memory)

// WithMaxTurns overrides the retention bound.
func WithMaxTurns(n int) Option {
	return func(m *Memory) {
		if n > 0 {
			m.maxTurns = n
		}
	}
}

// NewMemory creates an empty memory retaining the 5 most recent turns
// by default.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{maxTurns: defaultMaxTurns}
	for _, opt := range opts {
		opt(m)
	}
	m.turns = make([]Turn, 0, m.maxTurns)
	return m
}

// Record appends a turn with the current timestamp, evicting the oldest
// turns so that the retention bound holds after every mutation.
func (m *Memory) Record(role model.Role, content string) Turn {
	turn := Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	m.turns = append(m.turns, turn)
	if overflow := len(m.turns) - m.maxTurns; overflow > 0 {
		m.turns = append(m.turns[:0], m.turns[overflow:]...)
	}
	return turn
}

// RenderContext returns the recent conversation as prompt material: the
// newest user turns (up to 3), each paired with the assistant turn that
// immediately follows it, rendered oldest-first as "User:"/"Assistant:"
// lines. Returns the empty string when no turns are stored.
func (m *Memory) RenderContext() string {
	var blocks []string
	for i := len(m.turns) - 1; i >= 0 && len(blocks) < maxContextPairs; i-- {
		if m.turns[i].Role != model.RoleUser {
			continue
		}
		lines := []string{"User: " + m.turns[i].Content}
		if i+1 < len(m.turns) && m.turns[i+1].Role == model.RoleAssistant {
			lines = append(lines, "Assistant: "+m.turns[i+1].Content)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}

	// Blocks were collected newest-first; emit them in chronological order.
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return strings.Join(blocks, "\n\n")
}

// Clear empties the log.
func (m *Memory) Clear() {
	m.turns = m.turns[:0]
}

// Len returns the number of stored turns.
func (m *Memory) Len() int {
	return len(m.turns)
}

// Turns returns a copy of the stored turns in insertion order.
func (m *Memory) Turns() []Turn {
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}
