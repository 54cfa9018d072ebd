//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package dialogue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-weather-agent-go/model"
)

func TestMemoryBoundNeverExceeded(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 20; i++ {
		m.Record(model.RoleUser, fmt.Sprintf("message %d", i))
		assert.LessOrEqual(t, m.Len(), 5, "bound must hold after every mutation")
	}
	assert.Equal(t, 5, m.Len())
}

func TestMemoryFIFOEviction(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 8; i++ {
		m.Record(model.RoleUser, fmt.Sprintf("message %d", i))
	}

	turns := m.Turns()
	require.Len(t, turns, 5)
	// The newest 5 are exactly preserved, oldest first.
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("message %d", i+3), turn.Content)
	}
}

func TestMemoryWithMaxTurns(t *testing.T) {
	m := NewMemory(WithMaxTurns(2))
	m.Record(model.RoleUser, "a")
	m.Record(model.RoleAssistant, "b")
	m.Record(model.RoleUser, "c")
	require.Equal(t, 2, m.Len())
	assert.Equal(t, "b", m.Turns()[0].Content)
	assert.Equal(t, "c", m.Turns()[1].Content)
}

func TestRenderContext(t *testing.T) {
	testCases := []struct {
		name     string
		record   [][2]string // role, content
		expected string
	}{
		{
			name:     "empty memory",
			record:   nil,
			expected: "",
		},
		{
			name:     "single user turn without reply",
			record:   [][2]string{{"user", "hello"}},
			expected: "User: hello",
		},
		{
			name: "one complete pair",
			record: [][2]string{
				{"user", "hello"},
				{"assistant", "hi there"},
			},
			expected: "User: hello\nAssistant: hi there",
		},
		{
			name: "pair plus dangling user turn",
			record: [][2]string{
				{"user", "hello"},
				{"assistant", "hi there"},
				{"user", "how are you"},
			},
			expected: "User: hello\nAssistant: hi there\n\nUser: how are you",
		},
		{
			name: "assistant only turn renders nothing",
			record: [][2]string{
				{"assistant", "unprompted"},
			},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMemory()
			for _, r := range tc.record {
				m.Record(model.Role(r[0]), r[1])
			}
			assert.Equal(t, tc.expected, m.RenderContext())
		})
	}
}

func TestRenderContextChronologicalOrder(t *testing.T) {
	// A larger memory holds more pairs than RenderContext includes;
	// only the newest 3 pairs appear, oldest pair first.
	m := NewMemory(WithMaxTurns(10))
	for i := 0; i < 5; i++ {
		m.Record(model.RoleUser, fmt.Sprintf("q%d", i))
		m.Record(model.RoleAssistant, fmt.Sprintf("a%d", i))
	}

	expected := "User: q2\nAssistant: a2\n\nUser: q3\nAssistant: a3\n\nUser: q4\nAssistant: a4"
	assert.Equal(t, expected, m.RenderContext())
}

func TestClear(t *testing.T) {
	m := NewMemory()
	m.Record(model.RoleUser, "hello")
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "", m.RenderContext())
}

func TestTurnFieldsPopulated(t *testing.T) {
	m := NewMemory()
	turn := m.Record(model.RoleUser, "hello")
	assert.NotEmpty(t, turn.ID)
	assert.Equal(t, model.RoleUser, turn.Role)
	assert.Equal(t, "hello", turn.Content)
	assert.False(t, turn.Timestamp.IsZero())
}
