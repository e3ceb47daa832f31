// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventDisplay(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want string
	}{
		{"stream start", Event{Kind: StreamStartEvent}, "+STR"},
		{"stream end", Event{Kind: StreamEndEvent}, "-STR"},
		{"doc start implicit", Event{Kind: DocStartEvent}, "+DOC"},
		{"doc start explicit", Event{Kind: DocStartEvent, ExplicitDirectivesEnd: true}, "+DOC ---"},
		{"doc end implicit", Event{Kind: DocEndEvent}, "-DOC"},
		{"doc end explicit", Event{Kind: DocEndEvent, ExplicitDocEnd: true}, "-DOC ..."},
		{"block map", Event{Kind: MapStartEvent, Style: BlockCollectionStyle}, "+MAP"},
		{"flow map", Event{Kind: MapStartEvent, Style: FlowCollectionStyle}, "+MAP {}"},
		{"flow seq", Event{Kind: SeqStartEvent, Style: FlowCollectionStyle}, "+SEQ []"},
		{"pair map", Event{Kind: MapStartEvent, Style: PairCollectionStyle}, "+MAP {}"},
		{"plain scalar", Event{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "a"}, "=VAL :a"},
		{"anchored scalar", Event{Kind: ScalarEvent, Props: Properties{Anchor: "x"}, Content: "3"}, "=VAL &x :3"},
		{
			"tagged scalar",
			Event{Kind: ScalarEvent, Props: Properties{Tag: StrTag}, ScalarStyle: LiteralScalarStyle, Content: "hello\nworld\n"},
			"=VAL <tag:yaml.org,2002:str> |hello\\nworld\\n",
		},
		{"alias", Event{Kind: AliasEvent, Target: "x"}, "=ALI *x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.ev.Display())
		})
	}
}

func TestEventEqualIgnoresPositions(t *testing.T) {
	a := Event{Kind: ScalarEvent, Content: "x", StartPos: Mark{Line: 1, Column: 0}}
	b := Event{Kind: ScalarEvent, Content: "x", StartPos: Mark{Line: 9, Column: 4}}
	require.True(t, a.Equal(b))

	c := Event{Kind: ScalarEvent, Content: "y"}
	require.False(t, a.Equal(c))
}

func TestPropertiesIsEmpty(t *testing.T) {
	require.True(t, Properties{}.IsEmpty())
	require.True(t, Properties{Tag: NonSpecificQuestionTag}.IsEmpty())
	require.False(t, Properties{Anchor: "x"}.IsEmpty())
	require.False(t, Properties{Tag: StrTag}.IsEmpty())
}
