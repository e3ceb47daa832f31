// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yamlcore "github.com/streamyaml/yamlcore"
)

func TestParseAndDisplay(t *testing.T) {
	p := yamlcore.NewParser([]byte("a: 1\nb: [2, 3]\n"))
	var got []string
	for {
		var ev yamlcore.Event
		require.NoError(t, p.Parse(&ev))
		got = append(got, yamlcore.Display(ev))
		if ev.Kind == yamlcore.StreamEndEvent {
			break
		}
	}
	require.Equal(t, []string{
		"+STR", "+DOC", "+MAP",
		"=VAL :a", "=VAL :1",
		"=VAL :b", "+SEQ []", "=VAL :2", "=VAL :3", "-SEQ",
		"-MAP", "-DOC", "-STR",
	}, got)
}

func TestTransformRoundTrip(t *testing.T) {
	var buf strings.Builder
	opts := yamlcore.DefaultPresenterOptions()
	err := yamlcore.Transform([]byte("a: 1\nb: two\n"), &buf, opts, false)
	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: two\n", buf.String())
}

func TestTransformResolvesCoreTags(t *testing.T) {
	var buf strings.Builder
	err := yamlcore.Transform([]byte("3\n"), &buf, yamlcore.DefaultPresenterOptions(), true)
	require.NoError(t, err)
	require.Equal(t, "!<tag:yaml.org,2002:int> 3\n", buf.String())
}

func TestPresentStringJSONMode(t *testing.T) {
	events := []yamlcore.Event{
		{Kind: yamlcore.StreamStartEvent},
		{Kind: yamlcore.DocStartEvent},
		{Kind: yamlcore.MapStartEvent, Style: yamlcore.BlockCollectionStyle},
		{Kind: yamlcore.ScalarEvent, ScalarStyle: yamlcore.PlainScalarStyle, Content: "a"},
		{Kind: yamlcore.ScalarEvent, ScalarStyle: yamlcore.PlainScalarStyle, Content: "b"},
		{Kind: yamlcore.MapEndEvent},
		{Kind: yamlcore.DocEndEvent},
		{Kind: yamlcore.StreamEndEvent},
	}
	opts := yamlcore.DefaultPresenterOptions()
	opts.Quoting = "json"
	s, err := yamlcore.PresentString(events, opts)
	require.NoError(t, err)
	require.Equal(t, `{"a": "b"}`+"\n", s)
}

func TestPresenterOptionsValidateRejectsBadIndent(t *testing.T) {
	opts := yamlcore.DefaultPresenterOptions()
	opts.Indent = 0
	require.Error(t, opts.Validate())
}
