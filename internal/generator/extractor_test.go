package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleScript = []string{
	"#!/bin/bash",
	"#",
	"# Usage: frob [options] <file>...",
	"#",
	"# Options:",
	"#   -a --Aa x    The -a (or --Aa) option takes a parameter \"x\".",
	"#                Default: Default value for a",
	"#   -b --Bb      The -b/--Bb switch does not take any parameters, but it does",
	"#                have a rather long description.",
	"",
	"echo hello",
}

func TestExtractExample(t *testing.T) {
	doc, err := Extract(exampleScript)
	require.NoError(t, err)
	require.Len(t, doc.Options, 2)

	a := doc.Options[0]
	assert.Equal(t, "a", a.Short)
	assert.Equal(t, "Aa", a.Long)
	assert.Equal(t, "x", a.Argument)
	assert.Equal(t, "The -a (or --Aa) option takes a parameter \"x\".", a.Description)
	assert.Equal(t, "Default value for a", a.Value)

	b := doc.Options[1]
	assert.Equal(t, "b", b.Short)
	assert.Equal(t, "Bb", b.Long)
	assert.Empty(t, b.Argument)
	assert.Empty(t, b.Value)
	assert.Equal(t, "The -b/--Bb switch does not take any parameters, but it does\nhave a rather long description.", b.Description)
}

func TestExtractHelpText(t *testing.T) {
	doc, err := Extract(exampleScript)
	require.NoError(t, err)

	want := "\n" +
		"Usage: frob [options] <file>...\n" +
		"\n" +
		"Options:\n" +
		"  -a --Aa x    The -a (or --Aa) option takes a parameter \"x\".\n" +
		"               Default: Default value for a\n" +
		"  -b --Bb      The -b/--Bb switch does not take any parameters, but it does\n" +
		"               have a rather long description.\n"
	assert.Equal(t, want, doc.Help)
}

func TestExtractIdempotent(t *testing.T) {
	first, err1 := Extract(exampleScript)
	second, err2 := Extract(exampleScript)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestExtractMissingOptionsSection(t *testing.T) {
	doc, err := Extract([]string{
		"#!/bin/sh",
		"# Just a help text.",
		"# Nothing structured here.",
		"",
	})
	require.ErrorIs(t, err, ErrMissingOptionsSection)
	require.NotNil(t, doc)
	assert.Equal(t, "Just a help text.\nNothing structured here.\n", doc.Help)
	assert.Empty(t, doc.Options)
}

// The help block always stops at the first empty or whitespace-only line,
// even when later lines would otherwise qualify.
func TestHelpStopsAtFirstBlankLine(t *testing.T) {
	doc, err := Extract([]string{
		"# Options:",
		"#   -a --Aa x    First option.",
		"   ",
		"# Options:",
		"#   -b --Bb      Never reached.",
	})
	require.NoError(t, err)
	require.Len(t, doc.Options, 1)
	assert.Equal(t, "a", doc.Options[0].Short)
	assert.Equal(t, "Options:\n  -a --Aa x    First option.\n", doc.Help)
}

// A stray non-comment line inside the block is skipped without ending it.
func TestStrayLineDoesNotEndBlock(t *testing.T) {
	doc, err := Extract([]string{
		"# Options:",
		"set -e",
		"#   -a --Aa x    Still part of the block.",
		"",
	})
	require.NoError(t, err)
	require.Len(t, doc.Options, 1)
	assert.NotContains(t, doc.Help, "set -e")
}

func TestContinuationIndentOneColumnShort(t *testing.T) {
	doc, err := Extract([]string{
		"# Options:",
		"#   -a --Aa x    Takes a value.",
		"#               not a continuation, one column short",
		"",
	})
	require.NoError(t, err)
	require.Len(t, doc.Options, 1)
	assert.Equal(t, "Takes a value.", doc.Options[0].Description)
}

func TestContinuationDeeperIndentKept(t *testing.T) {
	doc, err := Extract([]string{
		"# Options:",
		"#   -a --Aa x    Takes a value.",
		"#                  indented past the description column",
		"",
	})
	require.NoError(t, err)
	require.Len(t, doc.Options, 1)
	assert.Equal(t, "Takes a value.\n  indented past the description column", doc.Options[0].Description)
}

func TestClassifyOptionLine(t *testing.T) {
	cases := []struct {
		name        string
		line        string
		indent      int
		haveCurrent bool
		want        lineKind
	}{
		{"header", "  -a --Aa x    Some description.", 0, false, lineHeader},
		{"header without argument", "  -b --Bb      A switch.", 0, true, lineHeader},
		{"uppercase word is not an argument", "  -b --Bb      The description.", 0, true, lineHeader},
		{"default", "               Default: something", 15, true, lineDefault},
		{"default before any option", "  Default: something", 2, false, lineIgnored},
		{"continuation", "     more text", 5, true, lineContinuation},
		{"continuation without current option", "     more text", 5, false, lineIgnored},
		{"under-indented text", "  more text", 5, true, lineIgnored},
		{"prose", "Some free prose in the options section.", 5, true, lineIgnored},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := classifyOptionLine(c.line, c.indent, c.haveCurrent)
			if got.kind != c.want {
				t.Errorf("kind: got %d, want %d", got.kind, c.want)
			}
		})
	}
}

func TestClassifyHeaderCaptures(t *testing.T) {
	got := classifyOptionLine("  -a --Aa x    The description.", 0, false)
	require.Equal(t, lineHeader, got.kind)
	assert.Equal(t, "a", got.opt.Short)
	assert.Equal(t, "Aa", got.opt.Long)
	assert.Equal(t, "x", got.opt.Argument)
	assert.Equal(t, "The description.", got.opt.Description)
	assert.Equal(t, 15, got.indent)
}

// A lowercase first description word on an argument-less declaration is
// captured as the argument; the column-based format makes the two
// indistinguishable, so a single trailing word becomes the description.
func TestClassifyHeaderSingleLowercaseWord(t *testing.T) {
	got := classifyOptionLine("  -v --verbose quiet", 0, false)
	require.Equal(t, lineHeader, got.kind)
	assert.Empty(t, got.opt.Argument)
	assert.Equal(t, "quiet", got.opt.Description)
}

func TestExtractSourceSplitsLines(t *testing.T) {
	doc, err := ExtractSource("# Options:\n#   -a --Aa x    Takes a value.\n\nexit 0\n")
	require.NoError(t, err)
	require.Len(t, doc.Options, 1)
}

func TestExtractNoCommentBlock(t *testing.T) {
	doc, err := Extract([]string{"echo hi", "exit 0"})
	require.True(t, errors.Is(err, ErrMissingOptionsSection))
	assert.Empty(t, doc.Help)
	assert.Empty(t, doc.Options)
}
