package srt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{name: "empty", line: "", want: Blank},
		{name: "whitespace only", line: " \t ", want: Blank},
		{name: "single digit index", line: "1", want: Index},
		{name: "multi digit index with padding", line: "  1024 ", want: Index},
		{name: "timestamp range", line: "00:00:01,000 --> 00:00:02,000", want: Timestamp},
		{name: "timestamp with cue settings", line: "00:00:01,000 --> 00:00:02,000 X1:10 X2:20", want: Timestamp},
		{name: "timestamp with surrounding spaces", line: "  01:02:03,456 --> 01:02:04,000  ", want: Timestamp},
		{name: "dot milliseconds are text", line: "00:00:01.000 --> 00:00:02.000", want: Text},
		{name: "single digit hours are text", line: "0:00:01,000 --> 0:00:02,000", want: Text},
		{name: "missing arrow spaces are text", line: "00:00:01,000-->00:00:02,000", want: Text},
		{name: "spoken clock is text", line: "00:05", want: Text},
		{name: "digits with words", line: "1 more time", want: Text},
		{name: "negative number", line: "-1", want: Text},
		{name: "plain text", line: "Hello world", want: Text},
		{name: "cjk text", line: "氛圍實驗室", want: Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestClassify_TextIffNotOtherKinds(t *testing.T) {
	lines := []string{
		"", "   ", "7", "0007", "12:34:56,789 --> 12:34:57,000", "Hello",
		"00:00:01,000", "42 is the answer", "♪ music ♪", "1\t2",
	}
	for _, line := range lines {
		kind := Classify(line)
		isOther := kind == Blank || kind == Index || kind == Timestamp
		assert.Equal(t, !isOther, kind == Text, "line %q classified as %s", line, kind)
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "blank", Blank.String())
	assert.Equal(t, "index", Index.String())
	assert.Equal(t, "timestamp", Timestamp.String())
	assert.Equal(t, "text", Text.String())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "mixed newlines", content: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "cr then lf pair", content: "a\r\n\r\nb", want: []string{"a", "", "b"}},
		{name: "form feed and vertical tab", content: "a\fb\vc", want: []string{"a", "b", "c"}},
		{name: "separators", content: "a\x1cb\x1dc\x1ed", want: []string{"a", "b", "c", "d"}},
		{name: "unicode breaks", content: "a\u0085b\u2028c\u2029d", want: []string{"a", "b", "c", "d"}},
		{name: "multibyte text", content: "氛圍\n實驗室", want: []string{"氛圍", "實驗室"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.content))
		})
	}

	assert.Empty(t, SplitLines(""))
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("\ufeff1\nHello"))
	require.NoError(t, err)
	assert.Equal(t, "1\nHello", got)

	got, err = Decode([]byte("no bom"))
	require.NoError(t, err)
	assert.Equal(t, "no bom", got)

	_, err = Decode([]byte("caf\xe9"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "two cues",
			content: "1\n" +
				"00:00:01,000 --> 00:00:02,000\n" +
				"Hello world\n" +
				"\n" +
				"2\n" +
				"00:00:03,000 --> 00:00:04,000\n" +
				"Second line\n",
			want: "Hello world\nSecond line",
		},
		{
			name: "multi line cue keeps order",
			content: "1\n00:00:01,000 --> 00:00:02,000\na\nb\n\n" +
				"2\n00:00:03,000 --> 00:00:04,000\nc\n",
			want: "a\nb\nc",
		},
		{
			name:    "crlf line endings",
			content: "1\r\n00:00:01,000 --> 00:00:02,000\r\n  Hi there  \r\n\r\n",
			want:    "Hi there",
		},
		{
			name:    "duplicates are kept",
			content: "1\n00:00:01,000 --> 00:00:02,000\nsame\n\n2\n00:00:02,000 --> 00:00:03,000\nsame\n",
			want:    "same\nsame",
		},
		{
			name:    "digit-only dialogue is dropped",
			content: "1\n00:00:01,000 --> 00:00:02,000\n2024\n",
			want:    "",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.content))
		})
	}
}

func TestTextLines(t *testing.T) {
	got := TextLines("1\n00:00:01,000 --> 00:00:02,000\n first \n\n second\n")
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestTextLines_LineSeparators(t *testing.T) {
	got := TextLines("1\n00:00:01,000 --> 00:00:02,000\nfirst\u2028second\f2\n")
	assert.Equal(t, []string{"first", "second"}, got)
}
