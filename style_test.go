package seqfmt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/seqfmt"
)

func TestDefaultStyle(t *testing.T) {
	t.Parallel()
	s := seqfmt.Default()
	assert.Equal(t, seqfmt.Style{Delimiter: ',', Open: '[', Close: ']', Space: true}, s)
}

func TestParseStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    seqfmt.Style
		wantErr require.ErrorAssertionFunc
	}{
		"list":    {input: "list", want: seqfmt.Default(), wantErr: require.NoError},
		"tuple":   {input: "tuple", want: seqfmt.Style{Delimiter: ',', Open: '(', Close: ')', Space: true}, wantErr: require.NoError},
		"set":     {input: "set", want: seqfmt.Style{Delimiter: ',', Open: '{', Close: '}', Space: true}, wantErr: require.NoError},
		"angle":   {input: "angle", want: seqfmt.Style{Delimiter: ',', Open: '<', Close: '>', Space: true}, wantErr: require.NoError},
		"unknown": {input: "csv", want: seqfmt.Style{}, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := seqfmt.ParseStyle(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyleUnknownSentinel(t *testing.T) {
	t.Parallel()
	_, err := seqfmt.ParseStyle("nope")
	require.ErrorIs(t, err, seqfmt.ErrUnknownStyle)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestStyleNames(t *testing.T) {
	t.Parallel()
	got := seqfmt.StyleNames()
	assert.Equal(t, []string{"angle", "list", "set", "tuple"}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, "angle", seqfmt.StyleNames()[0])
}

func TestStyleUnmarshalYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  seqfmt.Style
	}{
		"full": {
			input: "delimiter: \";\"\nopen: \"(\"\nclose: \")\"\nspace: false\n",
			want:  seqfmt.Style{Delimiter: ';', Open: '(', Close: ')', Space: false},
		},
		"partial falls back to defaults": {
			input: "delimiter: \"|\"\n",
			want:  seqfmt.Style{Delimiter: '|', Open: '[', Close: ']', Space: true},
		},
		"empty document": {
			input: "{}\n",
			want:  seqfmt.Default(),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got seqfmt.Style
			err := yaml.Unmarshal([]byte(tt.input), &got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleUnmarshalYAMLMultiRune(t *testing.T) {
	t.Parallel()
	var got seqfmt.Style
	err := yaml.Unmarshal([]byte("delimiter: \"--\"\n"), &got)
	require.ErrorIs(t, err, seqfmt.ErrInvalidStyle)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestStyleYAMLRoundTrip(t *testing.T) {
	t.Parallel()
	want := seqfmt.Style{Delimiter: '•', Open: '«', Close: '»', Space: false}
	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	var got seqfmt.Style
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestStyleUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var got seqfmt.Style
	err := json.Unmarshal([]byte(`{"delimiter":";","open":"(","close":")","space":false}`), &got)
	require.NoError(t, err)
	assert.Equal(t, seqfmt.Style{Delimiter: ';', Open: '(', Close: ')', Space: false}, got)
}

func TestStyleUnmarshalJSONMultiRune(t *testing.T) {
	t.Parallel()
	var got seqfmt.Style
	err := json.Unmarshal([]byte(`{"open":"[["}`), &got)
	require.ErrorIs(t, err, seqfmt.ErrInvalidStyle)
	assert.Contains(t, err.Error(), "open")
}

func TestStyleJSONRoundTrip(t *testing.T) {
	t.Parallel()
	want := seqfmt.Style{Delimiter: '\t', Open: '<', Close: '>', Space: true}
	data, err := json.Marshal(want)
	require.NoError(t, err)
	var got seqfmt.Style
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}
