package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"table", "json", "yaml"} {
		require.NoError(t, validateFormat(format))
	}

	require.ErrorIs(t, validateFormat("csv"), ErrUnknownFormat)
	require.ErrorIs(t, validateFormat(""), ErrUnknownFormat)
}

func TestRender(t *testing.T) {
	t.Parallel()

	type row struct {
		Name   string `json:"name" yaml:"name"`
		Status string `json:"status" yaml:"status"`
	}

	value := []row{{Name: "web", Status: "Active"}}
	header := []string{"Name", "Status"}
	rows := [][]string{{"web", "Active"}}

	tests := []struct {
		giveFormat string
		want       []string
	}{
		{giveFormat: "json", want: []string{`"name": "web"`, `"status": "Active"`}},
		{giveFormat: "yaml", want: []string{"- name: web", "  status: Active"}},
		{giveFormat: "table", want: []string{"web", "Active"}},
	}

	for _, tt := range tests {
		t.Run(tt.giveFormat, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, render(&buf, tt.giveFormat, value, header, rows))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, "table", "logs", "line 1"))
	assert.Equal(t, "line 1\n", buf.String())

	buf.Reset()
	require.NoError(t, renderText(&buf, "json", "logs", "line 1"))
	assert.JSONEq(t, `{"logs":"line 1"}`, buf.String())
}
