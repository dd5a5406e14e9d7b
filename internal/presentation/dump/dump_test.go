package dump_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JRed1989/ambari/internal/presentation/dump"
	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var snapshot = map[domain.ModelName]any{
	"clusters":    []string{"cl1"},
	"components":  []string{},
	"hosts":       []domain.Node{{Name: "c6401"}},
	"appSettings": domain.Params{"pageSize": 25},
}

func TestParseFormat(t *testing.T) {
	f, err := dump.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, dump.FormatJSON, f)

	_, err = dump.ParseFormat("xml")
	assert.Error(t, err)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Writer{Format: dump.FormatYAML}.Write(&buf, snapshot))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []any{"cl1"}, got["clusters"])
	assert.Equal(t, map[string]any{"pageSize": 25}, got["appSettings"])
	assert.Equal(t, "c6401", got["hosts"].([]any)[0].(map[string]any)["name"])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Writer{Format: dump.FormatJSON}.Write(&buf, snapshot))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []any{}, got["components"])
	assert.Equal(t, float64(25), got["appSettings"].(map[string]any)["pageSize"])
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	var rendered string
	w := dump.Writer{Format: dump.FormatMarkdown, Render: func(md string) (string, error) {
		rendered = md
		return strings.ToUpper(md), nil
	}}
	require.NoError(t, w.Write(&buf, snapshot))

	assert.Contains(t, rendered, "## clusters\n\n- cl1\n")
	assert.Contains(t, rendered, "## components\n\n_empty_\n")
	assert.Contains(t, rendered, "```yaml\n- name: c6401")
	assert.Less(t, strings.Index(rendered, "## appSettings"), strings.Index(rendered, "## clusters"))
	assert.Equal(t, strings.ToUpper(rendered), buf.String())
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Writer{Format: dump.FormatText}.Write(&buf, snapshot))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "appSettings\n"), out)
	assert.Contains(t, out, "clusters\n- cl1\n")
	assert.NotContains(t, out, "\x1b")
}
