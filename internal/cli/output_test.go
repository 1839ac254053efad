package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (m mockDataWithID) GetID() int64 {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter() (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// Render / Success
// ============================================================================

func TestOutputFormatter_Render_JSON(t *testing.T) {
	f, out, _ := newTestFormatter()
	f.JSON = true

	require.NoError(t, f.Render(mockDataWithID{ID: 7, Name: "North"}, "ignored"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "North", data["name"])
}

func TestOutputFormatter_Render_YAML(t *testing.T) {
	f, out, _ := newTestFormatter()
	f.YAML = true

	require.NoError(t, f.Render(mockDataWithID{ID: 3, Name: "South"}, "ignored"))

	var decoded mockDataWithID
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, mockDataWithID{ID: 3, Name: "South"}, decoded)
	assert.NotContains(t, out.String(), "success")
}

func TestOutputFormatter_Render_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "with id", data: mockDataWithID{ID: 42}, want: "42\n"},
		{name: "pointer with id", data: &mockDataWithID{ID: 9}, want: "9\n"},
		{name: "without id", data: mockDataWithoutID{Name: "x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter()
			f.Quiet = true
			f.JSON = true // quiet wins

			require.NoError(t, f.Render(tt.data, "ignored"))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Render_Human(t *testing.T) {
	f, out, _ := newTestFormatter()

	require.NoError(t, f.Render(mockDataWithID{ID: 1}, "✓ done"))
	assert.Equal(t, "✓ done\n", out.String())
}

func TestOutputFormatter_Success_DefaultsToStructDump(t *testing.T) {
	f, out, _ := newTestFormatter()

	require.NoError(t, f.Success(mockDataWithoutID{Name: "hive", Value: 2}))
	assert.Contains(t, out.String(), "Name:hive")
	assert.Contains(t, out.String(), "Value:2")
}

func TestOutputFormatter_IDs(t *testing.T) {
	f, out, _ := newTestFormatter()

	require.NoError(t, f.IDs(1, 2, 3))
	assert.Equal(t, "1\n2\n3\n", out.String())
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter()
	f.JSON = true

	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "apiary 3 not found", "run apiary list"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "apiary 3 not found", errData["message"])
	assert.Equal(t, "run apiary list", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_JSONWithoutSuggestion(t *testing.T) {
	f, out, _ := newTestFormatter()
	f.JSON = true

	require.NoError(t, f.Error("DELETE_ERROR", "boom"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	_, hasSuggestion := result["error"].(map[string]any)["suggestion"]
	assert.False(t, hasSuggestion)
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter()

	require.NoError(t, f.ErrorWithSuggestion("X", "something broke", "try again"))

	assert.Empty(t, out.String())
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "something broke")
	assert.Contains(t, lines[1], "try again")
}
