package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport() Report {
	return Report{
		Path:  "poem.txt",
		Query: "duct",
		Count: 1,
		Lines: []string{"safe, fast, productive."},
	}
}

func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := testReport()
	r.Lines = []string{"Rust:", "", "Duct."}

	require.NoError(t, Write(&buf, Plain, r))
	assert.Equal(t, "Rust:\n\nDuct.\n", buf.String())
}

func TestWrite_PlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := testReport()
	r.Lines = nil

	require.NoError(t, Write(&buf, Plain, r))
	assert.Empty(t, buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, testReport()))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport(), got)
	assert.Contains(t, buf.String(), `"ignore_case":false`)
}

func TestWrite_JSONNoMatchesIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	r := testReport()
	r.Lines = nil
	r.Count = 0

	require.NoError(t, Write(&buf, JSON, r))
	assert.Contains(t, buf.String(), `"lines":[]`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, testReport()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport(), got)
	assert.Contains(t, buf.String(), "query: duct")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Plain))
	assert.NoError(t, Validate(JSON))
	assert.NoError(t, Validate(YAML))

	err := Validate("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "xml")

	assert.ErrorIs(t, Write(&bytes.Buffer{}, "xml", testReport()), ErrUnknownFormat)
}
