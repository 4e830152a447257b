package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testResult() *Result {
	return &Result{
		Records: []FileRecord{
			{
				RelativeDir:     "Downloads/b",
				Name:            "y.bin",
				SizeBytes:       2048,
				SizeDisplay:     "2.0KB",
				ModifiedAt:      1700003600,
				ModifiedDisplay: "14Nov23 23:13:20 UTC",
				Owner:           "tester",
			},
			{
				RelativeDir:     "Downloads/a",
				Name:            "x.txt",
				SizeBytes:       10,
				SizeDisplay:     "10.0B",
				ModifiedAt:      1700000000.25,
				ModifiedDisplay: "14Nov23 22:13:20 UTC",
				Owner:           "tester",
			},
		},
	}
}

func Test_RenderTable_alignsColumns(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderTable(&buf, testResult()))

	expected := "" +
		"relative_dir  name   size_bytes  size_display        modified_at  modified_display      owner\n" +
		"Downloads/b   y.bin        2048  2.0KB         1700003600.000000  14Nov23 23:13:20 UTC  tester\n" +
		"Downloads/a   x.txt          10  10.0B         1700000000.250000  14Nov23 22:13:20 UTC  tester\n"

	assert.Equal(t, expected, buf.String())
}

func Test_RenderTable_measuresWideCharacters(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{Records: []FileRecord{{RelativeDir: "d", Name: "写真.jpg", SizeDisplay: "0.0B", Owner: "o"}}}

	require.NoError(t, RenderTable(&buf, result))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// 写真.jpg is 8 columns wide, the same as "name" padded to the column width
	assert.Equal(t, strings.Index(lines[0], "size_bytes"), len("relative_dir  ")+8+len(columnGap))
}

func Test_RenderTable_printsHeaderForEmptyResult(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderTable(&buf, &Result{}))

	assert.Equal(t, strings.Join(Columns, columnGap)+"\n", buf.String())
}

func Test_RenderJSON_writesRecords(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderJSON(&buf, testResult()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "y.bin", decoded[0]["name"])
	assert.Equal(t, float64(2048), decoded[0]["size_bytes"])
	assert.Equal(t, "Downloads/a", decoded[1]["relative_dir"])
}

func Test_RenderJSON_writesEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderJSON(&buf, &Result{}))

	assert.Equal(t, "[]\n", buf.String())
}

func Test_RenderYAML_writesRecords(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderYAML(&buf, testResult()))

	var decoded []FileRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testResult().Records, decoded)
}

func Test_NewRenderer_selectsFormat(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []string{"", "table", "JSON", "yaml"} {
		renderer, err := NewRenderer(format)
		assert.NoError(err, format)
		assert.NotNil(renderer, format)
	}

	renderer, err := NewRenderer("csv")
	assert.Nil(renderer)
	assert.ErrorContains(err, "csv")
}
