package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cheerioskun/codevol/internal/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return New("/p", []string{"ts"}, models.Listing{
		models.NewDirEntry("/p/sub", 1500),
		models.NewFileEntry("/p/a.ts", 500),
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService(afero.NewMemMapFs()).Write(&buf, sampleReport(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "Code Volume - /p")
	assert.Contains(t, out, "Filter: ts")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "sub/")
	assert.Contains(t, out, "a.ts")
	assert.Contains(t, out, "Total: 2,000 lines in 2 entries")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService(afero.NewMemMapFs()).Write(&buf, sampleReport(), FormatJSON))

	var decoded struct {
		Path    string
		Total   int64
		Entries []struct {
			Name  string
			Kind  string
			Count int64
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/p", decoded.Path)
	assert.Equal(t, int64(2000), decoded.Total)
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "dir", decoded.Entries[0].Kind)
	assert.Equal(t, "a.ts", decoded.Entries[1].Name)
}

func TestEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService(afero.NewMemMapFs()).Write(&buf, New("/e", nil, nil), FormatJSON))
	assert.JSONEq(t, `{"path":"/e","extensions":[],"total":0,"entries":[]}`, buf.String())
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(fs)

	require.NoError(t, svc.WriteFile("/out/report.json", sampleReport(), FormatJSON, false))
	data, err := afero.ReadFile(fs, "/out/report.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total": 2000`)

	err = svc.WriteFile("/out/report.json", sampleReport(), FormatJSON, false)
	assert.Error(t, err, "refuses to overwrite")

	require.NoError(t, svc.WriteFile("/out/report.json", New("/e", nil, nil), FormatText, true))
	data, err = afero.ReadFile(fs, "/out/report.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Code Volume - /e")
	assert.Contains(t, string(data), "Filter: all files")
}
