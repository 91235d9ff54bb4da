package transcript

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "episode.docx")

	err := WriteDocx("episode", []string{"Hello world", "Second line"}, out, Style{Font: "Arial", FontSize: 12})
	require.NoError(t, err)

	body := readDocumentXML(t, out)
	require.Contains(t, body, "episode")
	first := strings.Index(body, "Hello world")
	second := strings.Index(body, "Second line")
	require.True(t, first >= 0 && second > first, "lines missing or out of order")
}

func TestWriteDocx_BadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "episode.docx")

	err := WriteDocx("episode", []string{"x"}, out, Style{Font: "Arial", FontSize: 12})
	require.Error(t, err)
}

func readDocumentXML(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatal("word/document.xml not found")
	return ""
}
