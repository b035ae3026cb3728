package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<body>
<nav>Site Navigation</nav>
<main>
<h1>Senior Software Engineer</h1>
<h2>Requirements</h2>
<ul>
<li>Go experience</li>
<li>Distributed systems</li>
</ul>
</main>
<footer>Footer Links</footer>
</body>
</html>`

func TestExtractText_RemovesNoise(t *testing.T) {
	text, err := ExtractText(sampleHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "Go experience")
	assert.NotContains(t, text, "Site Navigation")
	assert.NotContains(t, text, "Footer Links")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body><p>Plain posting text</p></body></html>")
	require.NoError(t, err)

	assert.Contains(t, text, "Plain posting text")
}

func TestCleanText(t *testing.T) {
	input := "Title\r\n\r\n\r\n\r\nLine one   with    spaces\t\nLine two  "

	cleaned := CleanText(input)

	assert.Equal(t, "Title\n\nLine one with spaces\nLine two", cleaned)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\n  "))
}

func TestReadPostingFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Engineer\n\nRequirements\n- Go"), 0644))

	text, err := ReadPostingFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Engineer")
	assert.Contains(t, text, "- Go")
}

func TestReadPostingFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleHTML), 0644))

	text, err := ReadPostingFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Software Engineer")
	assert.NotContains(t, text, "Site Navigation")
}

func TestReadPostingFile_Missing(t *testing.T) {
	_, err := ReadPostingFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
