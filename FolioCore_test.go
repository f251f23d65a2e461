package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kvark128/FolioCore/internal/config"
	"github.com/kvark128/FolioCore/internal/log"
	"github.com/kvark128/FolioCore/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStoresDirection(t *testing.T) {
	dir := t.TempDir()
	chapter := filepath.Join(dir, "chapter.xhtml")
	require.NoError(t, os.WriteFile(chapter, []byte(`<p class="quote" id="q1">x</p><img src="a.png">`), 0o644))

	var out bytes.Buffer
	err := run(&out, log.Discard(), chapter, "book-1", "en", filepath.Join(dir, "locales"), dir, "horizontal",
		[]string{"quote:///clientX=1,clientY=2?value=q1", "image:///clientX=3,clientY=4", "https://example.com"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "book-1 (English): Horizontal\n")
	assert.Contains(t, out.String(), "quote:///clientX=0,clientY=0?value=q1\n")
	assert.Contains(t, out.String(), "quote tapped at 1,2: q1\n")
	assert.Contains(t, out.String(), "image tapped at 3,4: <none>\n")
	assert.NotContains(t, out.String(), "footnote tapped")

	var st settings.State
	require.NoError(t, settings.Open(dir, "book-1", log.Discard()).Load(&st))
	assert.Equal(t, config.Horizontal, st.Direction)
}

func TestRunRejectsUnknownDirection(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := run(&out, log.Discard(), "", "", "en", dir, dir, "diagonal", nil)
	assert.Error(t, err)
}

func TestTapsFlag(t *testing.T) {
	var tp taps
	require.NoError(t, tp.Set("a://1/clientX=0,clientY=0"))
	require.NoError(t, tp.Set("b://2/clientX=0,clientY=0"))
	assert.Len(t, tp, 2)
	assert.Contains(t, tp.String(), "b://2")
}
