package lang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kvark128/FolioCore/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ruCatalog = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: ru\n"

msgid "Highlights"
msgstr "Выделения"

msgid "Cancel"
msgstr "Отмена"
`

func writeCatalog(t *testing.T, dir, lang, body string) {
	t.Helper()
	path := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

type upper struct{ calls int }

func (u *upper) Get(str string, vars ...interface{}) string {
	u.calls++
	return strings.ToUpper(str)
}

func TestDefaultsAreFresh(t *testing.T) {
	a := Defaults()
	a[Cancel] = "changed"
	assert.Equal(t, "Cancel", Defaults()[Cancel])
	assert.Len(t, Keys(), len(a))
}

func TestStringsGetFallsBack(t *testing.T) {
	s := Strings{Cancel: "Abbrechen"}
	assert.Equal(t, "Abbrechen", s.Get(Cancel))
	assert.Equal(t, "Save", s.Get(Save))
	assert.Equal(t, "", s.Get(Key("unknown")))

	var empty Strings
	assert.Equal(t, "Highlights", empty.Get(HighlightsTitle))
}

func TestResolveSkipsEmptyLabels(t *testing.T) {
	tr := &upper{}
	s := Resolve(tr)
	assert.Equal(t, "HIGHLIGHTS", s[HighlightsTitle])
	assert.Equal(t, "", s[ShareWebLink])
	assert.Equal(t, len(Keys())-1, tr.calls)

	assert.Equal(t, Defaults(), Resolve(nil))
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "ru", ruCatalog)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "de"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "not a tag!"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr"), nil, 0o644))

	langs := Available(dir)
	require.Len(t, langs, 2)
	assert.Equal(t, "de", langs[0].ID)
	assert.Equal(t, "ru", langs[1].ID)
	assert.NotEmpty(t, langs[1].Description)

	assert.Empty(t, Available(filepath.Join(dir, "missing")))
}

func TestLoadMatchesCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "ru", ruCatalog)

	s, l, err := Load(dir, "ru-RU", log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "ru", l.ID)
	assert.Equal(t, "Выделения", s.Get(HighlightsTitle))
	assert.Equal(t, "Отмена", s.Get(Cancel))
	// Untranslated labels keep the English text.
	assert.Equal(t, "Save", s.Get(Save))
}

func TestLoadEnglishCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "ru", ruCatalog)
	writeCatalog(t, dir, "en", `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Highlights"
msgstr "Marks"
`)

	for _, preferred := range []string{"en", "en-GB"} {
		s, l, err := Load(dir, preferred, log.Discard())
		require.NoError(t, err)
		assert.Equal(t, "en", l.ID, preferred)
		assert.Equal(t, "Marks", s.Get(HighlightsTitle), preferred)
		assert.Equal(t, "Cancel", s.Get(Cancel), preferred)
	}

	s, l, err := Load(dir, "ru", log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "ru", l.ID)
	assert.Equal(t, "Выделения", s.Get(HighlightsTitle))
}

func TestLoadFallsBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "ru", ruCatalog)

	s, l, err := Load(dir, "ja", log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "en", l.ID)
	assert.Equal(t, Defaults(), s)

	s, l, err = Load(filepath.Join(dir, "missing"), "ru", log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "en", l.ID)
	assert.Equal(t, "Highlights", s.Get(HighlightsTitle))
}

func TestSystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "pt_BR.UTF-8")
	assert.Equal(t, "pt-BR", SystemLanguage())

	t.Setenv("LC_ALL", "de_DE@euro")
	assert.Equal(t, "de-DE", SystemLanguage())

	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "", SystemLanguage())
}
