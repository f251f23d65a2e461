package lang

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kvark128/FolioCore/internal/log"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Domain is the gettext domain holding the reader catalogs:
// <dir>/<lang>/LC_MESSAGES/FolioCore.po
const Domain = "FolioCore"

type Language struct {
	ID          string
	Description string
}

var english = Language{ID: "en", Description: display.Self.Name(language.English)}

// SystemLanguage returns the user's language from the POSIX locale
// environment, or an empty string.
func SystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

// Available lists the catalogs found in dir. Every subdirectory named by a
// BCP 47 tag is a catalog.
func Available(dir string) []Language {
	langs := make([]Language, 0)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return langs
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		tag, err := language.Parse(e.Name())
		if err != nil {
			continue
		}
		langs = append(langs, Language{ID: e.Name(), Description: display.Self.Name(tag)})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].ID < langs[j].ID })
	return langs
}

// Load resolves the string table for the catalog in dir that best matches
// preferred. An empty preferred falls back to SystemLanguage. When no catalog
// matches, the English labels are returned.
func Load(dir, preferred string, logger *log.Logger) (Strings, Language, error) {
	if preferred == "" {
		preferred = SystemLanguage()
	}
	langs := Available(dir)

	if len(langs) == 0 {
		logger.Debug("No catalogs in %s, using English", dir)
		return Defaults(), english, nil
	}
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l.ID))
	}

	want, err := language.Parse(preferred)
	if err != nil && preferred != "" {
		logger.Warning("Preferred language %q: %v", preferred, err)
	}
	_, index, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		logger.Debug("No catalog for %q in %s, using English", preferred, dir)
		return Defaults(), english, nil
	}

	l := langs[index]
	path := filepath.Join(dir, l.ID)
	if _, err := os.Stat(path); err != nil {
		return Defaults(), english, fmt.Errorf("opening catalog: %w", err)
	}
	locale := gotext.NewLocale(dir, l.ID)
	locale.AddDomain(Domain)
	logger.Info("Loaded %s catalog from %s", l.ID, path)
	return Resolve(catalog{locale}), l, nil
}

type catalog struct {
	locale *gotext.Locale
}

func (c catalog) Get(str string, vars ...interface{}) string {
	return c.locale.GetD(Domain, str, vars...)
}
