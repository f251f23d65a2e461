package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kvark128/FolioCore/internal/bridge"
	"github.com/kvark128/FolioCore/internal/click"
	"github.com/kvark128/FolioCore/internal/config"
	"github.com/kvark128/FolioCore/internal/lang"
	"github.com/kvark128/FolioCore/internal/log"
	"github.com/kvark128/FolioCore/internal/settings"
)

const LogFile = "session.log"

type taps []string

func (t *taps) String() string {
	return strings.Join(*t, " ")
}

func (t *taps) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var tapURLs taps
	flagContent := flag.String("content", "", "chapter (X)HTML file to bind listeners to")
	flagID := flag.String("id", "", "reader identifier")
	flagLang := flag.String("lang", "", "interface language")
	flagLocales := flag.String("locales", "locales", "directory with translation catalogs")
	flagData := flag.String("data", config.UserData(), "directory for reader settings")
	flagDirection := flag.String("direction", "", "layout direction to store")
	flagLevel := flag.String("log", log.Info.String(), "log level")
	flag.Var(&tapURLs, "tap", "intercepted navigation URL (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [flags]\n\nPossible flags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := log.StringToLevel(*flagLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(os.Stderr, level)
	if err := os.MkdirAll(*flagData, 0o755); err == nil {
		if fl, err := os.Create(filepath.Join(*flagData, LogFile)); err == nil {
			logger.SetOutput(fl)
			defer fl.Close()
		}
	}
	logger.Info("Starting %s version %s", config.ProgramName, config.ProgramVersion)

	if err := run(os.Stdout, logger, *flagContent, *flagID, *flagLang, *flagLocales, *flagData, *flagDirection, tapURLs); err != nil {
		logger.Error("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("Exiting")
}

func run(out io.Writer, logger *log.Logger, content, id, preferred, locales, data, direction string, tapURLs []string) error {
	strs, language, err := lang.Load(locales, preferred, logger.Named("lang"))
	if err != nil {
		logger.Warning("Localization: %v", err)
	}

	opts := []config.Option{config.WithStrings(strs)}
	if id != "" {
		opts = append(opts, config.WithIdentifier(id))
	}
	cfg := config.New(opts...)
	cfg.AddClickListener(click.NewListener("quote", ".quote", "id", printer(out, "quote")))
	cfg.AddClickListener(click.NewListener("footnote", "a.footnote", "href", printer(out, "footnote")))
	cfg.AddClickListener(click.NewListener("image", "img", "src", printer(out, "image"), click.FirstMatchOnly()))

	store := settings.ForReader(data, cfg, logger.Named("settings"))
	st := settings.Initial(cfg)
	if err := store.Load(&st); err != nil {
		logger.Warning("%v", err)
	}
	if direction != "" {
		d, err := config.ParseDirection(direction)
		if err != nil {
			return err
		}
		st.Direction = d
	}
	cfg.Freeze()

	d := st.EffectiveDirection(cfg)
	layout := config.Resolve(d, cfg.Strings.Get(lang.LayoutVertical), cfg.Strings.Get(lang.LayoutHorizontal))
	fmt.Fprintf(out, "%s (%s): %s\n", cfg.Namespace(), language.Description, layout)

	if content != "" {
		f, err := os.Open(content)
		if err != nil {
			return fmt.Errorf("opening content: %w", err)
		}
		doc, err := bridge.Load(f)
		f.Close()
		if err != nil {
			return err
		}
		fmt.Fprint(out, bridge.Script(cfg.Listeners.Listeners()))
		for _, a := range bridge.Bind(doc, cfg.Listeners.Listeners()) {
			fmt.Fprintln(out, a.Tap(click.Point{}))
		}
	}

	for _, u := range tapURLs {
		if !cfg.Listeners.Intercept(u) {
			logger.Debug("Navigation %v was not intercepted", u)
		}
	}

	return store.Save(st)
}

func printer(out io.Writer, name string) click.Handler {
	return func(value *string, p click.Point) {
		v := "<none>"
		if value != nil {
			v = *value
		}
		fmt.Fprintf(out, "%s tapped at %g,%g: %s\n", name, p.X, p.Y, v)
	}
}
