package lang

// Key names a localized label shown by the reader.
type Key string

const (
	HighlightsTitle         Key = "highlights_title"
	HighlightsDateFormat    Key = "highlights_date_format"
	HighlightMenu           Key = "highlight_menu"
	DefineMenu              Key = "define_menu"
	PlayMenu                Key = "play_menu"
	PauseMenu               Key = "pause_menu"
	FontMenuDay             Key = "font_menu_day"
	FontMenuNight           Key = "font_menu_night"
	PlayerMenuStyle         Key = "player_menu_style"
	LayoutHorizontal        Key = "layout_horizontal"
	LayoutVertical          Key = "layout_vertical"
	ReaderOnePageLeft       Key = "reader_one_page_left"
	ReaderManyPagesLeft     Key = "reader_many_pages_left"
	ReaderManyMinutes       Key = "reader_many_minutes"
	ReaderOneMinute         Key = "reader_one_minute"
	ReaderLessThanOneMinute Key = "reader_less_than_one_minute"
	ShareWebLink            Key = "share_web_link"
	ShareChapterSubject     Key = "share_chapter_subject"
	ShareHighlightSubject   Key = "share_highlight_subject"
	ShareAllExcerptsFrom    Key = "share_all_excerpts_from"
	ShareBy                 Key = "share_by"
	Cancel                  Key = "cancel"
	Share                   Key = "share"
	ChooseExisting          Key = "choose_existing"
	TakePhoto               Key = "take_photo"
	ShareImageQuote         Key = "share_image_quote"
	ShareTextQuote          Key = "share_text_quote"
	Save                    Key = "save"
	ContentsTitle           Key = "contents_title"
	EmptyHighlights         Key = "empty_highlights"
)

// English labels. They double as gettext message ids.
var defaults = map[Key]string{
	HighlightsTitle:         "Highlights",
	HighlightsDateFormat:    "MMM dd, YYYY | HH:mm",
	HighlightMenu:           "Highlight",
	DefineMenu:              "Define",
	PlayMenu:                "Play",
	PauseMenu:               "Pause",
	FontMenuDay:             "Day",
	FontMenuNight:           "Night",
	PlayerMenuStyle:         "Style",
	LayoutHorizontal:        "Horizontal",
	LayoutVertical:          "Vertical",
	ReaderOnePageLeft:       "1 page left",
	ReaderManyPagesLeft:     "pages left",
	ReaderManyMinutes:       "minutes",
	ReaderOneMinute:         "1 minute",
	ReaderLessThanOneMinute: "Less than a minute",
	ShareWebLink:            "",
	ShareChapterSubject:     "Check out this chapter from",
	ShareHighlightSubject:   "Notes from",
	ShareAllExcerptsFrom:    "All excerpts from",
	ShareBy:                 "by",
	Cancel:                  "Cancel",
	Share:                   "Share",
	ChooseExisting:          "Choose existing",
	TakePhoto:               "Take Photo",
	ShareImageQuote:         "Share image quote",
	ShareTextQuote:          "Share text quote",
	Save:                    "Save",
	ContentsTitle:           "Contents",
	EmptyHighlights:         "No highlights",
}

// Strings is a resolved table of localized labels.
type Strings map[Key]string

// Defaults returns a new table holding the English labels.
func Defaults() Strings {
	s := make(Strings, len(defaults))
	for k, v := range defaults {
		s[k] = v
	}
	return s
}

// Keys returns every known key.
func Keys() []Key {
	keys := make([]Key, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

// Get returns the label for k, falling back to the English label.
func (s Strings) Get(k Key) string {
	if v, ok := s[k]; ok {
		return v
	}
	return defaults[k]
}

// Translator looks up a message by its English text. *gotext.Locale
// satisfies it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// Resolve translates every label once. Labels with no English text, such as
// the share web link, are never sent to the translator.
func Resolve(t Translator) Strings {
	s := Defaults()
	if t == nil {
		return s
	}
	for k, msgid := range s {
		if msgid == "" {
			continue
		}
		s[k] = t.Get(msgid)
	}
	return s
}
