package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/infowise/internal/common"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "es-EC"

// inputLayouts are tried in order. Fractional seconds are accepted after
// any seconds field; inputs without a zone are read as UTC.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

// DateFormatter renders backend dates as short, locale-ordered labels.
type DateFormatter struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

// NewDateFormatter builds a formatter for a BCP 47 locale. An empty locale
// means DefaultLocale and a nil loc means UTC.
func NewDateFormatter(locale string, loc *time.Location) (*DateFormatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DateFormatter{tag: tag, layout: layoutFor(tag), loc: loc}, nil
}

func layoutFor(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "es", "fr", "it", "pt", "de":
		return "02/01/2006"
	case "en":
		if region, _ := tag.Region(); region.String() == "US" {
			return "01/02/2006"
		}
	}
	return "2006-01-02"
}

// Locale returns the canonical locale tag.
func (f *DateFormatter) Locale() string { return f.tag.String() }

// Format returns the placeholder when raw is empty or unparseable.
func (f *DateFormatter) Format(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return common.Placeholder
	}
	for _, layout := range inputLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t.In(f.loc).Format(f.layout)
		}
	}
	return common.Placeholder
}
