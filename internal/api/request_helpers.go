package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/timeslot/internal/locale"
	"golang.org/x/text/language"
)

// resolveLocale picks the label language of a request: the lang query
// parameter, then the first supported Accept-Language entry, then fallback.
// An explicit but unknown lang parameter is an error; an unusable
// Accept-Language header is not.
func resolveLocale(r *http.Request, fallback string) (locale.Locale, error) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return locale.Lookup(lang)
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		// Tags come back sorted by quality.
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil {
			for _, tag := range tags {
				if l, err := locale.Lookup(tag.String()); err == nil {
					return l, nil
				}
			}
		}
	}

	return locale.Lookup(fallback)
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD or RFC 3339", ErrInvalidDate)
}
