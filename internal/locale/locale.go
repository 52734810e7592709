package locale

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/timeslot"
	"golang.org/x/text/language"
)

// Locale turns periodicities and values into labels.
type Locale interface {
	// Language returns the base language of the locale, e.g. "fr".
	Language() string

	// HumanizePeriodicity returns the label of a periodicity.
	HumanizePeriodicity(p domain.Periodicity) string

	// HumanizeValue returns the label of value, which must have the shape of
	// periodicity p. Values it cannot read are returned unchanged.
	HumanizeValue(p domain.Periodicity, value string) string
}

// languageTagRule is the validator rule applied to language identifiers
// before they are parsed.
const languageTagRule = "required,max=35,bcp47_language_tag"

var validate = validator.New()

var locales = map[string]Locale{
	"en": english,
	"es": spanish,
	"fr": french,
}

// Supported returns the base languages with a built-in table, sorted.
func Supported() []string {
	languages := make([]string, 0, len(locales))
	for lang := range locales {
		languages = append(languages, lang)
	}
	slices.Sort(languages)
	return languages
}

// Lookup returns the locale for a BCP 47 language tag such as "fr" or
// "es-MX". Region, script and extensions are ignored.
func Lookup(lang string) (Locale, error) {
	if err := validate.Var(lang, languageTagRule); err != nil {
		return nil, unknownLocale()
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, unknownLocale()
	}

	base, _ := tag.Base()
	l, ok := locales[base.String()]
	if !ok {
		return nil, unknownLocale()
	}
	return l, nil
}

func unknownLocale() error {
	return fmt.Errorf("%w: supported languages are %s",
		domain.ErrUnknownLocale, strings.Join(Supported(), ", "))
}

// HumanizeValue returns the label of slot in the given language.
func HumanizeValue(slot *timeslot.TimeSlot, lang string) (string, error) {
	l, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	return l.HumanizeValue(slot.Periodicity(), slot.Value()), nil
}

// HumanizePeriodicity returns the label of p in the given language.
func HumanizePeriodicity(p domain.Periodicity, lang string) (string, error) {
	l, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	return l.HumanizePeriodicity(p), nil
}

// number reads value[from:to] as a 1-based index into a table of size n.
func number(value string, from, to, n int) (int, bool) {
	if to > len(value) {
		return 0, false
	}
	i := 0
	for _, c := range value[from:to] {
		if c < '0' || c > '9' {
			return 0, false
		}
		i = i*10 + int(c-'0')
	}
	if i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// monthName returns the name of the month encoded at value[5:7].
func monthName(months *[12]string, value string) (string, bool) {
	i, ok := number(value, 5, 7, len(months))
	if !ok {
		return "", false
	}
	return months[i], true
}

// periodicityLabel falls back to the identifier for unknown periodicities.
func periodicityLabel(labels map[domain.Periodicity]string, p domain.Periodicity) string {
	if label, ok := labels[p]; ok {
		return label
	}
	return p.String()
}
