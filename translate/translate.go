package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when the host reports no locale.
const DefaultLanguage = "en-US"

var (
	printer *message.Printer
	current language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chip8asm: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message language from a list of preferred
// BCP 47 tags. An empty list selects DefaultLanguage.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{DefaultLanguage}
	}

	current = message.MatchLanguage(tags...)
	printer = message.NewPrinter(current)
}

// Language returns the tag messages are currently printed for.
func Language() language.Tag {
	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error is an error whose en-US text is translated each time it is
// reported, so it follows later SetLanguage calls.
type Error string

func (err Error) Error() string {
	return From(string(err))
}
