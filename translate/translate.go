// Package translate formats assembler diagnostics for the user's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hexasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	SetLanguage(Match(locales...))
}

// Match picks the best supported language for a list of BCP 47 locales.
func Match(locales ...string) (tag language.Tag) {
	tag, _ = language.MatchStrings(matcher, locales...)
	base, _ := tag.Base()
	return language.Make(base.String())
}

// SetLanguage selects the language of all following messages.
func SetLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag, message.Catalog(messages)))
}

// From an en-US Sprintf() format, translate to string.
//
// Numbers are grouped per locale; pass pre-rendered strings where the
// exact digits matter.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
