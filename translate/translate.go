// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible messages for the simpleLang
// toolchain in the caller's locale.
package translate

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     atomic.Pointer[message.Printer]
	printerOnce sync.Once
)

// Fallback is the locale used when the system reports none.
const Fallback = "en-US"

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("simplelang: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	printer.CompareAndSwap(nil, message.NewPrinter(message.MatchLanguage(locales...)))
}

// SetLanguage forces the message printer to a specific language tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	printer.Store(message.NewPrinter(lang))
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Load().Sprintf(key, args...)
}
