// Package i18n sets up gotext and looks up displayed strings.
package i18n

import (
	"log"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain of the game's catalogs
const Domain = "default"

// dynamicGet is used for runtime translation key lookups.
// Keys come from map data, so the format string is never constant.
var dynamicGet = gotext.Get

// Configure loads the catalogs for lang from dir (dir/lang/LC_MESSAGES/default.po).
// A missing catalog is logged and leaves keys untranslated.
func Configure(dir, lang string) {
	po := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
	if _, err := os.Stat(po); err != nil {
		log.Printf("i18n: no catalog for %s in %s, showing keys as written", lang, dir)
	}
	gotext.Configure(dir, lang, Domain)
}

// T translates s. Strings that are not keys come back unchanged.
func T(s string) string {
	if s == "" {
		return s
	}
	return dynamicGet(s)
}

// Lines translates each line of a message page
func Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = T(l)
	}
	return out
}
