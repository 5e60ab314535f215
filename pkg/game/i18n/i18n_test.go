package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

const catalog = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "GUARD_HALT"
msgstr "Halt! Who goes there?"
`

func TestConfigureAndTranslate(t *testing.T) {
	dir := t.TempDir()
	lc := filepath.Join(dir, "en_GB", "LC_MESSAGES")
	if err := os.MkdirAll(lc, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lc, Domain+".po"), []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	Configure(dir, "en_GB")

	if got := T("GUARD_HALT"); got != "Halt! Who goes there?" {
		t.Errorf("T(GUARD_HALT) = %q", got)
	}
	if got := T("Plain text"); got != "Plain text" {
		t.Errorf("T(plain) = %q, want unchanged", got)
	}
	got := Lines([]string{"GUARD_HALT", ""})
	if got[0] != "Halt! Who goes there?" || got[1] != "" {
		t.Errorf("Lines = %q", got)
	}
}
