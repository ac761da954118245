package tape

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the observable trace of entries: token, display and
// history of every step, in order. Keys are excluded so a session typed
// with custom bindings matches its replay through canonical tokens.
func Fingerprint(entries []Entry) string {
	d := xxhash.New()
	for _, e := range entries {
		d.WriteString(e.Token)
		d.WriteString("\x00")
		d.WriteString(e.Display)
		d.WriteString("\x00")
		d.WriteString(e.History)
		d.WriteString("\n")
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
