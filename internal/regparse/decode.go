package regparse

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf16LEBOM is the byte-order mark reg.exe emits when redirected output
// comes out as UTF-16LE (seen with /unicode-style console setups).
var utf16LEBOM = []byte{0xFF, 0xFE}

// Decode converts captured console bytes to a UTF-8 string.
//
// A UTF-16LE BOM wins over everything. In UTF-8 mode (code page 65001 was
// switched before reg.exe ran) the bytes are already UTF-8. Otherwise the
// output is in the console's ANSI code page; Windows-1252 covers the
// common case and is a superset of ASCII, so English output is unaffected.
func Decode(b []byte, utf8Mode bool) string {
	if bytes.HasPrefix(b, utf16LEBOM) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := io.ReadAll(transform.NewReader(bytes.NewReader(b), dec))
		if err == nil {
			return string(out)
		}
		return string(b)
	}

	if utf8Mode {
		return string(b)
	}

	dec := charmap.Windows1252.NewDecoder()
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(b), dec))
	if err != nil {
		return string(b)
	}
	return string(out)
}
