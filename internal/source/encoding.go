package source

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decodeToUTF8 strips a UTF-8 BOM and transcodes Latin-1 input to UTF-8.
// Spreadsheet exports from older machines arrive in Windows-1252; the digits
// and separators we care about survive the transcode untouched.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, bomUTF8)
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to transcode source to UTF-8: %w", err)
	}
	return decoded, nil
}
