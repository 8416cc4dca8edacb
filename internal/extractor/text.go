package extractor

import "strings"

// PlainText decodes the bytes as UTF-8; invalid sequences become U+FFFD
func PlainText(data []byte) (string, error) {
	return validUTF8(data), nil
}

func validUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "\ufffd")
}

// Passthrough is used for native documents that were exported as text at fetch time.
// The export carries a leading byte order mark, which is dropped.
func Passthrough(data []byte) (string, error) {
	return strings.TrimPrefix(validUTF8(data), "\ufeff"), nil
}

// LegacyWord never extracts anything: .doc files are listed but yield empty text
func LegacyWord([]byte) (string, error) {
	return "", nil
}
