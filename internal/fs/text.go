package fs

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// IsTextFile determines whether content looks like text rather than binary.
func IsTextFile(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if detectUnicodeEncoding(sample) != encodingUnknown {
		return true
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}

	if utf8.Valid(sample) {
		return true
	}

	printable := 0
	nonPrintable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		} else {
			nonPrintable++
		}
	}
	if printable == 0 {
		return false
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	if b >= 32 && b <= 126 {
		return true
	}
	switch b {
	case '\t', '\n', '\r', 0x0b, 0x0c:
		return true
	}
	return b >= 128
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xef && sample[1] == 0xbb && sample[2] == 0xbf {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		if sample[0] == 0xff && sample[1] == 0xfe {
			return encodingUTF16LE
		}
		if sample[0] == 0xfe && sample[1] == 0xff {
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// ReadTextLines reads path and splits it into display lines. UTF-16 content is
// transcoded and BOMs are stripped. A DecodeError is returned for content the
// sniffer classifies as binary.
func ReadTextLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if !IsTextFile(content) {
		return nil, fmt.Errorf("%s: not a text file", path)
	}

	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(content)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", path, err)
		}
		content = decoded
	case encodingUTF16BE:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(content)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", path, err)
		}
		content = decoded
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}, nil
	}
	return strings.Split(text, "\n"), nil
}
