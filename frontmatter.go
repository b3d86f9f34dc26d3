package mdv

import "bytes"

// StripFrontMatter removes a leading front matter block from the document.
// YAML (---), TOML (+++) and JSON-ish (;;;) fences are recognised. The block
// must open on the first line and the line after the fence must look like
// metadata, otherwise the input is returned untouched. An unterminated fence
// is also returned untouched rather than swallowing the whole document.
func StripFrontMatter(src []byte) []byte {
	openLine, next, ok := docLine(src, 0)
	if !ok {
		return src
	}
	delim, isFrontMatter := openingDelimiter(openLine)
	if !isFrontMatter {
		return src
	}

	secondLine, afterSecond, ok := docLine(src, next)
	if !ok || !metadataLikely(secondLine) {
		return src
	}

	for idx := afterSecond; idx <= len(src); {
		line, lineNext, ok := docLine(src, idx)
		if !ok {
			break
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[lineNext:]
		}
		if lineNext == idx {
			break
		}
		idx = lineNext
	}
	return src
}

func docLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, start, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	end := start + i
	return trimCR(src[start:end]), end + 1, true
}

func openingDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
