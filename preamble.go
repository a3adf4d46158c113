package pstree

const (
	gutterBar   = "│"
	gutterSpace = "                                "
)

// RenderPreamble renders the plain gutter for frames: a bar centered in a
// field of GutterWidth columns plus one separating space per frame. An empty
// stack renders as the empty string.
func RenderPreamble(frames []Frame) string {
	if len(frames) == 0 {
		return ""
	}
	return string(appendPreamble(nil, frames))
}

func appendPreamble(buf []byte, frames []Frame) []byte {
	for _, fr := range frames {
		width := max(fr.GutterWidth, 1)
		left := (width - 1) / 2
		right := width - 1 - left
		buf = appendSpaces(buf, left)
		buf = append(buf, gutterBar...)
		buf = appendSpaces(buf, right+1)
	}
	return buf
}

func appendSpaces(buf []byte, n int) []byte {
	for n > len(gutterSpace) {
		buf = append(buf, gutterSpace...)
		n -= len(gutterSpace)
	}
	return append(buf, gutterSpace[:n]...)
}

func preambleLen(frames []Frame) int {
	n := 0
	for _, fr := range frames {
		n += max(fr.GutterWidth, 1) + len(gutterBar)
	}
	return n
}
