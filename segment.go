package idiomate

import "strings"

// SegmentText partitions text into an ordered sequence of plain and idiom
// segments, walking the given spans left to right. Spans must be sorted by
// start offset and pairwise non-overlapping, as returned by a detector.
//
// Plain text strictly between spans is trimmed and emitted only when
// non-empty. With no spans, the whole text is returned unchanged as a
// single plain segment (the empty string yields no segments).
func SegmentText(text string, spans []Span) []Segment {
	if len(spans) == 0 {
		if text == "" {
			return nil
		}
		return []Segment{{Kind: SegmentPlain, Text: text}}
	}

	segments := make([]Segment, 0, 2*len(spans)+1)
	cursor := 0

	for _, span := range spans {
		if cursor < span.Start {
			if before := strings.TrimSpace(text[cursor:span.Start]); before != "" {
				segments = append(segments, Segment{Kind: SegmentPlain, Text: before})
			}
		}
		segments = append(segments, Segment{
			Kind:      SegmentIdiom,
			Text:      span.Text,
			Canonical: span.Canonical,
		})
		cursor = span.End
	}

	if cursor < len(text) {
		if after := strings.TrimSpace(text[cursor:]); after != "" {
			segments = append(segments, Segment{Kind: SegmentPlain, Text: after})
		}
	}

	return segments
}
