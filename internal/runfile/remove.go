package runfile

import "fmt"

// RemoveDirectives returns text with every directive span cut out.
// Spans are removed from last to first so earlier offsets stay valid, which
// requires directives in strictly increasing, non-overlapping order.
func RemoveDirectives(directives []Directive, text string) (string, error) {
	for i, d := range directives {
		span := d.SourceSpan()
		if span.Start < 0 || span.End < span.Start || span.End > len(text) {
			return "", fmt.Errorf("directive span [%d,%d) is outside the text (length %d)", span.Start, span.End, len(text))
		}
		if i > 0 {
			prev := directives[i-1].SourceSpan()
			if span.Start <= prev.Start || span.Start < prev.End {
				return "", fmt.Errorf("directive spans must be strictly increasing: [%d,%d) follows [%d,%d)",
					span.Start, span.End, prev.Start, prev.End)
			}
		}
	}

	for i := len(directives) - 1; i >= 0; i-- {
		span := directives[i].SourceSpan()
		text = text[:span.Start] + text[span.End:]
	}
	return text, nil
}
