package regex

import "strings"

type charRange struct {
	from byte
	to   byte
}

// parseCharRanges splits the inside of a bracket expression into ranges.
// "c1-c2" is a range, every other character stands for itself, so a '-' at
// the end is literal.
func parseCharRanges(body string) []charRange {
	var ranges []charRange
	for j := 0; j < len(body); {
		if j+2 < len(body) && body[j+1] == '-' {
			ranges = append(ranges, charRange{from: body[j], to: body[j+2]})
			j += 3
			continue
		}
		ranges = append(ranges, charRange{from: body[j], to: body[j]})
		j++
	}
	return ranges
}

// expandRanges rewrites ranges as an alternation, e.g. [a-c] -> "a|b|c".
// A reversed range such as "c-a" contributes nothing.
func expandRanges(ranges []charRange) string {
	out := strings.Builder{}
	for _, r := range ranges {
		// int so that a range ending in 0xff terminates
		for c := int(r.from); c <= int(r.to); c++ {
			if out.Len() > 0 {
				out.WriteByte('|')
			}
			out.WriteByte(byte(c))
		}
	}
	return out.String()
}
