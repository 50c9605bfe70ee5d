// Package format holds the display formatters used by templates.
package format

import "strconv"

// Price renders whole currency units with thousands separators: 25000 -> "$25,000".
func Price(n int) string {
	return "$" + group(n)
}

// Mileage renders a separated integer: 32000 -> "32,000".
func Mileage(n int) string {
	return group(n)
}

func group(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
		var out []byte
		for i, c := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, c)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}
