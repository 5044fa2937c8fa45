package utils

import (
	"strconv"
	"strings"
)

// FormatLAK renders a monetary amount as the POS displays it:
// a fixed "LAK " label, two decimal places, comma-grouped thousands.
// FormatLAK(1000000) == "LAK 1,000,000.00".
func FormatLAK(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot:]

	var b strings.Builder
	b.WriteString("LAK ")
	b.WriteString(sign)

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteString(fracPart)
	return b.String()
}
