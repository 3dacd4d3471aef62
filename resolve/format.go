package resolve

// FormatRange renders a resolved (min, max) pair as a single range
// expression.
//
// Both empty yields "". Only a minimum yields ">=MIN"; only a maximum
// yields "<=MAX"; both yield ">=MIN <=MAX", minimum clause first,
// unconditionally.
func FormatRange(min, max string) string {
	switch {
	case min == "" && max == "":
		return ""
	case max == "":
		return ">=" + min
	case min == "":
		return "<=" + max
	default:
		return ">=" + min + " <=" + max
	}
}

// Format renders the range as an expression string, or "" when
// undetermined.
func (r Range) Format() string {
	return FormatRange(r.MinString(), r.MaxString())
}
