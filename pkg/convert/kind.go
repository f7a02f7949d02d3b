package convert

// Kind classifies a prompt's target shape and drives both the keystroke
// acceptance policy used while reading and the default retry message shown on
// failed conversion.
type Kind uint8

const (
	// KindString indicates an opaque textual response.
	KindString Kind = iota
	// KindBoolean indicates a yes/no response.
	KindBoolean
	// KindInteger indicates an integral numeric response.
	KindInteger
	// KindFloat indicates a floating-point numeric response.
	KindFloat
	// KindDateTime indicates a date and/or time response.
	KindDateTime
)

// Numeric indicates whether or not the kind requires the numeric keystroke
// acceptance policy.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// Fractional indicates whether or not the kind admits a decimal separator.
func (k Kind) Fractional() bool {
	return k == KindFloat
}

// String implements fmt.Stringer.String.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDateTime:
		return "date/time"
	default:
		return "unknown"
	}
}

// DefaultRetryMessage returns the shape-appropriate validation message used
// when a caller supplies no explicit message.
func DefaultRetryMessage(kind Kind) string {
	switch kind {
	case KindBoolean:
		return "Please answer yes or no."
	case KindInteger:
		return "Please enter a whole number."
	case KindFloat:
		return "Please enter a number."
	case KindDateTime:
		return "Please enter a valid date or time."
	default:
		return "Invalid response, please try again."
	}
}
