package raffle

import "fmt"

// Serialized byte counts for the two fixed-width ASCII formats. Neither
// format includes trailing whitespace or a newline.
const (
	// CheckingRepresentationLen is "CHECK-" + 16 hex + "-" + 16 hex.
	CheckingRepresentationLen = 39

	// VouchingRepresentationLen is "VOUCH-" + four dash-separated
	// 16-hex fields (offset, scale, unoffset, unscale).
	VouchingRepresentationLen = 73
)

// String renders the canonical serialized form, 16 lowercase hex digits
// per field with leading zeros.
func (p CheckingParameters) String() string {
	return fmt.Sprintf("CHECK-%016x-%016x", p.Unoffset, p.Unscale)
}

// String renders the canonical serialized form, 16 lowercase hex digits
// per field with leading zeros. The embedded checking fields are included
// so the vouching string alone reconstructs the whole pair.
func (p VouchingParameters) String() string {
	return fmt.Sprintf("VOUCH-%016x-%016x-%016x-%016x",
		p.Offset, p.Scale, p.Checking.Unoffset, p.Checking.Unscale)
}

// parseHex decodes exactly 16 big-endian hex nibbles of b starting at
// base. Hex digits may be either case. Every position is bounds-checked
// against b, so a field may be decoded at an offset inside a larger
// buffer.
func parseHex(b []byte, base int) (uint64, bool) {
	if base < 0 || len(b)-base < 16 {
		return 0, false
	}
	var acc uint64
	for i := 0; i < 16; i++ {
		var digit uint64
		switch c := b[base+i]; {
		case '0' <= c && c <= '9':
			digit = uint64(c - '0')
		case 'a' <= c && c <= 'f':
			digit = 10 + uint64(c-'a')
		case 'A' <= c && c <= 'F':
			digit = 10 + uint64(c-'A')
		default:
			return 0, false
		}
		acc = acc<<4 | digit
	}
	return acc, true
}

// ParseCheckingParameters parses the serialized ASCII representation of
// checking parameters.
//
// Expected layout:
//
//	"CHECK-"     [ 0,  6)
//	hex unoffset [ 6, 22)
//	"-"          [22, 23)
//	hex unscale  [23, 39)
//
// Any structural deviation returns a *Error with KindParse.
func ParseCheckingParameters(s string) (CheckingParameters, error) {
	b := []byte(s)

	if len(b) < CheckingRepresentationLen {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-001",
			"too few bytes in serialized raffle.CheckingParameters")
	}
	if len(b) > CheckingRepresentationLen {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-002",
			"too many bytes in serialized raffle.CheckingParameters")
	}

	if b[0] != 'C' || b[1] != 'H' || b[2] != 'E' || b[3] != 'C' || b[4] != 'K' || b[5] != '-' {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-010",
			`incorrect prefix for serialized raffle.CheckingParameters; expected "CHECK-"`)
	}

	unoffset, ok := parseHex(b, 6)
	if !ok {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex unoffset in serialized raffle.CheckingParameters")
	}
	if b[22] != '-' {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-020",
			"missing dash separator after unoffset in serialized raffle.CheckingParameters")
	}
	unscale, ok := parseHex(b, 23)
	if !ok {
		return CheckingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex unscale in serialized raffle.CheckingParameters")
	}

	return CheckingParameters{Unoffset: unoffset, Unscale: unscale}, nil
}

// ParseVouchingParameters parses the serialized ASCII representation of
// vouching parameters.
//
// Expected layout:
//
//	"VOUCH-"     [ 0,  6)
//	hex offset   [ 6, 22)
//	"-"          [22, 23)
//	hex scale    [23, 39)
//	"-"          [39, 40)
//	hex unoffset [40, 56)
//	"-"          [56, 57)
//	hex unscale  [57, 73)
//
// Any structural deviation returns a *Error with KindParse.
func ParseVouchingParameters(s string) (VouchingParameters, error) {
	b := []byte(s)

	if len(b) < VouchingRepresentationLen {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-001",
			"too few bytes in serialized raffle.VouchingParameters")
	}
	if len(b) > VouchingRepresentationLen {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-002",
			"too many bytes in serialized raffle.VouchingParameters")
	}

	if b[0] != 'V' || b[1] != 'O' || b[2] != 'U' || b[3] != 'C' || b[4] != 'H' || b[5] != '-' {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-010",
			`incorrect prefix for serialized raffle.VouchingParameters; expected "VOUCH-"`)
	}

	offset, ok := parseHex(b, 6)
	if !ok {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex offset in serialized raffle.VouchingParameters")
	}
	if b[22] != '-' {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-020",
			"missing dash separator after offset in serialized raffle.VouchingParameters")
	}
	scale, ok := parseHex(b, 23)
	if !ok {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex scale in serialized raffle.VouchingParameters")
	}
	if b[39] != '-' {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-020",
			"missing dash separator after scale in serialized raffle.VouchingParameters")
	}
	unoffset, ok := parseHex(b, 40)
	if !ok {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex unoffset in serialized raffle.VouchingParameters")
	}
	if b[56] != '-' {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-020",
			"missing dash separator after unoffset in serialized raffle.VouchingParameters")
	}
	unscale, ok := parseHex(b, 57)
	if !ok {
		return VouchingParameters{}, newError(KindParse, "RAFFLE-STR-030",
			"failed to parse hex unscale in serialized raffle.VouchingParameters")
	}

	return VouchingParameters{
		Offset:   offset,
		Scale:    scale,
		Checking: CheckingParameters{Unoffset: unoffset, Unscale: unscale},
	}, nil
}
