package raffle

// modInverse computes the multiplicative inverse of a|1 modulo 2^64.
//
// Newton-Raphson in the ring of integers mod 2^64: the seed 3a XOR 2 is
// accurate to 5 bits and each iteration doubles the number of correct
// bits, so four iterations give 5 * 2^4 = 80 > 64 bits.
// https://marc-b-reynolds.github.io/math/2017/09/18/ModInverse.html
func modInverse(a uint64) uint64 {
	a |= 1 // even numbers have no inverse

	x := a*3 ^ 2
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x

	if a*x != 1 {
		panic("raffle: modular inverse postcondition violated")
	}
	return x
}

// Fourth sample point for verifyDerived.
const derivedSamplePoint uint64 = 0x110d2ae90b38f555

// verifyDerived evaluates the full vouch-then-check round trip at four
// sample inputs and panics if any fails.
//
// Vouching and then checking composes two affine maps and is itself an
// affine map, so matching at two points already certifies it for all
// inputs; four are checked anyway, which also catches a caller that
// swapped the vouching and checking roles.
func verifyDerived(offset, scale uint64, checking CheckingParameters) {
	// Each Vouch call verifies its own result.
	_ = Vouch(offset, scale, checking, 0)
	_ = Vouch(offset, scale, checking, 1)
	_ = Vouch(offset, scale, checking, 2)
	_ = Vouch(offset, scale, checking, derivedSamplePoint)
}

// DeriveParameters computes matching vouching and checking parameters from
// scaleSeed, the (forced odd) multiplier for the vouching step, and
// unoffset, the addend for the checking step. Total and deterministic; the
// returned parameters carry the vouching and checking tags.
func DeriveParameters(scaleSeed, unoffset uint64) VouchingParameters {
	scale := scaleSeed | 1        // scale must be odd
	unscale := -modInverse(scale) // scale * unscale == -1

	// We want
	//    x + unscale * ([scale * (x + offset)] + unoffset)           == WantedSum
	// == x + (unscale * scale) * (x + offset) + (unscale * unoffset)
	// == x - x - offset + (unscale * unoffset)
	// == -offset + (unscale * unoffset)
	//
	// offset = (unscale * unoffset) - WantedSum
	offset := unscale*unoffset - WantedSum

	scale ^= VouchingTag
	unscale ^= CheckingTag

	p := VouchingParameters{
		Offset:   offset,
		Scale:    scale,
		Checking: CheckingParameters{Unoffset: unoffset, Unscale: unscale},
	}
	verifyDerived(p.Offset, p.Scale, p.Checking)
	return p
}

// Generate derives a fresh parameter set from two seed values pulled from
// src: the scale seed first, then the unoffset. A source error aborts
// generation and is returned unchanged, with no partial parameters.
func Generate(src func() (uint64, error)) (VouchingParameters, error) {
	scaleSeed, err := src()
	if err != nil {
		return VouchingParameters{}, err
	}
	unoffset, err := src()
	if err != nil {
		return VouchingParameters{}, err
	}
	return DeriveParameters(scaleSeed, unoffset), nil
}
