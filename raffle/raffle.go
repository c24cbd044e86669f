package raffle

// The three format constants are little-endian readings of fixed
// 8-character ASCII provenance strings. They are part of the serialized
// format and must never change.
const (
	// WantedSum is "Vouch!OK" as a little-endian u64. Vouching and then
	// checking a value x yields WantedSum - x, so the round trip sums to
	// WantedSum.
	WantedSum uint64 = 0x4b4f216863756f56

	// VouchingTag is "Vouching"; the stored vouching scale is XOR-ed with it.
	VouchingTag uint64 = 0x676e696863756f56

	// CheckingTag is "Checking"; the stored checking unscale is XOR-ed with it.
	CheckingTag uint64 = 0x676e696b63656843
)

// CheckingParameters define the affine map that validates a voucher against
// an expected value. They carry no exclusive relationship to the vouching
// parameters that produced them and may be shared freely.
//
// Unscale is stored XOR-ed with CheckingTag.
type CheckingParameters struct {
	Unoffset uint64
	Unscale  uint64
}

// VouchingParameters define the forward affine map that produces vouchers,
// together with an embedded copy of the matching checking parameters.
//
// Scale is stored XOR-ed with VouchingTag; the de-tagged scale is odd,
// enforced at derivation time.
type VouchingParameters struct {
	Offset   uint64
	Scale    uint64
	Checking CheckingParameters
}
