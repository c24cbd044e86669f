package raffle

// Vouch returns the voucher representation of value, given the vouching
// parameters offset and scale (tagged form).
//
// The result is always verified against the checking parameters; a failure
// means the vouching and checking parameters do not form a derived pair
// (forged, mismatched, or role-swapped) and panics. Parameters produced by
// DeriveParameters never trip this.
func Vouch(offset, scale uint64, checking CheckingParameters, value uint64) uint64 {
	ret := (value + offset) * (scale ^ VouchingTag)

	if !Check(checking.Unoffset, checking.Unscale, value, ret) {
		panic("raffle: failed to check voucher; parameters incorrect")
	}
	return ret
}

// Vouch returns the voucher representation of value under p.
func (p VouchingParameters) Vouch(value uint64) uint64 {
	return Vouch(p.Offset, p.Scale, p.Checking, value)
}
