package raffle

// Check reports whether voucher was generated for expected, with vouching
// parameters that correspond to the checking parameters unoffset and
// unscale (tagged form).
//
// Check is total: it never panics and never allocates.
func Check(unoffset, unscale, expected, voucher uint64) bool {
	unvouched := (voucher + unoffset) * (unscale ^ CheckingTag)
	return unvouched+expected == WantedSum
}

// Check reports whether voucher was generated for expected under the
// vouching parameters matching p.
func (p CheckingParameters) Check(expected, voucher uint64) bool {
	return Check(p.Unoffset, p.Unscale, expected, voucher)
}
