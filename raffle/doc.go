// Package raffle derives and verifies paired vouching/checking parameter
// sets implementing a reversible affine transform over 64-bit integers.
//
// Vouching parameters turn a value into a voucher; the matching checking
// parameters confirm that the voucher was produced from that exact value,
// without access to the vouching parameters themselves. For every derived
// pair and every 64-bit x the transforms compose so that
//
//	x + unvouch(vouch(x)) == WantedSum
//
// under mod-2^64 wraparound arithmetic.
//
// This is an integrity and tamper-evidence primitive, not a cryptographic
// authentication scheme: the XOR tags on stored scale fields guard against
// accidental corruption and role mix-ups, and do not resist a deliberate
// forger who can observe or control the serialized parameters.
//
// Parameter sets are immutable values and may be freely copied and shared
// across goroutines. Generation is a one-time setup cost; Vouch and Check
// are allocation-free and intended for hot paths.
package raffle
