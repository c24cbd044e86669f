// Package seed supplies 64-bit seed values for raffle parameter generation.
//
// Two sources are provided: the operating system's entropy pool, and
// deterministic derivation from textual arguments through a keyed
// extendable-output hash. Either satisfies the generation contract: a
// fallible zero-argument callable invoked exactly twice per parameter set.
package seed

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cloudflare/circl/xof"
	"lukechampine.com/blake3"
)

// Source yields 64-bit seed values. raffle.Generate calls a Source exactly
// twice: scale seed first, then unoffset. Any error is propagated to the
// generation caller unchanged.
type Source func() (uint64, error)

// deriveContext keys the argument-derived hash streams. Changing it
// changes every derived parameter set.
const deriveContext = "xdao.co/raffle seed v1"

// DefaultXOF is the extendable-output hash used when no algorithm is
// named.
const DefaultXOF = "blake3"

// OS returns a Source backed by the operating system's entropy pool.
func OS() Source {
	return func() (uint64, error) {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	}
}

// FromArgs returns a deterministic Source: each argument is fed,
// NUL-terminated, into a keyed extendable-output hash selected by alg, and
// seed values are read from its output stream as 8-byte little-endian
// words.
//
// Supported algorithms: blake3, shake128, shake256, blake2xb, blake2xs.
func FromArgs(alg string, args []string) (Source, error) {
	var material []byte
	for _, a := range args {
		material = append(material, a...)
		material = append(material, 0)
	}

	var stream io.Reader
	switch alg {
	case "blake3":
		key := blake3.Sum256([]byte(deriveContext))
		h := blake3.New(8, key[:])
		_, _ = h.Write(material)
		stream = h.XOF()
	case "shake128", "shake256", "blake2xb", "blake2xs":
		var id xof.ID
		switch alg {
		case "shake128":
			id = xof.SHAKE128
		case "shake256":
			id = xof.SHAKE256
		case "blake2xb":
			id = xof.BLAKE2XB
		case "blake2xs":
			id = xof.BLAKE2XS
		}
		x := id.New()
		_, _ = x.Write([]byte(deriveContext))
		_, _ = x.Write([]byte{0})
		_, _ = x.Write(material)
		stream = x
	default:
		return nil, fmt.Errorf("unsupported seed hash %q", alg)
	}

	return func() (uint64, error) {
		var buf [8]byte
		if _, err := io.ReadFull(stream, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	}, nil
}
