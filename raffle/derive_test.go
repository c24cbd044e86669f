package raffle

import (
	"math"
	"math/rand"
	"testing"
)

func TestModInverseVectors(t *testing.T) {
	vectors := []struct {
		a    uint64
		want uint64
	}{
		{1, 1},
		{3, 12297829382473034411},
		{math.MaxUint64, math.MaxUint64},
	}
	for _, v := range vectors {
		if got := modInverse(v.a); got != v.want {
			t.Fatalf("modInverse(%d) = %d, want %d", v.a, got, v.want)
		}
	}
}

func TestModInverseRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 4096; i++ {
		a := rng.Uint64() | 1
		if a*modInverse(a) != 1 {
			t.Fatalf("modInverse(%#x) is not an inverse mod 2^64", a)
		}
	}
}

func TestModInverseForcesOdd(t *testing.T) {
	// Even inputs are adjusted to a|1 before inversion.
	if modInverse(2) != modInverse(3) {
		t.Fatalf("even input not adjusted to a|1")
	}
}

func TestDeriveParametersVectors(t *testing.T) {
	vectors := []struct {
		scaleSeed uint64
		unoffset  uint64
		want      VouchingParameters
	}{
		{0, 0, VouchingParameters{
			Offset:   ^WantedSum + 1,
			Scale:    VouchingTag ^ 1,
			Checking: CheckingParameters{Unoffset: 0, Unscale: ^CheckingTag},
		}},
		{math.MaxUint64, 0, VouchingParameters{
			Offset:   ^WantedSum + 1,
			Scale:    ^VouchingTag,
			Checking: CheckingParameters{Unoffset: 0, Unscale: CheckingTag ^ 1},
		}},
		{1, 1, VouchingParameters{
			Offset:   13020151265475858601,
			Scale:    7453010330410905431,
			Checking: CheckingParameters{Unoffset: 1, Unscale: 10993733730414794684},
		}},
		{37, 13, VouchingParameters{
			Offset:   12023029964194261217,
			Scale:    7453010330410905459,
			Checking: CheckingParameters{Unoffset: 13, Unscale: 10110629933032573968},
		}},
		{math.MaxUint64, math.MaxUint64, VouchingParameters{
			Offset:   13020151265475858601,
			Scale:    math.MaxUint64 ^ VouchingTag,
			Checking: CheckingParameters{Unoffset: math.MaxUint64, Unscale: 7453010343294756930},
		}},
	}
	for _, v := range vectors {
		if got := DeriveParameters(v.scaleSeed, v.unoffset); got != v.want {
			t.Fatalf("DeriveParameters(%d, %d) = %+v, want %+v", v.scaleSeed, v.unoffset, got, v.want)
		}
	}
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	f()
}

func swapRoles(p VouchingParameters) VouchingParameters {
	return VouchingParameters{
		Offset:   p.Checking.Unoffset,
		Scale:    p.Checking.Unscale,
		Checking: CheckingParameters{Unoffset: p.Offset, Unscale: p.Scale},
	}
}

func TestSwappedRolesFail(t *testing.T) {
	// Using checking parameters in the vouching role (and vice versa)
	// yields a different affine map; the round-trip verification must
	// reject it.
	swapped := swapRoles(DeriveParameters(43, 123))
	assertPanics(t, func() {
		verifyDerived(swapped.Offset, swapped.Scale, swapped.Checking)
	})
}

func TestSwappedRolesRetaggedFail(t *testing.T) {
	// Swapping the tags along with the roles must not help: the tags do
	// not commute across roles.
	swapped := swapRoles(DeriveParameters(43, 123))
	swapped.Scale ^= VouchingTag ^ CheckingTag
	swapped.Checking.Unscale ^= VouchingTag ^ CheckingTag
	assertPanics(t, func() {
		verifyDerived(swapped.Offset, swapped.Scale, swapped.Checking)
	})
}

func TestGenerateUsesSeedsInOrder(t *testing.T) {
	seeds := []uint64{37, 13}
	calls := 0
	p, err := Generate(func() (uint64, error) {
		v := seeds[calls]
		calls++
		return v, nil
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if calls != 2 {
		t.Fatalf("Generate made %d source calls, want 2", calls)
	}
	if want := DeriveParameters(37, 13); p != want {
		t.Fatalf("Generate = %+v, want %+v", p, want)
	}
}
