package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"xdao.co/raffle/raffle"
	"xdao.co/raffle/seed"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "gen":
		return cmdGen(args[1:], out, errOut)
	case "vouch":
		return cmdVouch(args[1:], out, errOut)
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "inspect":
		return cmdInspect(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-raffle: vouching/checking parameter CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-raffle gen [--xof <alg>] [arg ...]")
	fmt.Fprintln(w, "  xdao-raffle vouch --params <VOUCH-...> --value <hex>")
	fmt.Fprintln(w, "  xdao-raffle check --params <CHECK-...> --value <hex> --voucher <hex>")
	fmt.Fprintln(w, "  xdao-raffle inspect <serialized>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - gen without arguments draws both seeds from OS entropy")
	fmt.Fprintln(w, "  - gen with arguments derives both seeds deterministically from the")
	fmt.Fprintln(w, "    arguments through a keyed extendable-output hash")
	fmt.Fprintln(w, "  - --xof selects that hash: blake3 (default), shake128, shake256,")
	fmt.Fprintln(w, "    blake2xb, blake2xs")
	fmt.Fprintln(w, "  - gen prints the VOUCH- line, then the CHECK- line")
	fmt.Fprintln(w, "  - --value and --voucher are u64 hex, with or without 0x")
	fmt.Fprintln(w, "  - check exits 0 on match, 1 on mismatch")
}

func cmdGen(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var alg string
	fs.StringVar(&alg, "xof", seed.DefaultXOF, "Seed hash for deterministic generation")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var src seed.Source
	if fs.NArg() == 0 {
		src = seed.OS()
	} else {
		var err error
		src, err = seed.FromArgs(alg, fs.Args())
		if err != nil {
			fmt.Fprintf(errOut, "gen: %v\n", err)
			return 2
		}
	}

	params, err := raffle.Generate(src)
	if err != nil {
		fmt.Fprintf(errOut, "gen: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, params)
	fmt.Fprintln(out, params.Checking)
	return 0
}

func cmdVouch(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("vouch", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var paramsStr string
	var valueStr string
	fs.StringVar(&paramsStr, "params", "", "Serialized vouching parameters (VOUCH-...)")
	fs.StringVar(&valueStr, "value", "", "Value to vouch for (u64 hex)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if paramsStr == "" || valueStr == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: xdao-raffle vouch --params <VOUCH-...> --value <hex>")
		return 2
	}

	params, err := raffle.ParseVouchingParameters(paramsStr)
	if err != nil {
		fmt.Fprintf(errOut, "vouch: %v\n", err)
		return 1
	}
	value, err := parseHexU64(valueStr)
	if err != nil {
		fmt.Fprintf(errOut, "vouch: invalid --value: %v\n", err)
		return 2
	}

	fmt.Fprintf(out, "%016x\n", params.Vouch(value))
	return 0
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var paramsStr string
	var valueStr string
	var voucherStr string
	fs.StringVar(&paramsStr, "params", "", "Serialized checking parameters (CHECK-...)")
	fs.StringVar(&valueStr, "value", "", "Expected value (u64 hex)")
	fs.StringVar(&voucherStr, "voucher", "", "Voucher to check (u64 hex)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if paramsStr == "" || valueStr == "" || voucherStr == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: xdao-raffle check --params <CHECK-...> --value <hex> --voucher <hex>")
		return 2
	}

	params, err := raffle.ParseCheckingParameters(paramsStr)
	if err != nil {
		fmt.Fprintf(errOut, "check: %v\n", err)
		return 1
	}
	value, err := parseHexU64(valueStr)
	if err != nil {
		fmt.Fprintf(errOut, "check: invalid --value: %v\n", err)
		return 2
	}
	voucher, err := parseHexU64(voucherStr)
	if err != nil {
		fmt.Fprintf(errOut, "check: invalid --voucher: %v\n", err)
		return 2
	}

	if !params.Check(value, voucher) {
		fmt.Fprintln(out, "mismatch")
		return 1
	}
	fmt.Fprintln(out, "match")
	return 0
}

func cmdInspect(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-raffle inspect <serialized>")
		return 2
	}

	s := fs.Arg(0)
	switch len(s) {
	case raffle.VouchingRepresentationLen:
		p, err := raffle.ParseVouchingParameters(s)
		if err != nil {
			fmt.Fprintf(errOut, "inspect: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "offset:   %016x\n", p.Offset)
		fmt.Fprintf(out, "scale:    %016x\n", p.Scale)
		fmt.Fprintf(out, "unoffset: %016x\n", p.Checking.Unoffset)
		fmt.Fprintf(out, "unscale:  %016x\n", p.Checking.Unscale)
		return 0
	case raffle.CheckingRepresentationLen:
		p, err := raffle.ParseCheckingParameters(s)
		if err != nil {
			fmt.Fprintf(errOut, "inspect: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "unoffset: %016x\n", p.Unoffset)
		fmt.Fprintf(out, "unscale:  %016x\n", p.Unscale)
		return 0
	default:
		fmt.Fprintf(errOut, "inspect: not a serialized parameter set (%d bytes)\n", len(s))
		return 1
	}
}

func parseHexU64(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
