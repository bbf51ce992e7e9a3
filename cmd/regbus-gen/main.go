// Command regbus-gen generates a strongly-typed bus from a manifest file.
//
// The manifest (YAML or JSON) declares the package, the bus name, and the
// closed key list with each key's payload type and kind:
//
//	package: fusion
//	bus: FusionBus
//	keys:
//	  - name: IMURaw
//	    type: IMUSample
//	    kind: data
//	  - name: Reset
//	    type: bool
//	    kind: cmd
//
// Usage:
//
//	regbus-gen -manifest bus.yaml -out bus_gen.go
//	regbus-gen -manifest bus.yaml -print
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mrunmoy/regbus/internal/gen"
)

func main() {
	manifestPath := flag.String("manifest", "", "path to the bus manifest (YAML or JSON)")
	outPath := flag.String("out", "", "path of the generated Go file")
	printOnly := flag.Bool("print", false, "write the generated source to stdout instead of a file")
	flag.Parse()

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "regbus-gen: -manifest is required")
		flag.Usage()
		os.Exit(2)
	}
	if !*printOnly && *outPath == "" {
		fmt.Fprintln(os.Stderr, "regbus-gen: either -out or -print is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*manifestPath, *outPath, *printOnly); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(manifestPath, outPath string, printOnly bool) error {
	m, err := gen.Load(manifestPath)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	src, err := gen.Emit(m)
	if err != nil {
		return err
	}

	if printOnly {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("regbus-gen: write %s: %w", outPath, err)
	}
	return nil
}
