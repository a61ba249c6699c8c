// Command beamdump reads a raw BEAM generic-instruction bytecode buffer,
// decodes it, and either pretty-prints the instruction sequence or writes a
// compressed snapshot archive of it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arloliu/beamcode"
	"github.com/arloliu/beamcode/instr"
	"github.com/arloliu/beamcode/snapshot"
)

func main() {
	var (
		snapshotOut = flag.String("snapshot", "", "write a compressed snapshot archive to this path instead of printing")
		codecName   = flag.String("codec", "lz4", "snapshot compression codec: none, lz4, zstd")
		maxList     = flag.Int("max-list", 0, "reject List/AllocationList operands longer than this (0 = unlimited)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <bytecode-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("beamdump: read input: %v", err)
	}

	var opts []instr.Option
	if *maxList > 0 {
		opts = append(opts, instr.WithMaxListLength(*maxList))
	}

	ins, err := beamcode.Decode(raw, opts...)
	if err != nil {
		log.Fatalf("beamdump: decode: %v", err)
	}

	if *snapshotOut == "" {
		dump(ins)
		return
	}

	codec, err := codecByName(*codecName)
	if err != nil {
		log.Fatalf("beamdump: %v", err)
	}

	f, err := os.Create(*snapshotOut)
	if err != nil {
		log.Fatalf("beamdump: create snapshot: %v", err)
	}
	defer f.Close()

	if err := snapshot.Save(f, ins, codec); err != nil {
		log.Fatalf("beamdump: write snapshot: %v", err)
	}

	fmt.Printf("wrote %d instructions (%s compressed) to %s\n", len(ins), *codecName, *snapshotOut)
}

func codecByName(name string) (snapshot.Codec, error) {
	switch name {
	case "none":
		return snapshot.NoopCodec{}, nil
	case "lz4":
		return snapshot.LZ4Codec{}, nil
	case "zstd":
		return snapshot.ZstdCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want none, lz4, or zstd)", name)
	}
}

func dump(ins []instr.Instruction) {
	for i, in := range ins {
		spec := instr.Table()[in.Op]
		fmt.Printf("%5d  %-20s", i, spec.Name)
		for j, f := range spec.Fields {
			fmt.Printf(" %s=%v", f.Name, in.Fields[j])
		}
		fmt.Println()
	}
}
