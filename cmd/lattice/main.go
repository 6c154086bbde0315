package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/lattice"
	"github.com/wippyai/lattice/codec"
)

func main() {
	var (
		encodePath  = flag.String("encode", "", "Path of file to encode")
		decodeArg   = flag.String("decode", "", "Coordinate to recover: path to a .json file or an inline JSON object")
		outPath     = flag.String("out", "", "Output path (coordinate JSON when encoding, recovered bytes when decoding)")
		start       = flag.Int("start", lattice.DefaultRoot, "Starting mask")
		label       = flag.String("label", "", "Derive the starting mask from a label (overrides -start)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive walk explorer")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			codec.SetLogger(logger)
			defer logger.Sync()
		}
	}

	root := *start
	if *label != "" {
		root = lattice.RootForLabel(*label)
	}

	var err error
	switch {
	case *interactive:
		err = runInteractive(root)
	case *encodePath != "":
		err = runEncode(*encodePath, *outPath, root)
	case *decodeArg != "":
		err = runDecode(*decodeArg, *outPath)
	default:
		fmt.Fprintln(os.Stderr, "Usage: lattice -encode <file> [-out coord.json] [-start mask | -label name]")
		fmt.Fprintln(os.Stderr, "       lattice -decode <coord.json|'{...}'> -out <file>")
		fmt.Fprintln(os.Stderr, "       lattice -i  (interactive walk explorer)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEncode(path, outPath string, root int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	enc := codec.NewEncoder(codec.WithRoot(root))
	coord, err := enc.EncodeFrom(f)
	if err != nil {
		return err
	}

	if outPath != "" {
		data, err := json.Marshal(coord)
		if err != nil {
			return fmt.Errorf("marshal coordinate: %w", err)
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write coordinate: %w", err)
		}
		fmt.Printf("Encoded %d bytes to %s\n", coord.LengthBytes, outPath)
		return nil
	}

	// Pretty-print on a terminal, compact when piped.
	var data []byte
	if term.IsTerminal(int(os.Stdout.Fd())) {
		data, err = json.MarshalIndent(coord, "", "  ")
	} else {
		data, err = json.Marshal(coord)
	}
	if err != nil {
		return fmt.Errorf("marshal coordinate: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runDecode(coordArg, outPath string) error {
	if outPath == "" {
		return fmt.Errorf("-decode requires -out")
	}

	raw := []byte(coordArg)
	if strings.HasSuffix(coordArg, ".json") {
		var err error
		raw, err = os.ReadFile(coordArg)
		if err != nil {
			return fmt.Errorf("read coordinate: %w", err)
		}
	}

	coord, err := lattice.ParseCoordinate(raw)
	if err != nil {
		return err
	}

	fmt.Printf("Recovering %d bytes from coordinate...\n", coord.LengthBytes)
	data, err := codec.NewDecoder().Decode(coord)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Recovered %d bytes to %s (start mask %d)\n", len(data), outPath, coord.StartMask)
	return nil
}
