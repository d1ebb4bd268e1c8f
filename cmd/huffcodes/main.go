// Command huffcodes compresses or decompresses a file with huffcodes.
//
// Usage:
//
//     huffcodes [-d] [-stat] [-o OUTPUT] [INPUT]
//
// INPUT defaults to standard input and OUTPUT to standard output.
//
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chronos-tachyon/huffcodes"
)

var (
	flagDecode = flag.Bool("d", false, "decode INPUT instead of encoding it")
	flagStat   = flag.Bool("stat", false, "print the header and code tree of an encoded INPUT, then exit")
	flagOutput = flag.String("o", "-", "write output to `OUTPUT`")
)

var logger = log.New(os.Stderr, "huffcodes: ", 0)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: huffcodes [-d] [-stat] [-o OUTPUT] [INPUT]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := "-"
	if flag.NArg() == 1 {
		inputPath = flag.Arg(0)
	}

	if err := run(inputPath, *flagOutput); err != nil {
		logger.Print(err)
		os.Exit(1)
	}
}

func run(inputPath string, outputPath string) error {
	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if *flagStat {
		return stat(in)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	out, err := createOutput(outputPath)
	if err != nil {
		return err
	}

	err = transform(out, data)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", outputPath, closeErr)
	}
	return err
}

func transform(out io.Writer, data []byte) error {
	if *flagDecode {
		decoded, err := huffcodes.DecodeBytes(data)
		if err != nil {
			if errors.Is(err, huffcodes.ErrFormat) {
				return fmt.Errorf("input is not a valid huffcodes stream: %w", err)
			}
			return err
		}
		_, err = out.Write(decoded)
		return err
	}

	bw := bufio.NewWriter(out)
	sw := huffcodes.NewBitWriter(bw)
	if err := huffcodes.Encode(sw, data); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

func stat(in io.Reader) error {
	h, err := huffcodes.Inspect(huffcodes.NewBitReader(bufio.NewReader(in)))
	if err != nil {
		return err
	}
	fmt.Printf("payload bits: %d\n", h.PayloadBits)
	fmt.Printf("tree bits:    %d\n", h.TreeBits)
	fmt.Printf("symbols:      %d\n", h.Tree.NumLeaves())
	fmt.Printf("tree:         %s\n", h.Tree)
	if h.PayloadBits != 0 {
		var e huffcodes.Encoder
		e.Init(h.Tree)
		_, err = e.Dump(os.Stdout)
	}
	return err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
