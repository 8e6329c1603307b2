// lz77 - command line front end for the lz77 codec
//
// Usage:
//
//	lz77 help                                    Display this message
//	lz77 compress [flags] file [resulting_file]  Compress file (default out.compressed)
//	lz77 decompress [flags] file [resulting_file] Decompress file (default out.decompressed)
//	lz77 dump [flags] file                       List the tokens of file's compressed form
//	lz77 compare file                            Compare compressed sizes with other codecs
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/zleyyij/lz77"
	"github.com/zleyyij/lz77/baseline"
	"github.com/zleyyij/lz77/frame"
)

const (
	defaultCompressed   = "out.compressed"
	defaultDecompressed = "out.decompressed"
)

type command struct {
	flags    *flag.FlagSet
	argsdesc string
	desc     string
	run      func(args []string) error
}

// quiet turns off logf.
var quiet bool

func main() {
	log.SetFlags(0)
	log.SetPrefix("lz77: ")

	compressFlags := flag.NewFlagSet("compress", flag.ExitOnError)
	compressFramed := compressFlags.Bool("framed", false, "write a frame that records the exact input length and a checksum")
	compressBlock := compressFlags.Int("block", 0, "compress in independent blocks of this many bytes (even; 0 = whole file)")
	compressWindow := compressFlags.Int("window", lz77.Window, "maximum match distance in symbols")
	compressQuiet := compressFlags.Bool("quiet", false, "suppress progress messages")

	decompressFlags := flag.NewFlagSet("decompress", flag.ExitOnError)
	decompressFramed := decompressFlags.Bool("framed", false, "read a frame written with compress -framed")
	decompressQuiet := decompressFlags.Bool("quiet", false, "suppress progress messages")

	dumpFlags := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpWindow := dumpFlags.Int("window", lz77.Window, "maximum match distance in symbols")

	compareFlags := flag.NewFlagSet("compare", flag.ExitOnError)
	helpFlags := flag.NewFlagSet("help", flag.ExitOnError)

	commands := map[string]*command{}
	commands["compress"] = &command{compressFlags, "file [resulting_file]",
		"Compress file and write resulting_file, defaults to " + defaultCompressed,
		func(args []string) error {
			quiet = *compressQuiet
			in, out, err := inOut(args, defaultCompressed)
			if err != nil {
				return err
			}
			if *compressFramed {
				if *compressBlock != 0 {
					return fmt.Errorf("-block cannot be used with -framed")
				}
				return frameFile(in, out, *compressWindow)
			}
			return compress(in, out, *compressBlock, *compressWindow)
		}}
	commands["decompress"] = &command{decompressFlags, "file [resulting_file]",
		"Decompress file and write resulting_file, defaults to " + defaultDecompressed,
		func(args []string) error {
			quiet = *decompressQuiet
			in, out, err := inOut(args, defaultDecompressed)
			if err != nil {
				return err
			}
			if *decompressFramed {
				return transform(in, out, frame.Decode)
			}
			return transform(in, out, lz77.Decode)
		}}
	commands["dump"] = &command{dumpFlags, "file",
		"Write the tokens of file's compressed form to standard output",
		func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 argument, got %d", len(args))
			}
			return dump(os.Stdout, args[0], *dumpWindow)
		}}
	commands["compare"] = &command{compareFlags, "file",
		"Compare the compressed size of file with other codecs",
		func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 argument, got %d", len(args))
			}
			return compare(os.Stdout, args[0])
		}}
	commands["help"] = &command{helpFlags, "", "Display this message",
		func(args []string) error {
			usage(commands)
			return nil
		}}

	if len(os.Args) < 2 {
		usage(commands)
		fatal("please specify a command, see 'lz77 help' for details")
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fatal("unknown command %q, see 'lz77 help' for details", os.Args[1])
	}
	cmd.flags.Parse(os.Args[2:])
	if err := cmd.run(cmd.flags.Args()); err != nil {
		fatal("%s: %v", os.Args[1], err)
	}
}

func usage(commands map[string]*command) {
	fmt.Fprintln(os.Stderr, "Usage:")
	for _, name := range []string{"help", "compress", "decompress", "dump", "compare"} {
		c := commands[name]
		fmt.Fprintf(os.Stderr, "  lz77 %s %s\n    \t%s\n", name, c.argsdesc, c.desc)
		c.flags.SetOutput(os.Stderr)
		c.flags.PrintDefaults()
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "lz77: "+format+"\n", args...)
	os.Exit(1)
}

func logf(format string, args ...interface{}) {
	if !quiet {
		log.Printf(format, args...)
	}
}

// inOut checks the positional arguments of compress and decompress.
func inOut(args []string, defaultOut string) (in, out string, err error) {
	switch len(args) {
	case 1:
		in, out = args[0], defaultOut
	case 2:
		in, out = args[0], args[1]
	default:
		return "", "", fmt.Errorf("expected 1-2 arguments, got %d", len(args))
	}
	if _, err := os.Stat(in); err != nil {
		return "", "", fmt.Errorf("file not found: %s", in)
	}
	return in, out, nil
}

// transform reads in, applies f, and writes the result to out.
func transform(in, out string, f func([]byte) ([]byte, error)) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	result, err := f(data)
	if err != nil {
		return err
	}
	return writeFile(out, func(w io.Writer) error {
		_, err := w.Write(result)
		return err
	})
}

func compress(in, out string, blockSize, window int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	logf("compressing %s", in)
	return writeFile(out, func(dst io.Writer) error {
		w := &lz77.Writer{
			Dest:        dst,
			MatchFinder: &lz77.WindowMatcher{MaxDistance: window},
			Encoder:     lz77.WordEncoder{},
			BlockSize:   blockSize,
		}
		if _, err := io.Copy(w, f); err != nil {
			return err
		}
		return w.Close()
	})
}

func frameFile(in, out string, window int) error {
	logf("compressing %s", in)
	return transform(in, out, func(data []byte) ([]byte, error) {
		return frame.EncodeWindow(data, window)
	})
}

// writeFile writes out through a temporary file in the same directory, so
// that a failed run never leaves a partial file under the final name.
func writeFile(out string, write func(io.Writer) error) error {
	if _, err := os.Stat(out); err == nil {
		logf("found file with same name, overwriting %s", out)
	}

	tmp, err := os.CreateTemp(filepath.Dir(out), filepath.Base(out)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return err
	}
	logf("wrote %s", out)
	return nil
}

func dump(w io.Writer, in string, window int) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	m := &lz77.WindowMatcher{MaxDistance: window}
	tokens, err := m.FindTokens(nil, lz77.Symbols(data))
	if err != nil {
		return err
	}
	text, err := lz77.TextEncoder{}.Encode(nil, tokens)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

func compare(w io.Writer, in string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	results, err := baseline.Compare(data, baseline.All())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "codec\tbytes\tratio\t\n")
	fmt.Fprintf(tw, "input\t%d\t\t\n", len(data))
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t\n", r.Name, r.Size, r.Ratio)
	}
	return tw.Flush()
}
