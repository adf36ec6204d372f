// Command stego hides password-protected text in PNG and BMP images.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/imageio"
	"github.com/hasbyte1/go-stego/pixel"
	"github.com/hasbyte1/go-stego/stego"
)

// passwordEnv names the environment variable consulted when -password is
// not given.
const passwordEnv = "STEGO_PASSWORD"

var (
	getenv       = os.Getenv
	readPassword = promptPassword
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
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "capacity":
		return cmdCapacity(args[1:], out, errOut)
	case "algorithms":
		return cmdAlgorithms(args[1:], out, errOut)
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
	fmt.Fprintln(w, "stego: hide password-protected text in images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stego encode -in <image> -out <image> (-text <msg> | -text-file <path>) [-alg lsb|pvd|dwt] [-password <pw>] [-v]")
	fmt.Fprintln(w, "  stego decode -in <image> [-password <pw>] [-v]")
	fmt.Fprintln(w, "  stego capacity (-in <image> | -width <n> -height <n>) [-alg lsb|pvd|dwt]")
	fmt.Fprintln(w, "  stego algorithms")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - images must be PNG or BMP; the output format follows the -out extension")
	fmt.Fprintln(w, "  - without -password the "+passwordEnv+" environment variable is used, then a terminal prompt")
	fmt.Fprintln(w, "  - -text-file - reads the message from stdin")
}

func newLogger(errOut io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var inPath, outPath, alg, text, textFile, password string
	var verbose bool
	fs.StringVar(&inPath, "in", "", "Carrier image (PNG or BMP)")
	fs.StringVar(&outPath, "out", "", "Output image (PNG or BMP)")
	fs.StringVar(&alg, "alg", string(engine.AlgorithmLSB), "Embedding algorithm: lsb, pvd or dwt")
	fs.StringVar(&text, "text", "", "Message to hide")
	fs.StringVar(&textFile, "text-file", "", "Read the message from a file (- for stdin)")
	fs.StringVar(&password, "password", "", "Password (default: $"+passwordEnv+" or prompt)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if inPath == "" || outPath == "" || (text == "") == (textFile == "") {
		fmt.Fprintln(errOut, "usage: stego encode -in <image> -out <image> (-text <msg> | -text-file <path>) [-alg lsb|pvd|dwt] [-password <pw>]")
		return 2
	}
	algorithm, err := engine.ParseAlgorithm(alg)
	if err != nil {
		fmt.Fprintf(errOut, "invalid -alg: %v\n", err)
		return 2
	}
	format, err := imageio.FormatFromPath(outPath)
	if err != nil {
		fmt.Fprintf(errOut, "invalid -out: %v\n", err)
		return 2
	}

	message := text
	if textFile != "" {
		message, err = readMessage(textFile)
		if err != nil {
			fmt.Fprintf(errOut, "read -text-file: %v\n", err)
			return 1
		}
	}

	buf, _, err := readImage(inPath)
	if err != nil {
		fmt.Fprintf(errOut, "read -in: %v\n", err)
		return 1
	}
	password, err = resolvePassword(password, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "password: %v\n", err)
		return 1
	}

	s := stego.New(stego.WithLogger(newLogger(errOut, verbose)))
	limit, err := s.MaxMessageLength(buf, algorithm)
	if err != nil {
		fmt.Fprintf(errOut, "encode: %s\n", stego.FailureReason(err))
		return 1
	}
	if _, err := s.Encode(context.Background(), buf, message, password, algorithm); err != nil {
		fmt.Fprintf(errOut, "encode: %s\n", stego.FailureReason(err))
		if errors.Is(err, stego.ErrCapacityExceeded) {
			fmt.Fprintf(errOut, "this image holds at most %s bytes with %s\n", humanize.Comma(int64(limit)), algorithm)
		}
		return 1
	}
	if err := writeImage(outPath, buf, format); err != nil {
		fmt.Fprintf(errOut, "write -out: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "hid %s bytes in %s using %s (%s of %s available)\n",
		humanize.Comma(int64(len(message))), outPath, algorithm,
		humanize.Bytes(uint64(len(message))), humanize.Bytes(uint64(limit)))
	if !stego.IsStrongPassword(password) {
		fmt.Fprintf(errOut, "warning: %v\n", stego.CheckPassword(password))
	}
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var inPath, password string
	var verbose bool
	fs.StringVar(&inPath, "in", "", "Image to read (PNG or BMP)")
	fs.StringVar(&password, "password", "", "Password (default: $"+passwordEnv+" or prompt)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if inPath == "" {
		fmt.Fprintln(errOut, "usage: stego decode -in <image> [-password <pw>]")
		return 2
	}

	buf, _, err := readImage(inPath)
	if err != nil {
		fmt.Fprintf(errOut, "read -in: %v\n", err)
		return 1
	}
	password, err = resolvePassword(password, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "password: %v\n", err)
		return 1
	}

	s := stego.New(stego.WithLogger(newLogger(errOut, verbose)))
	res, err := s.Decode(context.Background(), buf, password)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %s\n", stego.FailureReason(err))
		return 1
	}
	fmt.Fprintln(out, res.Message)
	return 0
}

func cmdCapacity(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("capacity", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var inPath, alg string
	var width, height int
	fs.StringVar(&inPath, "in", "", "Carrier image (PNG or BMP)")
	fs.IntVar(&width, "width", 0, "Image width in pixels")
	fs.IntVar(&height, "height", 0, "Image height in pixels")
	fs.StringVar(&alg, "alg", "", "Only report this algorithm")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if (inPath == "") == (width <= 0 || height <= 0) {
		fmt.Fprintln(errOut, "usage: stego capacity (-in <image> | -width <n> -height <n>) [-alg lsb|pvd|dwt]")
		return 2
	}

	algs := engine.Algorithms()
	if alg != "" {
		a, err := engine.ParseAlgorithm(alg)
		if err != nil {
			fmt.Fprintf(errOut, "invalid -alg: %v\n", err)
			return 2
		}
		algs = []engine.Algorithm{a}
	}

	var buf *pixel.Buffer
	if inPath != "" {
		var err error
		buf, _, err = readImage(inPath)
		if err != nil {
			fmt.Fprintf(errOut, "read -in: %v\n", err)
			return 1
		}
		width, height = buf.Width, buf.Height
	}

	s := stego.New()
	fmt.Fprintf(out, "%dx%d pixels\n", width, height)
	for _, a := range algs {
		est := stego.EstimateCapacity(width, height, a)
		line := fmt.Sprintf("  %-4s estimate %s bytes (%s)", a, humanize.Comma(int64(est)), humanize.Bytes(uint64(est)))
		if buf != nil {
			limit, err := s.MaxMessageLength(buf, a)
			if err != nil {
				fmt.Fprintf(errOut, "capacity: %v\n", err)
				return 1
			}
			line += fmt.Sprintf(", exact %s bytes (%s)", humanize.Comma(int64(limit)), humanize.Bytes(uint64(limit)))
		}
		fmt.Fprintln(out, line)
	}
	return 0
}

func cmdAlgorithms(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("algorithms", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	for _, a := range engine.Algorithms() {
		d, _ := engine.Info(a)
		fmt.Fprintf(out, "%s\t%s (%s)\n", d.Algorithm, d.FullName, d.Name)
		fmt.Fprintf(out, "\tcapacity %s, security %s, speed %s\n", d.Capacity, d.Security, d.Speed)
		fmt.Fprintf(out, "\t%s\n", d.Description)
	}
	return 0
}

func readMessage(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(bufio.NewReader(os.Stdin))
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func readImage(path string) (*pixel.Buffer, imageio.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return imageio.Decode(bufio.NewReader(f))
}

func writeImage(path string, buf *pixel.Buffer, format imageio.Format) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := imageio.Encode(w, buf, format); err != nil {
		return err
	}
	return w.Flush()
}

// resolvePassword returns flagValue, else $STEGO_PASSWORD, else a password
// read from the terminal.
func resolvePassword(flagValue string, errOut io.Writer) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if pw := getenv(passwordEnv); pw != "" {
		return pw, nil
	}
	return readPassword(errOut)
}

func promptPassword(errOut io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given: use -password, $%s or run in a terminal", passwordEnv)
	}
	fmt.Fprint(errOut, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(errOut)
	if err != nil {
		return "", err
	}
	pw := strings.TrimRight(string(b), "\r\n")
	if pw == "" {
		return "", stego.ErrEmptyPassword
	}
	return pw, nil
}
