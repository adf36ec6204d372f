package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hasbyte1/go-stego/imageio"
	"github.com/hasbyte1/go-stego/pixel"
)

const testPassword = "Tr0ub4dor&3"

// writeCarrier writes a w×h opaque PNG and returns its path.
func writeCarrier(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carrier.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := imageio.Encode(f, pixel.NewFilled(w, h, [4]uint8{90, 100, 110, 255}), imageio.FormatPNG); err != nil {
		t.Fatal(err)
	}
	return path
}

// noPrompt stubs out the environment and terminal for one test.
func noPrompt(t *testing.T, env map[string]string) {
	t.Helper()
	oldEnv, oldRead := getenv, readPassword
	getenv = func(k string) string { return env[k] }
	readPassword = func(io.Writer) (string, error) { return "", errors.New("no terminal") }
	t.Cleanup(func() { getenv, readPassword = oldEnv, oldRead })
}

func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		args []string
		code int
	}{
		{nil, 2},
		{[]string{"bogus"}, 2},
		{[]string{"help"}, 0},
		{[]string{"encode"}, 2},
		{[]string{"encode", "-in", "a.png", "-out", "b.png"}, 2},
		{[]string{"encode", "-in", "a.png", "-out", "b.png", "-text", "x", "-text-file", "y"}, 2},
		{[]string{"encode", "-in", "a.png", "-out", "b.jpg", "-text", "x"}, 2},
		{[]string{"encode", "-in", "a.png", "-out", "b.png", "-text", "x", "-alg", "fft"}, 2},
		{[]string{"decode"}, 2},
		{[]string{"capacity"}, 2},
		{[]string{"capacity", "-in", "a.png", "-width", "3", "-height", "3"}, 2},
		{[]string{"encode", "-nope"}, 2},
	}
	for _, tt := range tests {
		if code, _, _ := runCLI(tt.args...); code != tt.code {
			t.Errorf("run(%q) = %d, want %d", tt.args, code, tt.code)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	noPrompt(t, nil)
	for _, ext := range []string{".png", ".bmp"} {
		for _, alg := range []string{"lsb", "pvd", "dwt"} {
			t.Run(alg+ext, func(t *testing.T) {
				in := writeCarrier(t, 120, 120)
				out := filepath.Join(t.TempDir(), "out"+ext)

				code, stdout, stderr := runCLI("encode", "-in", in, "-out", out, "-alg", alg, "-text", "meet at noon", "-password", testPassword)
				if code != 0 {
					t.Fatalf("encode exit %d: %s", code, stderr)
				}
				if !strings.Contains(stdout, "hid 12 bytes") {
					t.Errorf("encode output = %q", stdout)
				}

				code, stdout, stderr = runCLI("decode", "-in", out, "-password", testPassword)
				if code != 0 {
					t.Fatalf("decode exit %d: %s", code, stderr)
				}
				if stdout != "meet at noon\n" {
					t.Fatalf("decode output = %q", stdout)
				}
			})
		}
	}
}

func TestDecode_WrongPassword(t *testing.T) {
	noPrompt(t, nil)
	in := writeCarrier(t, 100, 100)
	out := filepath.Join(t.TempDir(), "out.png")
	if code, _, stderr := runCLI("encode", "-in", in, "-out", out, "-text", "hello", "-password", testPassword); code != 0 {
		t.Fatal(stderr)
	}

	code, stdout, stderr := runCLI("decode", "-in", out, "-password", "wrong")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, "Invalid password or corrupted data") && !strings.Contains(stderr, "integrity") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDecode_NoMessage(t *testing.T) {
	noPrompt(t, nil)
	code, _, stderr := runCLI("decode", "-in", writeCarrier(t, 50, 50), "-password", "x")
	if code != 1 || !strings.Contains(stderr, "No hidden message found in this image") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestPasswordFromEnvironment(t *testing.T) {
	noPrompt(t, map[string]string{passwordEnv: testPassword})
	in := writeCarrier(t, 100, 100)
	out := filepath.Join(t.TempDir(), "out.png")

	if code, _, stderr := runCLI("encode", "-in", in, "-out", out, "-text", "env"); code != 0 {
		t.Fatal(stderr)
	}
	code, stdout, stderr := runCLI("decode", "-in", out, "-password", testPassword)
	if code != 0 || stdout != "env\n" {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestPasswordMissing(t *testing.T) {
	noPrompt(t, nil)
	code, _, stderr := runCLI("decode", "-in", writeCarrier(t, 10, 10))
	if code != 1 || !strings.Contains(stderr, "password") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestEncode_TextFile(t *testing.T) {
	noPrompt(t, nil)
	dir := t.TempDir()
	msgPath := filepath.Join(dir, "msg.txt")
	if err := os.WriteFile(msgPath, []byte("from a file"), 0o600); err != nil {
		t.Fatal(err)
	}
	in := writeCarrier(t, 100, 100)
	out := filepath.Join(dir, "out.png")

	if code, _, stderr := runCLI("encode", "-in", in, "-out", out, "-text-file", msgPath, "-password", testPassword); code != 0 {
		t.Fatal(stderr)
	}
	if _, stdout, _ := runCLI("decode", "-in", out, "-password", testPassword); stdout != "from a file\n" {
		t.Fatalf("decode output = %q", stdout)
	}
}

func TestEncode_TooLarge(t *testing.T) {
	noPrompt(t, nil)
	code, _, stderr := runCLI("encode", "-in", writeCarrier(t, 20, 20), "-out", filepath.Join(t.TempDir(), "o.png"),
		"-text", "hello", "-password", testPassword)
	if code != 1 || !strings.Contains(stderr, "Message too large") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestEncode_WeakPasswordWarning(t *testing.T) {
	noPrompt(t, nil)
	code, _, stderr := runCLI("encode", "-in", writeCarrier(t, 100, 100), "-out", filepath.Join(t.TempDir(), "o.png"),
		"-text", "hello", "-password", "weak")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "warning: stego: password is too weak") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestCapacity(t *testing.T) {
	code, stdout, stderr := runCLI("capacity", "-width", "100", "-height", "100")
	if code != 0 {
		t.Fatal(stderr)
	}
	for _, want := range []string{"100x100 pixels", "lsb  estimate 7,500 bytes (7.5 kB)", "pvd  estimate 5,400 bytes", "dwt  estimate 3,600 bytes"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}

	code, stdout, stderr = runCLI("capacity", "-in", writeCarrier(t, 100, 100), "-alg", "pvd")
	if code != 0 {
		t.Fatal(stderr)
	}
	if !strings.Contains(stdout, "pvd") || !strings.Contains(stdout, "exact") || strings.Contains(stdout, "lsb") {
		t.Errorf("output = %q", stdout)
	}
}

func TestAlgorithms(t *testing.T) {
	code, stdout, _ := runCLI("algorithms")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"Least Significant Bit", "Pixel Value Differencing", "Discrete Wavelet Transform"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
