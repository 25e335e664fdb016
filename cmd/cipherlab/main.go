// Command cipherlab runs DES, Triple-DES and the classical ciphers from the
// command line.
//
//	cipherlab des [-d] [-key HEX] BLOCK...
//	cipherlab 3des [-d] [-mode ede|eee] -key HEX BLOCK...
//	cipherlab caesar [-d] [-shift N] [-dir left|right] TEXT...
//	cipherlab vigenere [-d] -key KEY TEXT...
//	cipherlab base64 [-d] [-url] [-raw] [-mime] [TEXT...]
//	cipherlab avalanche [-samples N] [-seed N] [-keybits]
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"cipherlab/avalanche"
	"cipherlab/b64"
	"cipherlab/caesar"
	"cipherlab/des"
	"cipherlab/tripledes"
	"cipherlab/vigenere"
)

var errUsage = errors.New("usage")

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Is(target error) bool { return target == errUsage }

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, cfg *Config, args []string, stdin io.Reader, stdout io.Writer) error
}

var commands = []command{
	{"des", "encrypt or decrypt 64-bit blocks with DES", runDES},
	{"3des", "encrypt or decrypt 64-bit blocks with Triple-DES", runTripleDES},
	{"caesar", "apply the Caesar shift cipher", runCaesar},
	{"vigenere", "apply the Vigenère cipher", runVigenere},
	{"base64", "encode or decode Base64", runBase64},
	{"avalanche", "measure bit diffusion of DES", runAvalanche},
}

func main() {
	log.SetPrefix("cipherlab: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, loadConfig(), os.Args[1:], os.Stdin, os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		log.Print(err)
		os.Exit(2)
	default:
		log.Print(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return usagef("missing command\n%s", commandList())
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, cfg, args[1:], stdin, stdout)
		}
	}
	return usagef("unknown command %q\n%s", args[0], commandList())
}

func commandList() string {
	var b strings.Builder
	b.WriteString("commands:")
	for _, c := range commands {
		fmt.Fprintf(&b, "\n  %-10s %s", c.name, c.summary)
	}
	return b.String()
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.PrintDefaults()
			return err
		}
		return usagef("%s: %v", fs.Name(), err)
	}
	return nil
}

func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// parseBlock reads up to 16 hex digits, with or without a 0x prefix.
func parseBlock(s string) (uint64, error) {
	digits := trimHexPrefix(s)
	if digits == "" || len(digits) > 16 {
		return 0, fmt.Errorf("invalid hex block %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex block %q", s)
	}
	return v, nil
}

func parseKeyBytes(s string) ([]byte, error) {
	key, err := hex.DecodeString(trimHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex key: %w", err)
	}
	return key, nil
}

func runDES(_ context.Context, cfg *Config, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("des")
	decrypt := fs.Bool("d", false, "decrypt")
	keyHex := fs.String("key", cfg.DESKey, "64-bit key in hex")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("des: no blocks given")
	}

	key, err := parseBlock(*keyHex)
	if err != nil {
		return usagef("des: key: %v", err)
	}

	for _, arg := range fs.Args() {
		block, err := parseBlock(arg)
		if err != nil {
			return usagef("des: %v", err)
		}
		if *decrypt {
			block = des.Decrypt(block, key)
		} else {
			block = des.Encrypt(block, key)
		}
		fmt.Fprintf(stdout, "%016X\n", block)
	}
	return nil
}

func runTripleDES(_ context.Context, _ *Config, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("3des")
	decrypt := fs.Bool("d", false, "decrypt")
	keyHex := fs.String("key", "", "8, 16 or 24 byte key in hex")
	modeName := fs.String("mode", "ede", "keying mode: ede or eee")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("3des: no blocks given")
	}

	var mode tripledes.TripleDESMode
	switch strings.ToLower(*modeName) {
	case "ede":
		mode = tripledes.EDE
	case "eee":
		mode = tripledes.EEE
	default:
		return usagef("3des: unknown mode %q", *modeName)
	}

	key, err := parseKeyBytes(*keyHex)
	if err != nil {
		return usagef("3des: %v", err)
	}

	cipher, err := tripledes.NewTripleDES(mode)
	if err != nil {
		return err
	}
	if err := cipher.SetKey(key); err != nil {
		return usagef("3des: %v", err)
	}

	for _, arg := range fs.Args() {
		v, err := parseBlock(arg)
		if err != nil {
			return usagef("3des: %v", err)
		}
		block := make([]byte, des.BlockSize)
		for i := range block {
			block[i] = byte(v >> (56 - 8*i))
		}

		var out []byte
		if *decrypt {
			out, err = cipher.Decrypt(block)
		} else {
			out, err = cipher.Encrypt(block)
		}
		if err != nil {
			return fmt.Errorf("3des: %w", err)
		}
		fmt.Fprintf(stdout, "%X\n", out)
	}
	return nil
}

func runCaesar(_ context.Context, _ *Config, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("caesar")
	decrypt := fs.Bool("d", false, "decrypt")
	shift := fs.Uint("shift", 3, "shift amount")
	dirName := fs.String("dir", "right", "shift direction: left or right")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	dir, err := caesar.ParseDirection(*dirName)
	if err != nil {
		return usagef("caesar: %v", err)
	}
	if *shift > 255 {
		return usagef("caesar: shift %d out of range", *shift)
	}

	text := strings.Join(fs.Args(), " ")
	if *decrypt {
		fmt.Fprintln(stdout, caesar.Decrypt(text, uint8(*shift), dir))
	} else {
		fmt.Fprintln(stdout, caesar.Encrypt(text, uint8(*shift), dir))
	}
	return nil
}

func runVigenere(_ context.Context, _ *Config, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("vigenere")
	decrypt := fs.Bool("d", false, "decrypt")
	key := fs.String("key", "", "key; only ASCII letters are used")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *key == "" {
		return usagef("vigenere: -key is required")
	}

	text := strings.Join(fs.Args(), " ")
	if *decrypt {
		fmt.Fprintln(stdout, vigenere.Decrypt(text, *key))
	} else {
		fmt.Fprintln(stdout, vigenere.Encrypt(text, *key))
	}
	return nil
}

func runBase64(_ context.Context, _ *Config, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("base64")
	decode := fs.Bool("d", false, "decode")
	url := fs.Bool("url", false, "use the URL-safe alphabet")
	raw := fs.Bool("raw", false, "omit padding")
	mime := fs.Bool("mime", false, "wrap lines at 76 symbols with CRLF")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *mime && (*url || *raw) {
		return usagef("base64: -mime cannot be combined with -url or -raw")
	}

	var input []byte
	if fs.NArg() > 0 {
		input = []byte(strings.Join(fs.Args(), " "))
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("base64: reading input: %w", err)
		}
		input = data
	}

	enc := b64.StdEncoding
	if *url {
		enc = b64.URLEncoding
	}
	if *raw {
		enc = enc.WithPadding(false)
	}

	if !*decode {
		if *mime {
			fmt.Fprintf(stdout, "%s\n", b64.EncodeMIME(input))
		} else {
			fmt.Fprintf(stdout, "%s\n", enc.Encode(input))
		}
		return nil
	}

	var out []byte
	var err error
	if *mime {
		out, err = b64.DecodeMIME(input)
	} else {
		out, err = enc.Decode([]byte(strings.TrimRight(string(input), "\r\n")))
	}
	if err != nil {
		return fmt.Errorf("base64: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

func runAvalanche(ctx context.Context, cfg *Config, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("avalanche")
	samples := fs.Int("samples", cfg.Avalanche.Samples, "random block/key pairs to test")
	seed := fs.Uint64("seed", cfg.Avalanche.Seed, "PRNG seed")
	keyBits := fs.Bool("keybits", false, "also flip the 56 effective key bits")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *samples <= 0 {
		return usagef("avalanche: -samples must be positive, got %d", *samples)
	}

	log.Printf("avalanche: %d samples, seed %d", *samples, *seed)
	report, err := avalanche.Analyze(ctx, des.Encrypt, avalanche.Config{
		Samples: *samples,
		Seed:    *seed,
		KeyBits: *keyBits,
	})
	if err != nil {
		return fmt.Errorf("avalanche: %w", err)
	}

	fmt.Fprintf(stdout, "plaintext: %v\n", report.Plaintext)
	if *keyBits {
		fmt.Fprintf(stdout, "key:       %v\n", report.Key)
	}
	return nil
}
