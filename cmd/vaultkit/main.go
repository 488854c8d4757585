// Command vaultkit exercises the CredVault crypto core from the shell:
// hashing and verifying passwords, generating secrets, scoring strength,
// and producing or importing protected exports. Results are printed as
// JSON on stdout; prompts and diagnostics go to stderr.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	credvault "github.com/credvault/core-go"
	"github.com/credvault/core-go/strength"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: vaultkit <hash|verify|generate|passphrase|strength|export|import|recovery-kit> [flags]")
	}

	switch os.Args[1] {
	case "hash":
		runHash()
	case "verify":
		runVerify(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	case "passphrase":
		runPassphrase(os.Args[2:])
	case "strength":
		runStrength()
	case "export":
		runExport()
	case "import":
		runImport()
	case "recovery-kit":
		runRecoveryKit()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func runHash() {
	password := readSecret("Password: ")

	encoded, err := credvault.Hash(password)
	if err != nil {
		fatal("hash: %v", err)
	}

	writeJSON(map[string]string{"hash": encoded})
}

func runVerify(args []string) {
	if len(args) < 1 {
		fatal("usage: vaultkit verify <encoded-hash>")
	}

	password := readSecret("Password: ")
	ok := credvault.Verify(password, args[0])

	writeJSON(map[string]bool{"valid": ok})
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	length := fs.Int("length", 20, "password length")
	noSymbols := fs.Bool("no-symbols", false, "exclude symbols")
	noAmbiguous := fs.Bool("no-ambiguous", false, "exclude ambiguous characters")
	fs.Parse(args)

	charsets := credvault.CharsetAll
	if *noSymbols {
		charsets &^= credvault.CharsetSymbols
	}

	password, err := credvault.GeneratePassword(*length, charsets, *noAmbiguous)
	if err != nil {
		fatal("generate: %v", err)
	}

	writeJSON(map[string]string{"password": password})
}

func runPassphrase(args []string) {
	fs := flag.NewFlagSet("passphrase", flag.ExitOnError)
	words := fs.Int("words", 6, "word count")
	separator := fs.String("separator", "-", "word separator")
	capitalize := fs.Bool("capitalize", false, "capitalize words")
	digits := fs.Int("digits", 0, "random digits to append")
	fs.Parse(args)

	opts := []credvault.PassphraseOption{credvault.WithSeparator(*separator)}
	if *capitalize {
		opts = append(opts, credvault.WithCapitalize())
	}
	if *digits > 0 {
		opts = append(opts, credvault.WithDigits(*digits))
	}

	passphrase, err := credvault.GeneratePassphrase(*words, opts...)
	if err != nil {
		fatal("passphrase: %v", err)
	}

	writeJSON(map[string]string{"passphrase": passphrase})
}

func runStrength() {
	password := readSecret("Password: ")
	result := strength.Analyze(password)

	writeJSON(struct {
		Score       int      `json:"score"`
		Category    string   `json:"category"`
		EntropyBits float64  `json:"entropyBits"`
		Feedback    []string `json:"feedback,omitempty"`
	}{result.Score, string(result.Category), result.EntropyBits, result.Feedback})
}

func runExport() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var credentials []credvault.Credential
	if err := json.Unmarshal(data, &credentials); err != nil {
		fatal("parse credentials: %v", err)
	}

	password := readSecretFromTTY("Export password: ")
	payload, err := credvault.SerializeExport(credentials, password)
	if err != nil {
		fatal("export: %v", err)
	}

	fmt.Println(payload)
}

func runImport() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	password := readSecretFromTTY("Export password: ")
	credentials, err := credvault.DeserializeExport(string(data), password)
	if err != nil {
		fatal("import: %v", err)
	}

	writeJSON(credentials)
}

func runRecoveryKit() {
	kit, err := credvault.GenerateRecoveryKit()
	if err != nil {
		fatal("recovery-kit: %v", err)
	}

	writeJSON(struct {
		PublicKey string `json:"publicKey"`
		SecretKey string `json:"secretKey"`
	}{kit.PublicKeyB64, base64.RawURLEncoding.EncodeToString(kit.SecretKey)})
}

// readSecret reads a password without echo when stdin is a terminal, and
// falls back to reading a line from stdin otherwise (piped input).
func readSecret(prompt string) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, prompt)
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fatal("read password: %v", err)
		}
		return string(secret)
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		fatal("read password: %v", err)
	}
	return strings.TrimRight(line, "\r\n")
}

// readSecretFromTTY prompts on /dev/tty so that stdin stays available for
// payload data.
func readSecretFromTTY(prompt string) string {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		fatal("cannot prompt for password: stdin carries data and /dev/tty is unavailable")
	}
	defer tty.Close()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fatal("read password: %v", err)
	}
	return string(secret)
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
