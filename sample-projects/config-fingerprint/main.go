package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	canonjson "github.com/reoring/canonjson"
	"github.com/reoring/canonjson/digest"
	"github.com/reoring/canonjson/yamlval"
)

// Fingerprinter turns config files into canonical JSON and content digests,
// so two files compare by meaning instead of by bytes: key order, whitespace,
// number spelling, and YAML-vs-JSON syntax all wash out.
type Fingerprinter struct {
	maxDepth int
}

func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{maxDepth: canonjson.DefaultMaxDepth}
}

// loadValue reads one document; .yaml/.yml parse as YAML, everything else as
// JSON.
func (fp *Fingerprinter) loadValue(path string) (canonjson.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err := yamlval.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s as YAML: %w", path, err)
		}
		return v, nil
	default:
		v, err := canonjson.ParseBytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s as JSON: %w", path, err)
		}
		return v, nil
	}
}

// Canonical returns the canonical JSON text of one config file.
func (fp *Fingerprinter) Canonical(path string) (string, error) {
	v, err := fp.loadValue(path)
	if err != nil {
		return "", err
	}
	return canonjson.Serialize(v, canonjson.SerializeOpt{MaxDepth: fp.maxDepth})
}

// Fingerprint returns the SHA-256 of the canonical form, as lowercase hex.
func (fp *Fingerprinter) Fingerprint(path string) (string, error) {
	v, err := fp.loadValue(path)
	if err != nil {
		return "", err
	}
	sum, err := digest.Sum256Value(v, canonjson.SerializeOpt{MaxDepth: fp.maxDepth})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sum), nil
}

// Diff reports whether two config files carry the same data.
func (fp *Fingerprinter) Diff(pathA, pathB string) (bool, error) {
	a, err := fp.Canonical(pathA)
	if err != nil {
		return false, err
	}
	b, err := fp.Canonical(pathB)
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// CheckDuplicates lists object members that repeat inside a JSON config.
// Last-member-wins parsing makes such files hash cleanly while humans read
// them differently, so CI should reject them.
func (fp *Fingerprinter) CheckDuplicates(path string) ([]canonjson.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return canonjson.DetectDuplicateKeys(data)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	fp := NewFingerprinter()
	command := os.Args[1]

	switch command {
	case "print":
		path := requireArg(2, "print <file>")
		out, err := fp.Canonical(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Canonicalize failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)

	case "hash":
		path := requireArg(2, "hash <file>")
		sum, err := fp.Fingerprint(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Fingerprint failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s  %s\n", sum, path)

	case "diff":
		pathA := requireArg(2, "diff <a> <b>")
		pathB := requireArg(3, "diff <a> <b>")
		same, err := fp.Diff(pathA, pathB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Diff failed: %v\n", err)
			os.Exit(1)
		}
		if !same {
			fmt.Printf("configs differ: %s vs %s\n", pathA, pathB)
			os.Exit(1)
		}
		fmt.Println("configs are semantically identical")

	case "check":
		path := requireArg(2, "check <file>")
		issues, err := fp.CheckDuplicates(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Check failed: %v\n", err)
			os.Exit(1)
		}
		if len(issues) > 0 {
			for _, iss := range issues {
				fmt.Fprintf(os.Stderr, "duplicate member at %s: %s\n", iss.Path, iss.Message)
			}
			os.Exit(1)
		}
		fmt.Println("no duplicate members")

	default:
		printUsage()
		os.Exit(1)
	}
}

func requireArg(i int, usage string) string {
	if len(os.Args) <= i {
		fmt.Fprintf(os.Stderr, "❌ Usage: %s %s\n", os.Args[0], usage)
		os.Exit(1)
	}
	return os.Args[i]
}

func printUsage() {
	fmt.Printf(`🎯 canonjson Config Fingerprint Sample

Usage: %s <command> [args...]

Commands:
  print <file>      Print the canonical JSON form of a config file
  hash <file>       Print the SHA-256 fingerprint of the canonical form
  diff <a> <b>      Compare two config files by meaning, not bytes
  check <file>      Reject JSON configs with duplicate object members

Files ending in .yaml/.yml parse as YAML; everything else parses as JSON.
Two files with the same data always produce the same fingerprint, whatever
their formatting, key order, or number spelling.

Examples:
  %s print deploy.yaml
  %s hash deploy.yaml
  %s diff deploy.yaml deploy.json
  %s check rendered.json

`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
