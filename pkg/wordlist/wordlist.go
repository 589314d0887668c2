// Package wordlist loads the BIP39 English wordlist, downloading it to a
// local cache file when missing.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultURL is the canonical BIP39 English wordlist.
	DefaultURL = "https://raw.githubusercontent.com/bitcoin/bips/master/bip-0039/english.txt"
	// DefaultPath is the local cache file.
	DefaultPath = "bip39_english.txt"
)

// Ensure checks that the wordlist exists at path, downloading it from url
// when missing. An existing file is never touched.
func Ensure(ctx context.Context, path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	log.Printf("Wordlist not found at %s. Downloading from %s...", path, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "seedsieve-cli")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch wordlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch wordlist: %s", resp.Status)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write wordlist: %w", err)
	}
	return nil
}

// Load reads the wordlist, one word per line, preserving order. Blank lines
// are dropped and surrounding whitespace trimmed.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
