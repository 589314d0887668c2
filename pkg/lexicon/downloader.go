package lexicon

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"time"
)

// The tarball carries the full WordNet database; only the synset data files
// for the categories we filter on are imported.
var wantedDataFiles = map[string]bool{
	"data.noun": true,
	"data.verb": true,
	"data.adj":  true,
}

// fetchAndImport downloads the WordNet tarball and imports the synset data
// files into the senses table.
func (d *DB) fetchAndImport(ctx context.Context) error {
	log.Printf("Sense store empty. Downloading WordNet data from %s...", d.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "seedsieve-cli")

	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	gzReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)

	var imported int
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !wantedDataFiles[path.Base(header.Name)] {
			continue
		}
		count, err := d.importDataFile(ctx, tarReader)
		if err != nil {
			return fmt.Errorf("import %s: %w", header.Name, err)
		}
		log.Printf("Imported %d senses from %s", count, path.Base(header.Name))
		imported++
	}

	if imported == 0 {
		return fmt.Errorf("no data files found in downloaded archive")
	}
	return nil
}
