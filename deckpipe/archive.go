// CLAUDE:SUMMARY Archive reader — unpacks ppt/slides/slideN.xml entries in numeric order with a zip-slip guard.
package deckpipe

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ArchiveError reports a fatal problem with the deck package itself:
// corrupt/non-archive input, no slide entries, or an entry whose extraction
// path escapes the extraction root. It is the only error category that
// aborts a parse.
type ArchiveError struct {
	Op    string // "open", "extract", "scan"
	Entry string // offending entry name, if any
	Err   error
}

func (e *ArchiveError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("archive %s %q: %v", e.Op, e.Entry, e.Err)
	}
	return fmt.Sprintf("archive %s: %v", e.Op, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

var (
	errNoSlides   = errors.New("no slide entries found")
	errPathEscape = errors.New("entry path resolves outside extraction root")
)

var slideNamePattern = regexp.MustCompile(`^slide(\d+)\.xml$`)

// extractSlides unpacks the slide XML payloads from the raw deck bytes,
// ordered numerically by slide number regardless of archive entry order.
// Extraction goes through a per-call temporary root that is removed on
// every exit path. Every archive entry — slide or not — is checked for
// path containment before anything is written.
func extractSlides(data []byte) ([][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ArchiveError{Op: "open", Err: err}
	}

	root, err := os.MkdirTemp("", "deckrep-extract-*")
	if err != nil {
		return nil, fmt.Errorf("create extraction root: %w", err)
	}
	defer os.RemoveAll(root)

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve extraction root: %w", err)
	}

	type slideEntry struct {
		num  int
		path string
	}
	var slides []slideEntry

	for _, f := range zr.File {
		// Containment check on the canonical destination, for all entries.
		dest := filepath.Join(rootAbs, filepath.FromSlash(f.Name))
		if dest != rootAbs && !strings.HasPrefix(dest, rootAbs+string(os.PathSeparator)) {
			return nil, &ArchiveError{Op: "extract", Entry: f.Name, Err: errPathEscape}
		}

		if path.Dir(f.Name) != "ppt/slides" {
			continue
		}
		m := slideNamePattern.FindStringSubmatch(path.Base(f.Name))
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if err := writeEntry(f, dest); err != nil {
			return nil, &ArchiveError{Op: "extract", Entry: f.Name, Err: err}
		}
		slides = append(slides, slideEntry{num: num, path: dest})
	}

	if len(slides) == 0 {
		return nil, &ArchiveError{Op: "scan", Err: errNoSlides}
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	payloads := make([][]byte, 0, len(slides))
	for _, s := range slides {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read extracted slide %d: %w", s.num, err)
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}

func writeEntry(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Close()
}
