package genelist

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads gene names from a line-oriented text file, one name per line.
// Surrounding whitespace is stripped and blank lines are skipped. "-" reads
// stdin; gzip input is detected by magic number or a .gz suffix.
func Load(path string) ([]string, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var names []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return names, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("seek %s: %w", path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &gzipReadCloser{Reader: gr, gz: gr, fh: fh}, nil
	}
	return fh, nil
}

// gzipReadCloser closes the gzip stream and the underlying file.
type gzipReadCloser struct {
	io.Reader
	gz *gzip.Reader
	fh *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.gz.Close()
	ferr := g.fh.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}
