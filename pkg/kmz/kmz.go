// Package kmz unpacks zipped KML bundles and sniffs input files.
package kmz

import (
	"archive/zip"
	"bufio"
	"bytes"
	"io"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

const (
	IS_UNKNOWN = -1
	IS_KML     = 1
	IS_KMZ     = 2
)

var ErrNoKML = errors.New("kmz: archive holds no .kml entry")

// Sniff classifies a buffer by its leading bytes.
func Sniff(sig []byte) int {
	if len(sig) > 512 {
		sig = sig[:512]
	}
	switch {
	case bytes.HasPrefix(sig, []byte("PK\x03\x04")):
		return IS_KMZ
	case bytes.Contains(sig, []byte("<kml")):
		return IS_KML
	case bytes.HasPrefix(bytes.TrimSpace(bytes.TrimPrefix(sig, []byte("\xef\xbb\xbf"))), []byte("<?xml")):
		return IS_KML
	}
	return IS_UNKNOWN
}

// SniffFile is Sniff applied to the head of the named file.
func SniffFile(fn string) (int, error) {
	file, err := os.Open(fn)
	if err != nil {
		return IS_UNKNOWN, err
	}
	defer file.Close()
	fh := bufio.NewReader(file)
	sig, err := fh.Peek(512)
	if err != nil && err != io.EOF {
		return IS_UNKNOWN, err
	}
	return Sniff(sig), nil
}

// Extract returns the document of a KMZ archive: doc.kml at the top level
// when present, otherwise the first .kml entry in archive order.
func Extract(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "kmz")
	}
	var first *zip.File
	for _, f := range zr.File {
		if !strings.EqualFold(path.Ext(f.Name), ".kml") {
			continue
		}
		if strings.EqualFold(f.Name, "doc.kml") {
			first = f
			break
		}
		if first == nil {
			first = f
		}
	}
	if first == nil {
		return nil, ErrNoKML
	}
	rc, err := first.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "kmz: open %s", first.Name)
	}
	defer rc.Close()
	dat, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "kmz: read %s", first.Name)
	}
	return dat, nil
}

// Open reads the KML document out of the KMZ file at fn.
func Open(fn string) ([]byte, error) {
	dat, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return Extract(bytes.NewReader(dat), int64(len(dat)))
}
