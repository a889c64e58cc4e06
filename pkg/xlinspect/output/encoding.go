package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewEncodedWriter wraps w so that UTF-8 text written to it reaches w in the
// named character set (an IANA name such as "windows-1256"). Characters the
// target set cannot represent are replaced. Close flushes buffered output
// but does not close w.
func NewEncodedWriter(w io.Writer, charset string) (io.WriteCloser, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return nopWriteCloser{w}, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", charset)
	}

	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}
