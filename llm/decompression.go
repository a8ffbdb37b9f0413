package llm

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// acceptEncoding is advertised on every request. Setting it by hand turns off
// net/http's transparent gzip, so DecompressBody handles both encodings.
const acceptEncoding = "gzip, br"

// DecompressBody returns body decoded according to the Content-Encoding
// header. Gzip is also recognized by its magic bytes when the header is
// missing. The bool reports whether anything was decoded.
func DecompressBody(body []byte, contentEncoding string) ([]byte, bool, error) {
	if len(body) == 0 {
		return body, false, nil
	}

	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))

	switch {
	case encoding == "gzip" || (len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b):
		reader, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, false, fmt.Errorf("gzip: %w", err)
		}
		defer reader.Close()

		decompressed, err := io.ReadAll(reader)
		if err != nil {
			return nil, false, fmt.Errorf("gzip: %w", err)
		}
		return decompressed, true, nil

	case encoding == "br":
		decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		if err != nil {
			return nil, false, fmt.Errorf("brotli: %w", err)
		}
		return decompressed, true, nil
	}

	return body, false, nil
}
