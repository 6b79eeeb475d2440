// Package dataurl encodes and decodes base64 data URLs of the form
// data:<media type>;base64,<payload>.
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme       = "data:"
	base64Marker = ";base64"
)

var (
	ErrNotDataURL = errors.New("not a data URL")
	ErrNotBase64  = errors.New("data URL payload is not base64")
)

// DataURL is a parsed data URL.
type DataURL struct {
	MediaType string
	Payload   string
}

// Encode wraps data into a base64 data URL.
func Encode(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(scheme) + len(mediaType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mediaType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Prefix returns the header Encode writes for mediaType.
func Prefix(mediaType string) string {
	return scheme + mediaType + base64Marker + ","
}

// HeaderLength is the number of bytes before the payload, taken from the
// URL's own header rather than from an assumed media type.
func HeaderLength(url string) (int, error) {
	if !strings.HasPrefix(url, scheme) {
		return 0, ErrNotDataURL
	}
	comma := strings.IndexByte(url, ',')
	if comma < 0 {
		return 0, fmt.Errorf("%w: missing payload separator", ErrNotDataURL)
	}
	return comma + 1, nil
}

// Parse splits a base64 data URL into media type and payload.
func Parse(url string) (DataURL, error) {
	n, err := HeaderLength(url)
	if err != nil {
		return DataURL{}, err
	}
	header := url[len(scheme) : n-1]
	mediaType, ok := strings.CutSuffix(header, base64Marker)
	if !ok {
		return DataURL{}, ErrNotBase64
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return DataURL{MediaType: mediaType, Payload: url[n:]}, nil
}

// Decode strips the header and returns the raw bytes.
func Decode(url string) ([]byte, error) {
	parsed, err := Parse(url)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(parsed.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return data, nil
}
