package revealdown

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// SourceConverter turns a deck source into HTML.
type SourceConverter interface {
	ToHTML(input []byte) (string, error)
}

var (
	sourceFormats     = map[string]SourceConverter{}
	sourceFormatsLock sync.RWMutex
)

// RegisterSourceFormat makes conv the converter for files with extension ext.
// A previously registered converter for ext is replaced.
func RegisterSourceFormat(ext string, conv SourceConverter) {
	sourceFormatsLock.Lock()
	defer sourceFormatsLock.Unlock()
	sourceFormats[normalizeExt(ext)] = conv
}

// SourceFormat returns the converter registered for ext.
func SourceFormat(ext string) (SourceConverter, error) {
	sourceFormatsLock.RLock()
	defer sourceFormatsLock.RUnlock()
	ext = normalizeExt(ext)
	conv, exists := sourceFormats[ext]
	if !exists {
		return nil, fmt.Errorf("%w for file type: %q", ErrUnknownFormat, ext)
	}
	return conv, nil
}

func converterFor(name string) (SourceConverter, error) {
	return SourceFormat(filepath.Ext(name))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
