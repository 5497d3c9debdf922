package localedata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names a locale file syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for format names and extensions we cannot decode.
var ErrUnknownFormat = errors.New("unknown locale file format")

// ParseFormat validates a user supplied format name. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatYAML, FormatTOML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks the format from the file extension; anything that is
// not .toml or .json is read as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Error wraps a decoder failure with the file and format it came from.
type Error struct {
	Path   string
	Format Format
	Line   int
	Err    error
}

func (e *Error) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: invalid %s: %v", where, e.Line, e.Format, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s: %v", where, e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Decode decodes data using format; FormatAuto detects it from path.
func Decode(path string, data []byte, format Format) (*Node, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}
	var (
		n   *Node
		err error
	)
	switch format {
	case FormatYAML:
		n, err = DecodeYAML(data)
	case FormatTOML:
		n, err = DecodeTOML(data)
	case FormatJSON:
		n, err = DecodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		var de *Error
		if errors.As(err, &de) {
			de.Path = path
			return nil, de
		}
		return nil, &Error{Path: path, Format: format, Err: err}
	}
	return n, nil
}

// ReadFile reads and decodes the locale file at path.
func ReadFile(path string, format Format) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data, format)
}
