package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/enginecheck/enginecheck/engines"
)

// ErrAlreadyUpToDate indicates the manifest's engines section already
// matches the requested ranges, so nothing was written.
var ErrAlreadyUpToDate = errors.New("engines section already up to date")

// UpdateEngines merges the given range expressions into the engines section
// of the manifest at path.
//
// An empty node or npm string leaves that field untouched. All unrelated
// fields, the engines section's existing key order, and the file's original
// indentation style are preserved: the new engines object is spliced into
// the original bytes rather than re-marshaled, the same way lock-file
// writers keep byte-stable output. Returns ErrAlreadyUpToDate without
// touching the file when the merge changes nothing.
func UpdateEngines(path, node, npm string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrManifestNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	span, err := scanEngines(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	desired := make(map[string]string, len(span.values)+2)
	maps.Copy(desired, span.values)
	if node != "" {
		desired[engines.KindRuntime.String()] = node
	}
	if npm != "" {
		desired[engines.KindPackageManager.String()] = npm
	}

	if maps.Equal(desired, span.values) {
		return ErrAlreadyUpToDate
	}

	// Existing keys keep their order; new keys go last, node before npm.
	order := make([]string, 0, len(desired))
	for _, k := range span.keys {
		if _, ok := desired[k]; ok {
			order = append(order, k)
		}
	}
	for _, k := range []string{engines.KindRuntime.String(), engines.KindPackageManager.String()} {
		if _, ok := desired[k]; ok && !slices.Contains(order, k) {
			order = append(order, k)
		}
	}

	unit := detectIndent(data)
	obj := renderEnginesObject(desired, order, unit)

	var buf bytes.Buffer
	if span.found {
		buf.Write(data[:span.start])
		buf.WriteString(obj)
		buf.Write(data[span.end:])
	} else {
		closing := bytes.LastIndexByte(data, '}')
		if closing < 0 {
			return fmt.Errorf("failed to parse %s: no closing brace", path)
		}
		head := bytes.TrimRight(data[:closing], " \t\r\n")
		buf.Write(head)
		if !bytes.HasSuffix(head, []byte("{")) {
			buf.WriteString(",")
		}
		buf.WriteString("\n" + unit + `"engines": ` + obj + "\n")
		buf.Write(data[closing:])
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// enginesSpan describes the engines object found in a manifest's raw bytes.
type enginesSpan struct {
	found  bool
	start  int // byte offset of the value's opening brace
	end    int // byte offset just past the value's closing brace
	keys   []string
	values map[string]string
}

// scanEngines tokenizes the manifest and records the byte span, key order,
// and values of the top-level engines object, if present.
func scanEngines(data []byte) (*enginesSpan, error) {
	span := &enginesSpan{values: map[string]string{}}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("manifest root is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		if key != "engines" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := valTok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("engines field is not an object")
		}
		span.start = int(dec.InputOffset()) - 1

		for dec.More() {
			kTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			k, ok := kTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected token %v", kTok)
			}
			vTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, ok := vTok.(string)
			if !ok {
				return nil, fmt.Errorf("engines.%s is not a string", k)
			}
			span.keys = append(span.keys, k)
			span.values[k] = v
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, err
		}
		span.end = int(dec.InputOffset())
		span.found = true
		return span, nil
	}

	return span, nil
}

// skipValue consumes one JSON value, including nested objects and arrays.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("unexpected end of manifest")
			}
			return err
		}
		if dd, ok := tok.(json.Delim); ok {
			switch dd {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// detectIndent returns the leading whitespace of the first indented line,
// which is one indentation level for a conventionally formatted manifest.
func detectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return "  "
}

func renderEnginesObject(values map[string]string, order []string, unit string) string {
	if len(order) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range order {
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(values[k])
		b.WriteString(unit + unit)
		b.Write(kb)
		b.WriteString(": ")
		b.Write(vb)
		if i < len(order)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(unit + "}")
	return b.String()
}
