// Package offsets converts annotation offsets between UTF-16 code units and
// Unicode code points.
//
// ACD clients count offsets in UTF-16 units, where characters outside the
// Basic Multilingual Plane take two units. The container model counts code
// points. The two agree until the first supplementary character and drift
// apart by one for each supplementary character after it.
package offsets

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Alignment maps offsets of one text between the two counting schemes.
// A nil *Alignment is valid and maps every offset to itself.
type Alignment struct {
	// codePoints[i] is the number of supplementary characters before code point i.
	codePoints []int
	// units[j] is the number of supplementary characters that start before UTF-16 unit j.
	units []int
	total int
}

func supplementary(r rune) bool { return r >= 0x10000 }

// NewAlignment builds the alignment for text. It returns nil when text has no
// supplementary characters, since offsets then agree in both schemes.
func NewAlignment(text string) *Alignment {
	if strings.IndexFunc(text, supplementary) < 0 {
		return nil
	}
	a := &Alignment{}
	for _, r := range text {
		a.codePoints = append(a.codePoints, a.total)
		a.units = append(a.units, a.total)
		if supplementary(r) {
			a.total++
			a.units = append(a.units, a.total)
		}
	}
	return a
}

// Table returns a copy of the per-code-point adjustment table: entry i is
// the number of supplementary characters before code point i. For
// "a\U00010000a" it is [0 0 1].
func (a *Alignment) Table() []int {
	if a == nil {
		return nil
	}
	out := make([]int, len(a.codePoints))
	copy(out, a.codePoints)
	return out
}

// Supplementary returns the number of supplementary characters in the text.
func (a *Alignment) Supplementary() int {
	if a == nil {
		return 0
	}
	return a.total
}

// ToUTF16 converts a code point offset to a UTF-16 offset. Offsets at or past
// the end of the text take the adjustment of the whole text; negative offsets
// are returned unchanged.
func (a *Alignment) ToUTF16(offset int) int {
	if a == nil || offset < 0 {
		return offset
	}
	if offset >= len(a.codePoints) {
		return offset + a.total
	}
	return offset + a.codePoints[offset]
}

// ToCodePoint converts a UTF-16 offset to a code point offset. An offset
// that falls between the two units of a surrogate pair maps to the character
// it splits. Offsets at or past the end of the text take the adjustment of
// the whole text; negative offsets are returned unchanged.
func (a *Alignment) ToCodePoint(offset int) int {
	if a == nil || offset < 0 {
		return offset
	}
	if offset >= len(a.units) {
		return offset - a.total
	}
	return offset - a.units[offset]
}

// Direction selects which way Realign converts offsets.
type Direction int

const (
	// ToCodePoints converts UTF-16 offsets to code point offsets.
	ToCodePoints Direction = iota
	// ToUTF16 converts code point offsets to UTF-16 offsets.
	ToUTF16
)

// String returns the direction name used on the command line
func (d Direction) String() string {
	if d == ToUTF16 {
		return "utf16"
	}
	return "codepoint"
}

// UTF16ToCodePoints rewrites the begin and end offsets of every unstructured
// container in the raw group from UTF-16 units to code points, in place.
func UTF16ToCodePoints(group map[string]any) {
	Realign(group, ToCodePoints)
}

// CodePointsToUTF16 rewrites the begin and end offsets of every unstructured
// container in the raw group from code points to UTF-16 units, in place.
func CodePointsToUTF16(group map[string]any) {
	Realign(group, ToUTF16)
}

// Realign rewrites offsets of a raw container group in place. Only
// unstructured containers with both text and data are touched. Every "begin"
// and "end" key found at any depth under data is converted independently;
// integral numbers and numeric strings are converted and written back as
// ints, other values are left alone. Realign never fails.
func Realign(group map[string]any, dir Direction) {
	if group == nil {
		return
	}
	forEachDocument(group["unstructured"], func(doc map[string]any) {
		text, ok := doc["text"].(string)
		if !ok {
			return
		}
		data, ok := doc["data"]
		if !ok || data == nil {
			return
		}
		a := NewAlignment(text)
		if a == nil {
			return
		}
		convert := a.ToCodePoint
		if dir == ToUTF16 {
			convert = a.ToUTF16
		}
		walk(data, convert)
	})
}

func forEachDocument(list any, fn func(map[string]any)) {
	switch docs := list.(type) {
	case []any:
		for _, item := range docs {
			if doc, ok := item.(map[string]any); ok {
				fn(doc)
			}
		}
	case []map[string]any:
		for _, doc := range docs {
			if doc != nil {
				fn(doc)
			}
		}
	}
}

func walk(node any, convert func(int) int) {
	switch n := node.(type) {
	case map[string]any:
		for key, val := range n {
			if key == "begin" || key == "end" {
				if offset, ok := asInt(val); ok {
					n[key] = convert(offset)
					continue
				}
			}
			walk(val, convert)
		}
	case []any:
		for _, item := range n {
			walk(item, convert)
		}
	case []map[string]any:
		for _, item := range n {
			walk(item, convert)
		}
	}
}

func asInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
