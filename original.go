package humanid

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind discriminates the variants of an OriginalID.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindInt
	KindBytes
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// OriginalID is a caller-supplied identifier: text, a signed integer, or raw
// bytes. Values are comparable and can be used as map keys. Text("1") and
// Int(1) are different identifiers even though they hash to the same value.
type OriginalID struct {
	kind Kind
	text string // text value, or raw bytes for KindBytes
	num  int64
}

// Text returns a text original identifier.
func Text(s string) OriginalID { return OriginalID{kind: KindText, text: s} }

// Int returns an integer original identifier.
func Int(n int64) OriginalID { return OriginalID{kind: KindInt, num: n} }

// Bytes returns a raw byte original identifier. The slice is copied.
func Bytes(b []byte) OriginalID { return OriginalID{kind: KindBytes, text: string(b)} }

// UUID returns the 16 raw bytes of u as a byte original identifier.
func UUID(u uuid.UUID) OriginalID { return Bytes(u[:]) }

// Kind returns the variant. The zero OriginalID has kind 0.
func (o OriginalID) Kind() Kind { return o.kind }

// IsZero reports whether o is the zero value.
func (o OriginalID) IsZero() bool { return o.kind == 0 }

// TextValue returns the text value and whether o is a text identifier.
func (o OriginalID) TextValue() (string, bool) { return o.text, o.kind == KindText }

// IntValue returns the integer value and whether o is an integer identifier.
func (o OriginalID) IntValue() (int64, bool) { return o.num, o.kind == KindInt }

// BytesValue returns a copy of the raw bytes and whether o is a byte identifier.
func (o OriginalID) BytesValue() ([]byte, bool) {
	if o.kind != KindBytes {
		return nil, false
	}
	return []byte(o.text), true
}

// String renders o for display. Byte identifiers are hex encoded.
func (o OriginalID) String() string {
	switch o.kind {
	case KindText:
		return o.text
	case KindInt:
		return strconv.FormatInt(o.num, 10)
	case KindBytes:
		return hex.EncodeToString([]byte(o.text))
	default:
		return ""
	}
}

// hashInput renders o together with the seed into the bytes that are hashed.
// Text and integers become "{value}{seed}", bytes get the decimal seed appended.
// A zero seed appends nothing.
func (o OriginalID) hashInput(seed int64) []byte {
	var buf []byte
	switch o.kind {
	case KindInt:
		buf = strconv.AppendInt(buf, o.num, 10)
	default:
		buf = append(buf, o.text...)
	}
	if seed != 0 {
		buf = strconv.AppendInt(buf, seed, 10)
	}
	return buf
}

const encodingBase64 = "base64"

type originalJSON struct {
	Type     string          `json:"type"`
	Value    json.RawMessage `json:"value"`
	Encoding string          `json:"encoding,omitempty"`
}

// MarshalJSON encodes o as {"type": ..., "value": ...}. Bytes are base64.
// Text that is not valid UTF-8 is base64 encoded and marked with
// "encoding": "base64" so it survives the round trip unchanged.
func (o OriginalID) MarshalJSON() ([]byte, error) {
	var (
		value    any
		encoding string
	)
	switch o.kind {
	case KindText:
		value = o.text
		if !utf8.ValidString(o.text) {
			value = base64.StdEncoding.EncodeToString([]byte(o.text))
			encoding = encodingBase64
		}
	case KindInt:
		value = o.num
	case KindBytes:
		value = []byte(o.text)
	default:
		return nil, fmt.Errorf("%w: zero value", ErrInvalidOriginal)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(originalJSON{Type: o.kind.String(), Value: raw, Encoding: encoding})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (o *OriginalID) UnmarshalJSON(data []byte) error {
	var v originalJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
	}
	if len(v.Value) == 0 {
		return fmt.Errorf("%w: missing value", ErrInvalidOriginal)
	}
	if v.Encoding != "" && (v.Type != "text" || v.Encoding != encodingBase64) {
		return fmt.Errorf("%w: unsupported encoding %q for type %q", ErrInvalidOriginal, v.Encoding, v.Type)
	}
	switch v.Type {
	case "text":
		var s string
		if err := json.Unmarshal(v.Value, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		if v.Encoding == encodingBase64 {
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
			}
			s = string(b)
		}
		*o = Text(s)
	case "int":
		var n int64
		if err := json.Unmarshal(v.Value, &n); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		*o = Int(n)
	case "bytes":
		var b []byte
		if err := json.Unmarshal(v.Value, &b); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		*o = Bytes(b)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidOriginal, v.Type)
	}
	return nil
}

// ParseOriginal converts user input into an OriginalID. Supported kinds are
// text, int, hex, base64 and uuid; hex, base64 and uuid produce byte identifiers.
func ParseOriginal(kind, value string) (OriginalID, error) {
	switch strings.ToLower(kind) {
	case "", "text":
		return Text(value), nil
	case "int":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return OriginalID{}, fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		return Int(n), nil
	case "hex", "bytes":
		b, err := hex.DecodeString(value)
		if err != nil {
			return OriginalID{}, fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		return Bytes(b), nil
	case "base64":
		b, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return OriginalID{}, fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		return Bytes(b), nil
	case "uuid":
		u, err := uuid.Parse(value)
		if err != nil {
			return OriginalID{}, fmt.Errorf("%w: %v", ErrInvalidOriginal, err)
		}
		return UUID(u), nil
	default:
		return OriginalID{}, fmt.Errorf("%w: unsupported kind %q", ErrInvalidOriginal, kind)
	}
}
