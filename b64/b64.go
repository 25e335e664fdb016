// Package b64 implements Base64 as specified by RFC 4648 (standard and
// URL-safe alphabets) and the line-wrapped MIME form of RFC 2045.
package b64

import "strconv"

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padChar = '='

	// MIMELineLength is the maximum encoded line length of RFC 2045.
	MIMELineLength = 76
)

const invalidSymbol = 0xFF

// decodeMap accepts the symbols of both alphabets.
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidSymbol
	}
	for i := 0; i < len(stdAlphabet); i++ {
		m[stdAlphabet[i]] = byte(i)
		m[urlAlphabet[i]] = byte(i)
	}
	return m
}()

type Encoding struct {
	alphabet string
	padding  bool
}

var (
	StdEncoding = &Encoding{alphabet: stdAlphabet, padding: true}
	URLEncoding = &Encoding{alphabet: urlAlphabet, padding: true}
)

// WithPadding returns a copy of enc that emits or omits trailing '='.
func (enc Encoding) WithPadding(padding bool) *Encoding {
	enc.padding = padding
	return &enc
}

type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "illegal base64 data at input byte " + strconv.FormatInt(int64(e), 10)
}

// EncodedLen returns the length of the encoding of n source bytes.
func (enc *Encoding) EncodedLen(n int) int {
	if enc.padding {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

func (enc *Encoding) Encode(src []byte) []byte {
	dst := make([]byte, 0, enc.EncodedLen(len(src)))

	i := 0
	for ; len(src)-i >= 3; i += 3 {
		v := uint(src[i])<<16 | uint(src[i+1])<<8 | uint(src[i+2])
		dst = append(dst,
			enc.alphabet[v>>18&0x3F],
			enc.alphabet[v>>12&0x3F],
			enc.alphabet[v>>6&0x3F],
			enc.alphabet[v&0x3F],
		)
	}

	switch len(src) - i {
	case 1:
		v := uint(src[i]) << 16
		dst = append(dst, enc.alphabet[v>>18&0x3F], enc.alphabet[v>>12&0x3F])
		if enc.padding {
			dst = append(dst, padChar, padChar)
		}
	case 2:
		v := uint(src[i])<<16 | uint(src[i+1])<<8
		dst = append(dst, enc.alphabet[v>>18&0x3F], enc.alphabet[v>>12&0x3F], enc.alphabet[v>>6&0x3F])
		if enc.padding {
			dst = append(dst, padChar)
		}
	}
	return dst
}

func (enc *Encoding) EncodeToString(src []byte) string {
	return string(enc.Encode(src))
}

// Decode accepts padded or unpadded input and either alphabet.
func (enc *Encoding) Decode(src []byte) ([]byte, error) {
	end := len(src)
	for pads := 0; end > 0 && src[end-1] == padChar; pads++ {
		if pads == 2 {
			return nil, CorruptInputError(end - 1)
		}
		end--
	}
	if end < len(src) && len(src)%4 != 0 {
		return nil, CorruptInputError(end)
	}

	dst := make([]byte, 0, end*6/8)

	var quantum [4]byte
	n := 0
	for i := 0; i < end; i++ {
		v := decodeMap[src[i]]
		if v == invalidSymbol {
			return nil, CorruptInputError(i)
		}

		quantum[n] = v
		n++
		if n == 4 {
			dst = append(dst,
				quantum[0]<<2|quantum[1]>>4,
				quantum[1]<<4|quantum[2]>>2,
				quantum[2]<<6|quantum[3],
			)
			n = 0
		}
	}

	switch n {
	case 1:
		// a single trailing symbol carries only six bits
		return nil, CorruptInputError(end - 1)
	case 2:
		dst = append(dst, quantum[0]<<2|quantum[1]>>4)
	case 3:
		dst = append(dst, quantum[0]<<2|quantum[1]>>4, quantum[1]<<4|quantum[2]>>2)
	}
	return dst, nil
}

func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	return enc.Decode([]byte(s))
}

// EncodeMIME encodes src with the padded standard alphabet and breaks the
// output with CRLF after every MIMELineLength symbols.
func EncodeMIME(src []byte) []byte {
	encoded := StdEncoding.Encode(src)
	if len(encoded) <= MIMELineLength {
		return encoded
	}

	lines := (len(encoded) + MIMELineLength - 1) / MIMELineLength
	dst := make([]byte, 0, len(encoded)+2*(lines-1))
	for len(encoded) > MIMELineLength {
		dst = append(dst, encoded[:MIMELineLength]...)
		dst = append(dst, '\r', '\n')
		encoded = encoded[MIMELineLength:]
	}
	return append(dst, encoded...)
}

// DecodeMIME drops CR and LF bytes and decodes the rest.
func DecodeMIME(src []byte) ([]byte, error) {
	stripped := make([]byte, 0, len(src))
	for _, c := range src {
		if c != '\r' && c != '\n' {
			stripped = append(stripped, c)
		}
	}
	return StdEncoding.Decode(stripped)
}
