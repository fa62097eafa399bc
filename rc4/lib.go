// Package rc4 implements the RC4 keystream generator and reader/writer
// adapters that XOR a data stream against it.
//
// RC4 is cryptographically broken. It is here for interoperability with
// things that still speak it, not for keeping secrets.
package rc4

import "errors"

// ErrInvalidKey is returned when constructing a cipher with an empty key.
var ErrInvalidKey = errors.New("rc4: key must not be empty")

// RC4 is a keystream generator. It is not safe for concurrent use, and
// keystream bytes come out strictly in order; a fresh stream needs a fresh
// RC4 from the key.
type RC4 struct {
	s    [256]byte
	i, j byte
}

// New runs the key schedule. Keys of any positive length work; key bytes
// are cycled over the 256 rounds.
func New(key []byte) (*RC4, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	r := &RC4{}
	for i := 0; i < 256; i++ {
		r.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j += r.s[i] + key[i%len(key)]
		r.s[i], r.s[j] = r.s[j], r.s[i]
	}
	return r, nil
}

// Generate returns the next keystream byte.
func (r *RC4) Generate() byte {
	r.i++
	r.j += r.s[r.i]
	r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
	return r.s[r.s[r.i]+r.s[r.j]]
}

// Fill overwrites b with the next len(b) keystream bytes.
func (r *RC4) Fill(b []byte) {
	for k := range b {
		b[k] = r.Generate()
	}
}

// Drop discards the next n keystream bytes, e.g. for RC4-drop[n] or to
// line the keystream up with an offset into a stream.
func (r *RC4) Drop(n int) *RC4 {
	for k := 0; k < n; k++ {
		r.Generate()
	}
	return r
}

// Read fills b with raw keystream. It never fails and never ends.
func (r *RC4) Read(b []byte) (int, error) {
	r.Fill(b)
	return len(b), nil
}

// XORKeyStream implements cipher.Stream. dst and src must overlap entirely
// or not at all.
func (r *RC4) XORKeyStream(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for k, v := range src {
		dst[k] = v ^ r.Generate()
	}
}
