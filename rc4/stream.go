package rc4

import "io"

const bufSize = 32 * 1024

// Reader deciphers (or enciphers; it's the same thing) everything read
// from an underlying reader.
type Reader struct {
	r  io.Reader
	ks *RC4
}

// NewReader wraps r. The source may itself be a *Reader.
func NewReader(key []byte, r io.Reader) (*Reader, error) {
	ks, err := New(key)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, ks: ks}, nil
}

// Drop discards the next n keystream bytes before any data is read.
func (r *Reader) Drop(n int) *Reader {
	r.ks.Drop(n)
	return r
}

// Read reads from the underlying reader and XORs whatever arrived with the
// keystream. Errors, including io.EOF, are returned as the source gave
// them. Bytes that came along with an error are still XORed, so the
// keystream never falls out of step with the data.
func (r *Reader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if n > 0 {
		r.ks.XORKeyStream(b[:n], b[:n])
	}
	return n, err
}

// Writer enciphers everything written to it before passing it on.
type Writer struct {
	w   io.Writer
	ks  *RC4
	buf []byte
}

// NewWriter wraps w.
func NewWriter(key []byte, w io.Writer) (*Writer, error) {
	ks, err := New(key)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, ks: ks}, nil
}

// Drop discards the next n keystream bytes before any data is written.
func (w *Writer) Drop(n int) *Writer {
	w.ks.Drop(n)
	return w
}

// Write XORs p into a private buffer and writes that to the underlying
// writer; p itself is left alone. After an error the keystream position no
// longer matches what the underlying writer received, so the Writer should
// be abandoned.
func (w *Writer) Write(p []byte) (n int, err error) {
	if len(w.buf) < len(p) && len(w.buf) < bufSize {
		size := len(p)
		if size > bufSize {
			size = bufSize
		}
		w.buf = make([]byte, size)
	}
	for len(p) > 0 {
		buf := w.buf
		if len(p) < len(buf) {
			buf = buf[:len(p)]
		}
		w.ks.XORKeyStream(buf, p[:len(buf)])
		p = p[len(buf):]
		nw, ew := w.w.Write(buf)
		n += nw
		if ew != nil {
			return n, ew
		}
		if nw < len(buf) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}
