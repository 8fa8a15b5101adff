package entropy

import (
	"bufio"
	"crypto/rand"
	"io"

	log "github.com/sirupsen/logrus"
)

// ReaderSource serves bits out of an io.Reader one at a time, LSB first
// within each byte. The default reader is the OS entropy pool, which makes
// this the software fallback for the analog oscillator.
type ReaderSource struct {
	reader io.Reader
	cur    uint8
	bits   int
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r)}
}

// NewOSSource reads from the operating system entropy pool.
func NewOSSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

func (rs *ReaderSource) Bit() uint8 {
	if rs.bits == 0 {
		var buf [1]byte
		if _, err := io.ReadFull(rs.reader, buf[:]); err != nil {
			// a real source never stalls, so an exhausted reader just
			// degrades to a constant stream. Same failure mode as a
			// collapsed oscillator, detectable only by external tests.
			log.Errorf("entropy reader exhausted: %v", err)
			return 0
		}
		rs.cur = buf[0]
		rs.bits = 8
	}
	b := rs.cur & 1
	rs.cur >>= 1
	rs.bits--
	return b
}
