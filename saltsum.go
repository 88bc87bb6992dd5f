// Package saltsum computes salted KT128 digests bound to the application that
// produces them.
//
// A [Hasher] owns an immutable salt vector derived from an origin tag (the
// name of the running executable) and an optional caller-supplied salt. Each
// digest is KT128 evaluated over the vector followed by the input bytes, so
// identical inputs hashed under different salts, or by differently named
// applications, yield unrelated digests. This is a domain-separation scheme
// built on an unkeyed primitive, not a password hash or a proven MAC.
package saltsum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codahale/kt128"
)

// Size is the length of a digest in bytes. Hex renderings are twice as long.
const Size = 32

// Digest is a salted KT128 digest.
type Digest [Size]byte

// Bytes returns the raw digest.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Hex returns the digest as a lowercase hexadecimal string, two digits per
// byte, most significant nibble first, no separators.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// ParseDigest parses the hexadecimal rendering of a digest, as produced by
// [Digest.Hex].
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("saltsum: invalid digest: %w", err)
	}
	if len(b) != Size {
		return d, fmt.Errorf("saltsum: digest is %d bytes, want %d", len(b), Size)
	}
	copy(d[:], b)
	return d, nil
}

// Hasher computes salted digests. The salt vector is fixed at construction
// and never changes; each hashing call combines it with the supplied input
// and records the result, available afterwards through [Hasher.Last].
//
// A Hasher is not safe for concurrent use: hashing calls overwrite the
// recorded result. Give each goroutine its own instance; construction is
// cheap, and instances built with equal parameters produce equal digests.
type Hasher struct {
	iv   []byte
	last Digest
	ok   bool
}

// New returns a Hasher salted only with the origin tag: its salt vector is
// the KT128 digest of the running executable's name.
func New() *Hasher {
	return &Hasher{iv: deriveIV(originTag, "")}
}

// NewSalted returns a Hasher additionally salted with the given string: its
// salt vector is the digest of salt followed by the digest of the origin
// tag, in that order. An empty salt is equivalent to [New].
func NewSalted(salt string) *Hasher {
	return &Hasher{iv: deriveIV(originTag, salt)}
}

// Hash computes the salted digest of data and records it as the current
// result. A nil or empty slice digests the bare salt vector.
func (h *Hasher) Hash(data []byte) Digest {
	d := h.sum(data)
	h.last, h.ok = d, true
	return d
}

// HashString computes the salted digest of the UTF-8 bytes of s. It is
// equivalent to Hash([]byte(s)).
func (h *Hasher) HashString(s string) Digest {
	return h.Hash([]byte(s))
}

// HashReader computes the salted digest of r's contents, consuming it to
// EOF. A read error is returned unmodified, with the zero Digest, and the
// recorded result is left untouched.
func (h *Hasher) HashReader(r io.Reader) (Digest, error) {
	kh := kt128.New(nil)
	_, _ = kh.Write(h.iv)
	if _, err := io.Copy(kh, r); err != nil {
		return Digest{}, err
	}

	var d Digest
	_, _ = kh.Read(d[:])
	h.last, h.ok = d, true
	return d, nil
}

// HashFile computes the salted digest of the named file's contents. A
// missing file yields the error from [os.Open] unmodified, which carries the
// offending path and matches [io/fs.ErrNotExist]; read errors propagate the
// same way. On error the recorded result is left untouched.
func (h *Hasher) HashFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()

	return h.HashReader(f)
}

// Last returns the most recently recorded digest. The boolean reports
// whether any hashing call on this instance has completed: it is false until
// the first success and is never reset, so a failed call leaves both return
// values as they were.
func (h *Hasher) Last() (Digest, bool) {
	return h.last, h.ok
}

// sum evaluates KT128 over the salt vector followed by data.
func (h *Hasher) sum(data []byte) Digest {
	kh := kt128.New(nil)
	_, _ = kh.Write(h.iv)
	_, _ = kh.Write(data)

	var d Digest
	_, _ = kh.Read(d[:])
	return d
}

// originTag identifies the hashing application: the base name of the running
// executable, resolved once at package initialization.
var originTag = resolveOriginTag()

func resolveOriginTag() string {
	path, err := os.Executable()
	if err != nil || path == "" {
		path = os.Args[0]
	}
	return filepath.Base(path)
}

// deriveIV builds the salt vector for the given origin tag and caller salt.
// With no salt the vector is the digest of the tag alone; otherwise it is
// the digest of the salt concatenated with the digest of the tag. The order
// is contractual: changing it changes every digest.
func deriveIV(tag, salt string) []byte {
	if salt == "" {
		return hashBlock(tag)
	}
	return append(hashBlock(salt), hashBlock(tag)...)
}

// hashBlock returns the KT128 digest of s.
func hashBlock(s string) []byte {
	kh := kt128.New(nil)
	_, _ = kh.Write([]byte(s))

	out := make([]byte, Size)
	_, _ = kh.Read(out)
	return out
}
