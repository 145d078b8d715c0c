package mlkem

import "crypto/sha3"

// h is SHA3-256, used to bind the encapsulation key into the derivation of
// K,r on the encaps side and into the decapsulation key.
func h(x []byte) []byte {
	sum := sha3.Sum256(x)
	return sum[:]
}

// g is SHA3-512, split into two 32-byte halves.
func g(x []byte) (a, b []byte) {
	sum := sha3.Sum512(x)
	a = append([]byte(nil), sum[:32]...)
	b = append([]byte(nil), sum[32:]...)
	return a, b
}

// j is SHAKE-256 truncated to 32 bytes, used to derive the implicit
// rejection key K-bar = J(z || c).
func j(x []byte) []byte {
	out := make([]byte, 32)
	s := sha3.NewSHAKE256()
	s.Write(x)
	s.Read(out)
	return out
}

// prf is SHAKE-256(s || n) truncated to 64*eta bytes. eta must be 2 or 3;
// any other value is a programmer error (an internal parameter-set
// mismatch), so it panics rather than returning an error.
func prf(eta int, s []byte, counter byte) []byte {
	if eta != 2 && eta != 3 {
		panic("mlkem: prf eta must be 2 or 3")
	}
	out := make([]byte, 64*eta)
	sh := sha3.NewSHAKE256()
	sh.Write(s)
	sh.Write([]byte{counter})
	sh.Read(out)
	return out
}

// incrementalXOF is a thin wrapper over SHAKE-128 exposing the absorb/
// squeeze shape the spec calls for. crypto/sha3's SHAKE type already
// streams correctly across repeated Read calls after the state switches
// from absorbing to squeezing on the first Read, so no internal buffering
// is needed beyond what the stdlib type provides.
type incrementalXOF struct {
	state *sha3.SHAKE
}

func newXOF() *incrementalXOF {
	return &incrementalXOF{state: sha3.NewSHAKE128()}
}

func (x *incrementalXOF) absorb(data []byte) {
	x.state.Write(data)
}

func (x *incrementalXOF) squeeze(nBytes int) []byte {
	buf := make([]byte, nBytes)
	x.state.Read(buf)
	return buf
}
