// Package digest fingerprints compiled program memory and finished
// traces using a SHA-3 hash-transcript, adapted from the teacher's
// Fiat-Shamir channel (internal/vybium-starks-vm/utils/channel.go).
// The STARK prover's transcript use of that channel is out of scope
// here; what survives is the hash-folding shape, repurposed for
// content fingerprints the CLI's digest subcommand and the
// concatenation smoke test (spec.md §8, scenario 6) compare instead of
// diffing whole traces.
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/isa"
	"github.com/vybium/vybium-bf-vm/internal/bfvm/vm"
)

// Digest is a SHA3-256 fingerprint rendered as a lowercase hex string.
type Digest string

func hash(chunks ...[]byte) Digest {
	h := sha3.New256()
	for _, c := range chunks {
		h.Write(c)
	}
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// Program fingerprints compiled program memory via its canonical
// 64-bit little-endian serialization.
func Program(p isa.Program) (Digest, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hash(data), nil
}

// Trace fingerprints a finished trace by folding each row's seven
// field elements in order, clk first -- the same append-then-hash
// shape the teacher's Channel.Send uses for its transcript, applied
// here to trace rows instead of protocol messages.
func Trace(tr vm.Trace) Digest {
	h := sha3.New256()
	for _, row := range tr {
		for _, fe := range []uint64{
			row.Clk.Uint64(), row.Ip.Uint64(), row.Ci.Uint64(), row.Ni.Uint64(),
			row.Mp.Uint64(), row.Mv.Uint64(), row.Mvi.Uint64(),
		} {
			var buf [8]byte
			for i := 0; i < 8; i++ {
				buf[i] = byte(fe >> (8 * i))
			}
			h.Write(buf[:])
		}
	}
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// Output fingerprints a raw output byte stream -- used to compare two
// I/O-equivalent runs (spec.md §8 scenario 6) without retaining the
// full byte sequence.
func Output(bytes []byte) Digest {
	return hash(bytes)
}
