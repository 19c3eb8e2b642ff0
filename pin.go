package bank

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// ValidPIN reports whether pin is made of exactly 4 ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// digest is the one-way form of a PIN as it is stored in the ledger.
//
// Two schemes coexist:
//   - bcrypt hashes ("$2a$..."), used for every new account.
//   - legacy digests, a decimal integer produced by the 64-bit std::hash of
//     libstdc++. Older ledger files only contain those, they are still
//     accepted for verification.
//
// Neither form contains whitespace, so a digest is always a single token in
// the text format.
type digest string

// newDigest computes a fresh bcrypt digest for pin.
func newDigest(pin string, cost int) (digest, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", fmt.Errorf("cannot compute PIN digest: %w", err)
	}
	return digest(h), nil
}

// legacyDigest computes the legacy digest of pin.
func legacyDigest(pin string) digest {
	return digest(strconv.FormatUint(stdHash([]byte(pin)), 10))
}

// isLegacy reports whether d is a legacy numeric digest.
func (d digest) isLegacy() bool {
	if d == "" {
		return false
	}
	for i := 0; i < len(d); i++ {
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}
	return true
}

// verify recomputes the digest of candidate and compares it to d.
func (d digest) verify(candidate string) bool {
	if d.isLegacy() {
		want, err := strconv.ParseUint(string(d), 10, 64)
		return err == nil && want == stdHash([]byte(candidate))
	}
	return bcrypt.CompareHashAndPassword([]byte(d), []byte(candidate)) == nil
}

// libstdc++ _Hash_bytes constants, 64-bit flavour.
const (
	stdHashMul  uint64 = 0xc6a4a7935bd1e995
	stdHashSeed uint64 = 0xc70f6907
)

func shiftMix(v uint64) uint64 { return v ^ (v >> 47) }

// stdHash is the murmur-based hash libstdc++ uses for std::hash<std::string>
// on 64-bit targets.
func stdHash(b []byte) uint64 {
	n := len(b)
	aligned := n &^ 7
	h := stdHashSeed ^ (uint64(n) * stdHashMul)
	for p := 0; p < aligned; p += 8 {
		data := shiftMix(binary.LittleEndian.Uint64(b[p:])*stdHashMul) * stdHashMul
		h ^= data
		h *= stdHashMul
	}
	if rest := b[aligned:]; len(rest) > 0 {
		var data uint64
		for i := len(rest) - 1; i >= 0; i-- {
			data = data<<8 + uint64(rest[i])
		}
		h ^= data
		h *= stdHashMul
	}
	h = shiftMix(h) * stdHashMul
	return shiftMix(h)
}
