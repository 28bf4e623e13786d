package token

import "fmt"

// base58Alphabet is the standard 58-character alphabet with the visually
// ambiguous 0, O, I and l removed.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodeBase58 encodes a non-negative integer as its shortest base-58
// representation. Zero encodes to the first alphabet character.
func EncodeBase58(n uint64) string {
	if n == 0 {
		return base58Alphabet[:1]
	}
	buf := make([]byte, 0, 11) // 64 bits never need more than 11 base-58 digits
	for n > 0 {
		buf = append(buf, base58Alphabet[n%58])
		n /= 58
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// DecodeBase58 is the inverse of EncodeBase58.
func DecodeBase58(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty base58 string")
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		idx := base58Index(s[i])
		if idx < 0 {
			return 0, fmt.Errorf("invalid base58 character %q", s[i])
		}
		n = n*58 + uint64(idx)
	}
	return n, nil
}

func base58Index(c byte) int {
	for i := 0; i < len(base58Alphabet); i++ {
		if base58Alphabet[i] == c {
			return i
		}
	}
	return -1
}
