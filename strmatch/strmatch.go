// Package strmatch provides string-matching algorithms; currently the
// Rabin-Karp rolling-hash matcher.
//
// Rabin-Karp compares a single hash of the pattern against a rolling hash
// of every pattern-length window of the text, verifying byte-for-byte only
// on hash hits. With the radix/modulus pair below, the expected running
// time is O(n + m) for a text of n bytes and a pattern of m bytes, with
// O(n·m) the (rare) worst case when hashes keep colliding.
//
// The matcher works on raw bytes, so multi-byte UTF-8 sequences match
// exactly like any other byte run — the radix of 2048 covers all one- and
// two-byte UTF-8 code units as distinct digits.
package strmatch

const (
	// radix is the alphabet size used as the rolling-hash base; 2048
	// accommodates every one- and two-byte UTF-8 character.
	radix = 2048

	// modulus keeps radix*modulus comfortably within one machine word.
	modulus = 497
)

// CountRK returns the number of occurrences (including overlapping ones)
// of pattern in text, using the Rabin-Karp rolling hash. An empty pattern
// or a pattern longer than the text yields 0.
func CountRK(text, pattern string) int {
	return countRK(text, pattern, radix, modulus)
}

// countRK is the parameterized core: d is the radix, q the hash modulus.
func countRK(text, pattern string, d, q int) int {
	n := len(text)
	m := len(pattern)
	if m == 0 || m > n {
		return 0
	}

	h := modExp(d, m-1, q) // weight of a window's highest-order byte
	p := 0                 // hash of the pattern
	t := 0                 // rolling hash of the current window

	for i := 0; i < m; i++ {
		p = (d*p + int(pattern[i])) % q
		t = (d*t + int(text[i])) % q
	}

	matches := 0
	for s := 0; s <= n-m; s++ {
		if p == t && text[s:s+m] == pattern {
			matches++
		}

		// Roll the window: drop byte s, admit byte s+m.
		if s < n-m {
			t = (d*(t-h*int(text[s])) + int(text[s+m])) % q
			if t < 0 {
				t += q
			}
		}
	}

	return matches
}

// modExp computes (base^exp) mod m by binary exponentiation, O(log exp).
func modExp(base, exp, m int) int {
	if m == 1 {
		return 0
	}

	ret := 1
	base %= m

	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			ret = (ret * base) % m
		}
		base = (base * base) % m
	}

	return ret
}
