package HashTbl

// isPrime tests 2 and 3 directly, then trial-divides by the 6k±1 candidates up
// to √n. Numbers below 2 are rejected, so nextPrime never settles on 0 or 1.
func isPrime(n uint) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 || n%3 == 0 {
		return false
	}
	for d := uint(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n uint) uint {
	for !isPrime(n) {
		n++
	}
	return n
}
