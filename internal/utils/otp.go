package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateOTPCode returns a uniform random 6-digit numeric code in
// [100000, 999999].
func GenerateOTPCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		panic("otp: failed to read random source: " + err.Error())
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
