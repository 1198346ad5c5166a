// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int32 {
	return int32(min) + int32(Intn(max-min))
}

// FloatBetween generates a random decimal number between min and max rounded to 2 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

// String generates a random string of length n.
func String(n int) string {
	return pick(alphabet, n)
}

// Digits generates a random numeric string of length n.
func Digits(n int) string {
	return pick(digits, n)
}

func pick(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		c := set[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random client name.
func Name() string {
	return String(8)
}

// AccountNumber generates a random numeric account number.
func AccountNumber() string {
	return Digits(10)
}

// Identification generates a random client identification number.
func Identification() string {
	return Digits(10)
}

// Phone generates a random phone number.
func Phone() string {
	return Digits(9)
}

// MoneyBetween generates a random amount of money between min and max rounded to 2 decimals.
func MoneyBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// AccountType generates a random account type.
func AccountType() domain.AccountType {
	types := []domain.AccountType{domain.AccountTypeSavings, domain.AccountTypeChecking}
	return types[Intn(len(types))]
}
