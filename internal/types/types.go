package types

import (
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty returns nil for an empty string, otherwise a pointer to it
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CloneStringPtr returns a new pointer holding the same value, or nil
func CloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// IsEthereumAddress checks if a string is a 0x-prefixed, 40 hex digit address
func IsEthereumAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// ChecksumAddress returns the EIP-55 checksummed form of an address.
// Non-address input is returned untouched.
func ChecksumAddress(s string) string {
	if !IsEthereumAddress(s) {
		return s
	}
	return common.HexToAddress(s).Hex()
}

// AddressKey returns the case-folded form used to compare wallet addresses
func AddressKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameAddress reports whether two wallet addresses are equal ignoring case
func SameAddress(a, b string) bool {
	return AddressKey(a) == AddressKey(b)
}

// IsValidURL checks if a string is an absolute URL with a scheme and host
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
