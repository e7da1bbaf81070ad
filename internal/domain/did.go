package domain

import (
	"fmt"
	"strings"
)

// DID represents a Decentralized Identifier (W3C standard)
type DID string

// NewDID creates a did:pkh identifier for a wallet address on the given network
// Reference: https://github.com/w3c-ccg/did-pkh
func NewDID(address string, network Network) DID {
	return DID(fmt.Sprintf("did:pkh:%s:%s", strings.ToLower(string(network.Chain())), strings.ToLower(address)))
}

// String returns the string representation of the DID
func (d DID) String() string {
	return string(d)
}
