package starkgen

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// AddressBits is the width of the storage address domain.
const AddressBits = 250

// HashFunc derives a storage address from a storage variable name.
// Results must fit in AddressBits bits.
type HashFunc func(data []byte) *uint256.Int

// StarknetKeccak returns the Keccak-256 hash of data truncated to
// AddressBits bits. This is the address derivation used for storage
// variables.
func StarknetKeccak(data []byte) *uint256.Int {
	h := crypto.Keccak256(data)
	// Keep the low 250 bits: clear the top 6 bits of the first byte.
	h[0] &= 0x03
	return new(uint256.Int).SetBytes(h)
}

// StorageAddressLiteral formats a storage address the way generated
// code spells it: 0x followed by 64 lowercase hex digits, zero padded.
func StorageAddressLiteral(addr *uint256.Int) string {
	b := addr.Bytes32()
	return "0x" + hex.EncodeToString(b[:])
}
