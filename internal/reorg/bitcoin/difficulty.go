package bitcoin

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// powLimitBits is the compact-encoded maximum target per network. Difficulty
// is the ratio of this target to a block's actual target.
var powLimitBits = map[model.Network]uint32{
	model.Mainnet:  0x1d00ffff,
	model.Testnet:  0x1d00ffff,
	model.Testnet4: 0x1d00ffff,
	model.Regtest:  0x207fffff,
}

// PowLimitBits returns the compact pow limit for a network.
func PowLimitBits(network model.Network) (uint32, error) {
	bits, ok := powLimitBits[network]
	if !ok {
		return 0, fmt.Errorf("unknown network %q", network)
	}
	return bits, nil
}

func parseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

// bitsToDifficulty converts a header's compact target bits to difficulty
// relative to the network's pow limit.
func bitsToDifficulty(bits, limitBits uint32) float64 {
	return compactToTarget(limitBits) / compactToTarget(bits)
}

// compactToTarget expands compact bits (mantissa in the low 24 bits, base-256
// exponent in the high byte) to the target value as a float.
func compactToTarget(bits uint32) float64 {
	mantissa := float64(bits & 0xffffff)
	exponent := int(bits>>24) & 0xff
	return mantissa * math.Pow(256, float64(exponent-3))
}
