package utils

import (
	"fmt"
	"math"
)

// CheckAddOverflow reports whether a+b would overflow a uint64.
func CheckAddOverflow(a, b uint64) error {
	if a > math.MaxUint64-b {
		return fmt.Errorf("addition overflow: %d + %d exceeds uint64 max", a, b)
	}
	return nil
}

// SafeAdd adds two uint64 values, returning an error instead of
// wrapping around on overflow. The encoder uses this while accumulating
// entry offsets; the decoder uses it to add the trailer size to
// metadataEnd before comparing the sum with the archive length.
func SafeAdd(a, b uint64) (uint64, error) {
	if err := CheckAddOverflow(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// ValidateCount checks a decoded count against a sane upper bound,
// guarding against pathological allocation driven by attacker-controlled
// input (a malformed fileCount asking for billions of entries).
func ValidateCount(count, maxCount uint32, description string) error {
	if count > maxCount {
		return fmt.Errorf("%s: count %d exceeds maximum %d", description, count, maxCount)
	}
	return nil
}

// Common size limits used while validating metadata.
const (
	// MaxKeyLength is the maximum UTF-8 byte length of an attribute key
	// (spec: attribute keys are limited to 256 bytes).
	MaxKeyLength = 256

	// MaxAttributeDepth is the maximum nesting depth of an attributes
	// map, counting the root map as depth 1.
	MaxAttributeDepth = 3
)

// ValidateBufferSize validates that a size value is within reasonable
// limits, used for bounding decoded metadata payload sizes.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}
	return nil
}
