package binformat

import "hash/crc32"

// checksumTable is the standard reflected CRC-32/IEEE 802.3 polynomial
// table (0xEDB88320), the same table hash/crc32.IEEE uses internally.
// Constructing it explicitly keeps the algorithm's identity (reflected
// input/output, initial 0xFFFFFFFF, final XOR 0xFFFFFFFF) visible at the
// call site instead of hidden behind a bare library call.
var checksumTable = crc32.MakeTable(crc32.IEEE)

// CRC32 computes the CRC-32/IEEE 802.3 checksum of data: reflected
// polynomial 0xEDB88320, initial register 0xFFFFFFFF, final XOR
// 0xFFFFFFFF. It covers only the metadata region per spec invariant I6.
func CRC32(data []byte) uint32 {
	return crc32.Checksum(data, checksumTable)
}
