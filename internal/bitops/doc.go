// Package bitops provides the bit-level kernels used by the grid backends.
//
// # Supported Platforms
//
//   - x86-64: BMI2 (PEXT, PDEP) and BMI1 (TZCNT, BLSR)
//   - everything else: portable Go
//
// Runtime CPU feature detection selects the implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// BITGRID_BITOPS=generic in the environment.
//
// # Operations
//
//   - Extract/deposit: Pext64, Pdep64, Pext128, Pdep128, PextWords, PdepWords
//   - Scanning: PopLSB64, NextSet
//   - Multi-word: ShlWords, ShrWords, SubWords, And/Or/Xor/AndNot/Popcount words
//
// Every accelerated kernel produces the same bits as its generic twin.
package bitops
