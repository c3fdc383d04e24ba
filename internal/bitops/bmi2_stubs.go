//go:build !noasm && amd64

package bitops

//go:noescape
func pextBMI2(x, mask uint64) uint64

//go:noescape
func pdepBMI2(x, mask uint64) uint64

//go:noescape
func popLSBBMI1(x uint64) (int, uint64)
