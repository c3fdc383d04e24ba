//go:build amd64 && !noasm

package bitops

// init sets the kernel pointers based on the active ISA.
// This runs after capability_amd64.go init() has detected CPU features
// and selected the active ISA.
func init() {
	if activeISA == BMI2 {
		setBMI2Kernels()
	}
}

func setBMI2Kernels() {
	kernelPext64 = pextBMI2
	kernelPdep64 = pdepBMI2
	kernelPopLSB64 = popLSBBMI1
	kernelPext128 = pext128BMI2
	kernelPdep128 = pdep128BMI2
	kernelPextWords = pextWordsBMI2
	kernelPdepWords = pdepWordsBMI2
}

func pext128BMI2(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	return pext128With(pextBMI2, lo, hi, mlo, mhi)
}

func pdep128BMI2(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	return pdep128With(pdepBMI2, lo, hi, mlo, mhi)
}

func pextWordsBMI2(dst, src, mask []uint64) {
	pextWordsWith(pextBMI2, dst, src, mask)
}

func pdepWordsBMI2(dst, src, mask []uint64) {
	pdepWordsWith(pdepBMI2, dst, src, mask)
}
