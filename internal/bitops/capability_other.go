//go:build !amd64 || noasm

package bitops

func init() {
	initCapabilities()
}
