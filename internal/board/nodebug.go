//go:build !debug

package board

// assertInvariants is a no-op in release builds; see debug.go.
func (b *Board) assertInvariants() {}
