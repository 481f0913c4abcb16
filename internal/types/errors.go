package types

import "fmt"

func errInvalidSquare(alg string) error {
	return fmt.Errorf("invalid square: %q", alg)
}
