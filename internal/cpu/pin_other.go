//go:build !linux

package cpu

import "errors"

var ErrUnsupported = errors.New("cpu pinning is only supported on linux")

func PinTo(cpus ...int) error {
	return ErrUnsupported
}
