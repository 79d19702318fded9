//go:build linux

package cpu

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var ErrNoCPU = errors.New("no cpu given")

// PinTo restricts the calling thread to the given CPUs. Callers should hold
// runtime.LockOSThread for the pin to follow their goroutine.
func PinTo(cpus ...int) error {
	if len(cpus) == 0 {
		return ErrNoCPU
	}

	want := unix.CPUSet{}
	for _, cpu := range cpus {
		if cpu < 0 {
			return fmt.Errorf("invalid cpu %d", cpu)
		}
		want.Set(cpu)
	}

	if err := unix.SchedSetaffinity(0, &want); err != nil {
		return fmt.Errorf("sched_setaffinity %v: %w", cpus, err)
	}

	// The kernel silently drops offline CPUs from the mask.
	got := unix.CPUSet{}
	if err := unix.SchedGetaffinity(0, &got); err != nil {
		return fmt.Errorf("sched_getaffinity: %w", err)
	}
	if got != want {
		return fmt.Errorf("could not pin to CPUs %v, affinity has %d cpus", cpus, got.Count())
	}
	return nil
}
