package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux SupportedOS = "linux"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS ships a zram driver
func IsSupported() bool {
	return isSupported(GetOS())
}

func isSupported(os SupportedOS) bool {
	return os == Linux
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux", runtime.GOOS)
	}
	return nil
}
