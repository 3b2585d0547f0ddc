//go:build linux

package zram

// BlockPath is where the kernel lists block devices.
const BlockPath = "/sys/block"

// newPlatformReader creates a sysfs backed zram reader
func newPlatformReader() Reader {
	return NewSysfsReader(BlockPath)
}
