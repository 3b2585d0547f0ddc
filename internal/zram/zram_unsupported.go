//go:build !linux

package zram

// UnsupportedReader is used where the kernel has no zram driver. It never finds
// any devices.
type UnsupportedReader struct{}

// newPlatformReader creates a reader that discovers no devices
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// ListDevices always returns an empty set
func (r *UnsupportedReader) ListDevices() ([]Device, error) {
	return nil, nil
}

// ReadCounter always returns 0
func (r *UnsupportedReader) ReadCounter(device Device, name CounterName) (uint64, error) {
	return 0, nil
}

// SumCounter always returns 0
func (r *UnsupportedReader) SumCounter(name CounterName) (uint64, error) {
	return 0, nil
}
