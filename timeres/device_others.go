//go:build !windows
// +build !windows

package timeres

var _ Device = (*unsupportedDevice)(nil)

type unsupportedDevice struct{}

func NewDevice() Device {
	return unsupportedDevice{}
}

func (unsupportedDevice) Capabilities() (Capabilities, error) {
	return Capabilities{}, ErrUnsupportedPlatform
}

func (unsupportedDevice) BeginPeriod(uint32) error {
	return ErrUnsupportedPlatform
}

func (unsupportedDevice) EndPeriod(uint32) error {
	return ErrUnsupportedPlatform
}
