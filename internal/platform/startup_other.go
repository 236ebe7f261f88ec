//go:build !windows

package platform

func Startup() (func(), error) {
	return func() {}, nil
}
