//go:build !cgo

package hal

func RunWindow(_ WindowConfig, _ NewApp) error {
	return ErrNoCGO
}
