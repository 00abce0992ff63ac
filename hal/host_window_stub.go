//go:build !cgo

package hal

func RunWindow(_ string, _, _ int, _ RenderFunc) error {
	return ErrNoWindow
}
