//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyEnter, KeyEnter},
	}
	for _, kk := range keys {
		if inpututil.IsKeyJustPressed(kk.key) {
			k.push(KeyEvent{Code: kk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(kk.key) {
			k.push(KeyEvent{Code: kk.code, Press: false})
		}
	}
}
