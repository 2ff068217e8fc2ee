//go:build !windows || xproto

package driver

import "github.com/jmigpin/xkeyboard/driver/xdriver"

func NewWindow(opt *Options) (Window, error) {
	return xdriver.NewWindow(&xdriver.Options{
		Display:  opt.Display,
		Name:     opt.Name,
		Keyboard: opt.Keyboard,
		Logger:   opt.Logger,
	})
}

var _ Window = (*xdriver.Window)(nil)
