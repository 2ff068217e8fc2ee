//go:build windows && !xproto

package driver

import "github.com/pkg/errors"

func NewWindow(opt *Options) (Window, error) {
	return nil, errors.New("no native windows keyboard input, build with -tags xproto to use an x server")
}
