package xinput

import (
	"github.com/BurntSushi/xgb"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/pkg/errors"
)

// Server is the part of the XKEYBOARD extension the keyboard talks to.
type Server interface {
	UseExtension(major, minor uint16) (*xkb.UseExtensionReply, error)
	GetDeviceInfo(device xkb.DeviceSpec) (*xkb.GetDeviceInfoReply, error)
	GetMap(device xkb.DeviceSpec, parts uint16) (*xkb.GetMapReply, error)
	GetState(device xkb.DeviceSpec) (*xkb.GetStateReply, error)
	SelectEvents(device xkb.DeviceSpec, events, mapParts uint16) error
	FirstEvent() uint8
}

//----------

// ConnServer implements Server over an xgb connection.
type ConnServer struct {
	conn       *xgb.Conn
	firstEvent uint8
}

func NewConnServer(conn *xgb.Conn) (*ConnServer, error) {
	fe, err := xkb.Init(conn)
	if err != nil {
		return nil, errors.Wrap(err, "xkb init")
	}
	return &ConnServer{conn: conn, firstEvent: fe}, nil
}

func (s *ConnServer) FirstEvent() uint8 {
	return s.firstEvent
}

func (s *ConnServer) UseExtension(major, minor uint16) (*xkb.UseExtensionReply, error) {
	return xkb.UseExtension(s.conn, major, minor).Reply()
}

func (s *ConnServer) GetDeviceInfo(device xkb.DeviceSpec) (*xkb.GetDeviceInfoReply, error) {
	return xkb.GetDeviceInfo(s.conn, device).Reply()
}

func (s *ConnServer) GetMap(device xkb.DeviceSpec, parts uint16) (*xkb.GetMapReply, error) {
	return xkb.GetMap(s.conn, device, parts).Reply()
}

func (s *ConnServer) GetState(device xkb.DeviceSpec) (*xkb.GetStateReply, error) {
	return xkb.GetState(s.conn, device).Reply()
}

func (s *ConnServer) SelectEvents(device xkb.DeviceSpec, events, mapParts uint16) error {
	return xkb.SelectEventsChecked(s.conn, device, events, mapParts).Check()
}
