package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

var atomType = reflect.TypeOf(xproto.Atom(0))

// LoadAtoms interns the atoms named by the fields of a struct. Tags can be
// used with: `loadAtoms:"atomname"`, otherwise the field name is the atom
// name. "st" should be a pointer to a struct with xproto.Atom fields.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	names, err := AtomNames(st)
	if err != nil {
		return err
	}

	// request all before waiting for any reply
	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
	}

	val := reflect.ValueOf(st).Elem()
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return errors.Wrapf(err, "atom %v", names[i])
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

// AtomNames returns the atom names of the fields of st, in field order.
func AtomNames(st any) ([]string, error) {
	v := reflect.ValueOf(st)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("atoms: expecting pointer to struct: %T", st)
	}
	typ := v.Elem().Type()
	names := make([]string, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.Type != atomType {
			return nil, errors.Errorf("atoms: field %v is not an atom", sf.Name)
		}
		names[i] = sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			names[i] = tag
		}
	}
	return names, nil
}

func GetAtomName(conn *xgb.Conn, atom xproto.Atom) (string, error) {
	r, err := xproto.GetAtomName(conn, atom).Reply()
	if err != nil {
		return "", err
	}
	return r.Name, nil
}
