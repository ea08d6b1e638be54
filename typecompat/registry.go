package typecompat

import (
	"fmt"
	"io"
	"net"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"
)

var known = map[string]reflect.Type{
	"bool":       reflect.TypeFor[bool](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"uintptr":    reflect.TypeFor[uintptr](),
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"string":     reflect.TypeFor[string](),
	"any":        reflect.TypeFor[any](),
	"error":      reflect.TypeFor[error](),

	"fmt.Stringer":  reflect.TypeFor[fmt.Stringer](),
	"io.Reader":     reflect.TypeFor[io.Reader](),
	"io.Writer":     reflect.TypeFor[io.Writer](),
	"io.Closer":     reflect.TypeFor[io.Closer](),
	"io.ReadWriter": reflect.TypeFor[io.ReadWriter](),
	"io.ReadCloser": reflect.TypeFor[io.ReadCloser](),
	"io.Seeker":     reflect.TypeFor[io.Seeker](),
	"os.File":       reflect.TypeFor[os.File](),
	"net.Conn":      reflect.TypeFor[net.Conn](),
	"net.IP":        reflect.TypeFor[net.IP](),
	"time.Duration": reflect.TypeFor[time.Duration](),
	"time.Time":     reflect.TypeFor[time.Time](),
}

// Lookup resolves a Go type spelling such as "int", "io.Reader", "*os.File" or
// "[]string" against the registry of well-known types.
func Lookup(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	switch {
	case strings.HasPrefix(name, "*"):
		elem, err := Lookup(name[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(name, "[]"):
		elem, err := Lookup(name[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case name == "interface{}":
		return known["any"], nil
	}
	if t, ok := known[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

// Names returns the registry names in sorted order.
func Names() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
