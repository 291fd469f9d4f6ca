package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil values stored
// in an interface (a nil *T or a nil func assigned to an interface type).
func Interface(value any) bool {
	if value == nil {
		return true
	}

	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
