// Package entity contains the domain records of the recruiting platform.
//
// Entities carry an immutable identifier plus a field snapshot. Optional
// fields are tracked by presence: a field that was never supplied produces
// no key in State() and is never written to storage as an explicit NULL.
// Fields can be overwritten through setters but never cleared.
package entity

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyF64(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func derefF64(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func putStr(s map[string]any, key string, p *string) {
	if p != nil {
		s[key] = *p
	}
}

func putF64(s map[string]any, key string, p *float64) {
	if p != nil {
		s[key] = *p
	}
}

// Str is a convenience for building drafts with optional string fields.
func Str(v string) *string { return &v }

// F64 is a convenience for building drafts with optional float fields.
func F64(v float64) *float64 { return &v }
