package value_objects

import (
	"fmt"
	"strings"
)

type ThemeKind string

const (
	KindCatalog ThemeKind = "catalog"
	KindCustom  ThemeKind = "custom"
)

// ThemeRef identifies the theme an installation points at, across both the
// shared catalog and per-merchant custom themes. Serialized as "kind:sid".
type ThemeRef struct {
	kind ThemeKind
	sid  string
}

func NewCatalogRef(sid string) (ThemeRef, error) {
	return newRef(KindCatalog, sid)
}

func NewCustomRef(sid string) (ThemeRef, error) {
	return newRef(KindCustom, sid)
}

func newRef(kind ThemeKind, sid string) (ThemeRef, error) {
	if len(sid) == 0 {
		return ThemeRef{}, fmt.Errorf("theme SID is required")
	}
	return ThemeRef{kind: kind, sid: sid}, nil
}

func ParseThemeRef(s string) (ThemeRef, error) {
	kind, sid, ok := strings.Cut(s, ":")
	if !ok {
		return ThemeRef{}, fmt.Errorf("invalid theme ref: %s", s)
	}
	switch ThemeKind(kind) {
	case KindCatalog:
		return NewCatalogRef(sid)
	case KindCustom:
		return NewCustomRef(sid)
	default:
		return ThemeRef{}, fmt.Errorf("invalid theme ref kind: %s", kind)
	}
}

func (r ThemeRef) Kind() ThemeKind { return r.kind }
func (r ThemeRef) SID() string     { return r.sid }
func (r ThemeRef) IsCustom() bool  { return r.kind == KindCustom }
func (r ThemeRef) IsZero() bool    { return r.sid == "" }

func (r ThemeRef) String() string {
	return fmt.Sprintf("%s:%s", r.kind, r.sid)
}

// InstallDirName is the directory an installation of this theme occupies
// under a store's themes directory. Custom themes are namespaced to avoid
// colliding with catalog theme SIDs.
func (r ThemeRef) InstallDirName() string {
	if r.kind == KindCustom {
		return "custom-" + r.sid
	}
	return r.sid
}
