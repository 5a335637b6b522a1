package reconcile

import "strings"

// KeyKind names the identifier an IdentityKey was built from.
type KeyKind string

const (
	KeyISIN   KeyKind = "ISIN"
	KeyFolio  KeyKind = "FOLIO"
	KeySymbol KeyKind = "SYMBOL"
)

// IdentityKey identifies the same instrument across golden and system holdings.
type IdentityKey struct {
	Kind  KeyKind
	Value string
}

// String renders the key as "KIND:VALUE", the form stored on events.
func (k IdentityKey) String() string {
	if k.Kind == "" {
		return ""
	}
	return string(k.Kind) + ":" + k.Value
}

// IsZero reports whether the key is empty.
func (k IdentityKey) IsZero() bool {
	return k.Kind == ""
}

// KeyFor derives the identity key, preferring ISIN, then folio number, then symbol.
// It returns false when all three are blank.
func KeyFor(isin, folio, symbol string) (IdentityKey, bool) {
	if v := strings.ToUpper(strings.TrimSpace(isin)); v != "" {
		return IdentityKey{Kind: KeyISIN, Value: v}, true
	}
	if v := strings.TrimSpace(folio); v != "" {
		return IdentityKey{Kind: KeyFolio, Value: v}, true
	}
	if v := strings.ToUpper(strings.TrimSpace(symbol)); v != "" {
		return IdentityKey{Kind: KeySymbol, Value: v}, true
	}
	return IdentityKey{}, false
}
