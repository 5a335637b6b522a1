package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name   string
		isin   string
		folio  string
		symbol string
		want   string
		ok     bool
	}{
		{"isin wins", " ine002a01018 ", "F-1", "RELIANCE", "ISIN:INE002A01018", true},
		{"folio when isin blank", "  ", " 1234/56 ", "HDFC", "FOLIO:1234/56", true},
		{"symbol last", "", "", " tcs ", "SYMBOL:TCS", true},
		{"folio keeps case", "", "ab12", "", "FOLIO:ab12", true},
		{"nothing", " ", "", "\t", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFor(tt.isin, tt.folio, tt.symbol)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, key.String())
			assert.Equal(t, !tt.ok, key.IsZero())
		})
	}
}
