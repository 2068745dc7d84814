// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"pbbarcode/core/barcode"
	"pbbarcode/pkg/api"
)

// ToAPICall converts a domain Call to the stable wire schema (v1).
func ToAPICall(c barcode.Call) api.CallV1 {
	v := api.CallV1{
		ReadID:       c.ReadID,
		AdapterCount: c.AdapterCount,
		BestIndex:    c.Best.Index,
		BestLabel:    c.Best.Label,
		BestScore:    c.Best.Score,
	}
	if s := c.Second; s != nil {
		v.SecondIndex = lo.ToPtr(s.Index)
		v.SecondLabel = s.Label
		v.SecondScore = lo.ToPtr(s.Score)
	}
	return v
}

// WriteJSON writes a single JSON array of v1 calls (pretty-indented).
func WriteJSON(w io.Writer, list []barcode.Call) error {
	out := lo.Map(list, func(c barcode.Call, _ int) api.CallV1 { return ToAPICall(c) })
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
