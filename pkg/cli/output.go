package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wildfunctions/mathplot/pkg/curve"
)

// SampleReport describes one sampling run.
type SampleReport struct {
	Expression string        `json:"expression"`
	Notation   string        `json:"notation"`
	Derivative bool          `json:"derivative,omitempty"`
	Polar      bool          `json:"polar,omitempty"`
	Points     []curve.Point `json:"points"`
}

// WriteTextSample writes points as tab-separated x/y lines.
func WriteTextSample(w io.Writer, r SampleReport) {
	for _, p := range r.Points {
		fmt.Fprintf(w, "%g\t%g\n", p.X, p.Y)
	}
}

// WriteJSONSample writes the full report as indented JSON. Encoding fails
// if a sampled point carries a non-finite value, which JSON cannot
// represent.
func WriteJSONSample(w io.Writer, r SampleReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
