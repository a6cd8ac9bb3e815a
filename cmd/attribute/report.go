package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/attribution/internal/config"
	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/matrix"
	"github.com/katalvlaran/attribution/shapley"
	"gopkg.in/yaml.v3"
)

// Report is the rendered result of a fit or score command.
type Report struct {
	Users      int `json:"users" yaml:"users"`
	MaxJourney int `json:"max_journey" yaml:"max_journey"`
	Channels   int `json:"channels" yaml:"channels"`

	Unordered []ChannelCredit `json:"unordered,omitempty" yaml:"unordered,omitempty"`
	Ordered   *OrderedCredit  `json:"ordered,omitempty" yaml:"ordered,omitempty"`

	Mode   string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Scores []float64 `json:"scores,omitempty" yaml:"scores,omitempty"`
}

// ChannelCredit is one channel's order-agnostic credit. Reach counts the
// users whose journey touched the channel.
type ChannelCredit struct {
	Channel    int     `json:"channel" yaml:"channel"`
	Reach      int     `json:"reach" yaml:"reach"`
	Value      float64 `json:"value" yaml:"value"`
	Proportion float64 `json:"proportion" yaml:"proportion"`
}

// OrderedCredit holds position × channel matrices, one row per position.
type OrderedCredit struct {
	Values      [][]float64 `json:"values" yaml:"values"`
	Proportions [][]float64 `json:"proportions" yaml:"proportions"`
}

func newReport(e *shapley.Engine) *Report {
	return &Report{
		Users:      e.Users(),
		MaxJourney: e.MaxJourney(),
		Channels:   e.NumChannels() + 1,
	}
}

// addUnordered copies the Fit results and per-channel reach into the report.
func (r *Report) addUnordered(e *shapley.Engine, t *journey.Table) error {
	vals, err := e.ShapleyValues()
	if err != nil {
		return err
	}
	props, err := e.ShapleyProportions()
	if err != nil {
		return err
	}
	r.Unordered = make([]ChannelCredit, len(vals))
	for j := range vals {
		r.Unordered[j] = ChannelCredit{Channel: j, Value: vals[j], Proportion: props[j]}
	}
	for u := 0; u < t.Users(); u++ {
		for j := range r.Unordered {
			if t.Contains(u, journey.Channel(j)) {
				r.Unordered[j].Reach++
			}
		}
	}

	return nil
}

// addOrdered copies the FitOrdered results into the report.
func (r *Report) addOrdered(e *shapley.Engine) error {
	vals, err := e.OrderedValues()
	if err != nil {
		return err
	}
	props, err := e.OrderedProportions()
	if err != nil {
		return err
	}
	r.Ordered = &OrderedCredit{Values: rows(vals), Proportions: rows(props)}

	return nil
}

// rows unpacks m into one slice per position.
func rows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}

// write renders the report in the configured format.
func (r *Report) write(w io.Writer, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
