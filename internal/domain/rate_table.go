package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// RateTable holds the rates of one base currency in the order the provider listed them.
type RateTable struct {
	Base  string
	codes []string
	rates map[string]float64
}

func NewRateTable(base string) *RateTable {
	return &RateTable{Base: base, rates: make(map[string]float64)}
}

// Put adds or overwrites a rate. A repeated code keeps its first position.
func (t *RateTable) Put(code string, rate float64) {
	if t.rates == nil {
		t.rates = make(map[string]float64)
	}
	if _, ok := t.rates[code]; !ok {
		t.codes = append(t.codes, code)
	}
	t.rates[code] = rate
}

func (t *RateTable) Rate(code string) (float64, bool) {
	v, ok := t.rates[code]
	return v, ok
}

// Codes returns a copy of the codes in provider order.
func (t *RateTable) Codes() []string {
	return slices.Clone(t.codes)
}

func (t *RateTable) Len() int { return len(t.codes) }

// UnmarshalJSON decodes a JSON object of code -> rate keeping the key order.
func (t *RateTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("rates must be a JSON object")
	}

	table := NewRateTable(t.Base)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		code, _ := keyTok.(string)

		var rate float64
		if err = dec.Decode(&rate); err != nil {
			return fmt.Errorf("invalid rate for %q: %w", code, err)
		}
		if rate <= 0 {
			return fmt.Errorf("invalid rate for %q: %v", code, rate)
		}
		table.Put(code, rate)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}

	*t = *table
	return nil
}
