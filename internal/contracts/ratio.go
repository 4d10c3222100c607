package contracts

import "encoding/json"

// Ratio is a percentage that may be undefined. A zero cumulative cost makes
// the profit ratio undefined; that is reported as an explicit null, never a
// division result.
type Ratio struct {
	Value float64
	Valid bool
}

// DefinedRatio returns a valid ratio
func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Valid: true}
}

// UndefinedRatio returns the null sentinel
func UndefinedRatio() Ratio {
	return Ratio{}
}

// MarshalJSON encodes an undefined ratio as JSON null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes JSON null as the undefined sentinel
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}

	if err := json.Unmarshal(data, &r.Value); err != nil {
		return err
	}
	r.Valid = true
	return nil
}
