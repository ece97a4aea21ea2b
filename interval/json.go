package interval

import (
	"encoding/json"
	"fmt"
)

// marshalPair encodes two floats as a JSON two-element array.
func marshalPair(lo, hi float64) ([]byte, error) {
	return json.Marshal([2]float64{lo, hi})
}

// unmarshalPair decodes a JSON two-element array into (lo, hi).
func unmarshalPair(data []byte) (float64, float64, error) {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return 0, 0, fmt.Errorf("interval: unmarshal: %w", err)
	}

	return pair[0], pair[1], nil
}
