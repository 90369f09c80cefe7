package codec

// Variant is one seed's encoding of a value together with its round-trip check.
type Variant struct {
	Seed    int    `json:"seed"`
	Encoded string `json:"encoded"`
	Decoded uint64 `json:"decoded"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// Verify encodes value under every seed and decodes each result again.
// A variant is OK when its decoded value equals value.
func (c *Codec) Verify(value uint64) ([]Variant, error) {
	all, err := c.EncodeAll(value)
	if err != nil {
		return nil, err
	}

	variants := make([]Variant, len(all))
	for seed, encoded := range all {
		v := Variant{Seed: seed, Encoded: encoded}
		decoded, err := c.Decode(encoded)
		if err != nil {
			v.Error = err.Error()
		} else {
			v.Decoded = decoded
			v.OK = decoded == value
		}
		variants[seed] = v
	}
	return variants, nil
}

// AllOK reports whether every variant round-tripped.
func AllOK(variants []Variant) bool {
	for _, v := range variants {
		if !v.OK {
			return false
		}
	}
	return true
}
