package domain

// Purse is a multi-denomination currency holding keyed by denomination.
type Purse map[string]int

// Clone returns a copy of the purse.
func (p Purse) Clone() Purse {
	out := make(Purse, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Value returns the total worth of the purse in copper.
func (p Purse) Value() int {
	total := 0
	for denom, amount := range p {
		if amount <= 0 {
			continue
		}
		total += amount * DenominationValues[denom]
	}
	return total
}

// Equal reports whether two purses hold the same amounts, treating missing and zero alike.
func (p Purse) Equal(other Purse) bool {
	for _, denom := range DenominationsDescending {
		if p[denom] != other[denom] {
			return false
		}
	}
	return true
}

// Sanitized drops unknown denominations and negative amounts.
func (p Purse) Sanitized() Purse {
	out := make(Purse, len(p))
	for denom, amount := range p {
		if _, known := DenominationValues[denom]; !known || amount < 0 {
			continue
		}
		out[denom] = amount
	}
	return out
}
