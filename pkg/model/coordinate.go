package model

import (
	"bytes"
	"strconv"
)

// Coordinate accepts both numeric and quoted numeric JSON values; the upstream
// directory has served coordinates in both forms. Null and empty values stay unset.
type Coordinate struct {
	value float64
	valid bool
}

func NewCoordinate(value float64) Coordinate {
	return Coordinate{value: value, valid: true}
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	if len(raw) == 0 || string(raw) == "null" {
		*c = Coordinate{}

		return nil
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return err
	}

	*c = NewCoordinate(value)

	return nil
}

func (c Coordinate) Float64() *float64 {
	if !c.valid {
		return nil
	}

	value := c.value

	return &value
}
