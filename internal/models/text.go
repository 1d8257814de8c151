package models

import (
	"encoding/json"
	"errors"
)

// BilingualText carries parallel Portuguese and English strings. Both keys are
// mandatory; an empty string is a valid value.
type BilingualText struct {
	PT string `json:"pt" bson:"pt"`
	EN string `json:"en" bson:"en"`
}

var (
	ErrMissingPT = errors.New("bilingual text: pt is required")
	ErrMissingEN = errors.New("bilingual text: en is required")
)

func (t *BilingualText) UnmarshalJSON(data []byte) error {
	var raw struct {
		PT *string `json:"pt"`
		EN *string `json:"en"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.PT == nil {
		return ErrMissingPT
	}
	if raw.EN == nil {
		return ErrMissingEN
	}
	t.PT = *raw.PT
	t.EN = *raw.EN
	return nil
}

func Text(pt, en string) BilingualText {
	return BilingualText{PT: pt, EN: en}
}
