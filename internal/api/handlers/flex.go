package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNotStringOrNumber = errors.New("value must be a string or a number")
	ErrNotInteger        = errors.New("value must be an integer or a numeric string")
)

// FlexString строка, которую клиенты присылают то строкой, то числом ("123" и 123)
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return ErrNotStringOrNumber
	}
	*s = FlexString(num.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt целое число, допускающее строковую запись ("5" и 5)
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return ErrNotInteger
	}
	*n = FlexInt(v)
	return nil
}
