// Package phone приводит телефонные номера к каноническому международному виду (+<код страны><номер>).
package phone

import (
	"errors"
	"strings"
)

// ErrEmptyNumber возвращается, когда после очистки в номере не осталось цифр
var ErrEmptyNumber = errors.New("phone: number has no digits")

const internationalPrefix = "00"

// Normalize удаляет все нецифровые символы и добавляет код страны.
// Если цифры уже начинаются с кода страны, добавляется только "+".
// Иначе ведущие нули отбрасываются и номер дополняется "+<countryCode>".
//
// Примеры для countryCode = "39":
//
//	"3331234567"       -> "+393331234567"
//	"+39 333 1234567"  -> "+393331234567"
//	"00393331234567"   -> "+393331234567"
func Normalize(raw string, countryCode string) (string, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return "", ErrEmptyNumber
	}

	if strings.HasPrefix(digits, countryCode) {
		return "+" + digits, nil
	}

	// Международный префикс 00 перед кодом страны
	if strings.HasPrefix(digits, internationalPrefix+countryCode) {
		return "+" + strings.TrimPrefix(digits, internationalPrefix), nil
	}

	national := strings.TrimLeft(digits, "0")
	if national == "" {
		return "", ErrEmptyNumber
	}

	return "+" + countryCode + national, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
