package model

import (
	"strconv"
	"strings"

	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// NormalizeValue converts raw field input into the value stored on a
// draft, per the field kind. Unparseable input is kept as-is; the
// validator reports it on submit instead of rejecting the edit.
func NormalizeValue(kind types.FieldKind, raw string) any {
	switch kind {
	case types.FieldKindCurrency:
		return FormatCurrency(raw)
	case types.FieldKindNumber:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return ""
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
		return raw
	case types.FieldKindCheckbox:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1", "on", "yes":
			return true
		default:
			return false
		}
	default:
		return raw
	}
}

// FormatCurrency strips all non-digit characters and groups the digits
// with the South-Asian convention: groups of two after the first three
// digits from the right ("1234567" -> "12,34,567"). Formatting is
// idempotent: reformatting a formatted value yields the same string.
func FormatCurrency(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	// Drop leading zeros but keep a lone zero.
	start := 0
	for start < len(digits)-1 && digits[start] == '0' {
		start++
	}
	digits = digits[start:]

	if len(digits) <= 3 {
		return string(digits)
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var b strings.Builder
	// Head groups of two, right-aligned.
	first := len(head) % 2
	if first > 0 {
		b.Write(head[:first])
		if len(head) > first {
			b.WriteByte(',')
		}
	}
	for i := first; i < len(head); i += 2 {
		b.Write(head[i : i+2])
		if i+2 < len(head) {
			b.WriteByte(',')
		}
	}
	b.WriteByte(',')
	b.Write(tail)
	return b.String()
}
