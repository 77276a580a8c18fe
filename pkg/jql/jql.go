// Package jql builds Jira Query Language clauses from untrusted values.
//
// Values are only ever emitted as double-quoted string literals, so a caller
// supplied component or label can never close the literal and append clauses.
package jql

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxValueLength bounds a single literal. Jira caps names at 255 characters.
const MaxValueLength = 255

var (
	ErrEmptyValue   = errors.New("jql: value is empty")
	ErrValueTooLong = errors.New("jql: value is too long")
	ErrInvalidValue = errors.New("jql: value contains control characters")
)

// Validate reports whether v may be used as a literal.
func Validate(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrEmptyValue
	}
	if !utf8.ValidString(v) {
		return ErrInvalidValue
	}
	if utf8.RuneCountInString(v) > MaxValueLength {
		return ErrValueTooLong
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return ErrInvalidValue
		}
	}
	return nil
}

// Quote validates v and renders it as a JQL string literal.
func Quote(v string) (string, error) {
	if err := Validate(v); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String(), nil
}

// Query accumulates AND-ed equality clauses.
type Query struct {
	clauses []string
	err     error
}

// New starts an empty query.
func New() *Query {
	return &Query{}
}

// Eq appends `field = "value"`. The first invalid value sticks and is returned by String.
func (q *Query) Eq(field, value string) *Query {
	if q.err != nil {
		return q
	}
	lit, err := Quote(value)
	if err != nil {
		q.err = fmt.Errorf("%s: %w", field, err)
		return q
	}
	q.clauses = append(q.clauses, field+" = "+lit)
	return q
}

// String renders the query.
func (q *Query) String() (string, error) {
	if q.err != nil {
		return "", q.err
	}
	return strings.Join(q.clauses, " AND "), nil
}
