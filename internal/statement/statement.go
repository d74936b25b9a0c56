// Package statement builds PQL statements for the DFP list operations.
//
//	b := statement.New().OrderBy("id ASC").Limit(statement.SuggestedPageLimit)
//	for {
//		page, err := svc.GetLineItemsByStatement(ctx, b.MustStatement())
//		...
//		b.IncreaseOffsetBy(statement.SuggestedPageLimit)
//		if b.GetOffset() >= page.TotalResultSetSize {
//			break
//		}
//	}
package statement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// SuggestedPageLimit is the page size recommended for list calls.
const SuggestedPageLimit = 500

// XSINamespace qualifies the type attribute of bind values.
const XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Value is a typed bind value.
type Value struct {
	Type  string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	Value string `xml:"value"`
}

// TextValue binds a string.
func TextValue(s string) Value {
	return Value{Type: "TextValue", Value: s}
}

// NumberValue binds an integer.
func NumberValue(n int64) Value {
	return Value{Type: "NumberValue", Value: strconv.FormatInt(n, 10)}
}

// BooleanValue binds a boolean.
func BooleanValue(b bool) Value {
	return Value{Type: "BooleanValue", Value: strconv.FormatBool(b)}
}

// ValueMapEntry binds a value to a ":key" placeholder in the query.
type ValueMapEntry struct {
	Key   string `xml:"key"`
	Value Value  `xml:"value"`
}

// Statement is a PQL query with its bind values, as sent on the wire.
type Statement struct {
	Query  string          `xml:"query"`
	Values []ValueMapEntry `xml:"values,omitempty"`
}

// Builder assembles a Statement clause by clause. The zero value is usable.
type Builder struct {
	where    string
	orderBy  string
	limit    int
	hasLimit bool
	offset   int
	hasOff   bool
	values   []ValueMapEntry
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Where sets the condition. A leading "WHERE" keyword is dropped.
func (b *Builder) Where(condition string) *Builder {
	b.where = stripKeyword(condition, "WHERE")
	return b
}

// OrderBy sets the ordering. A leading "ORDER BY" keyword is dropped.
func (b *Builder) OrderBy(order string) *Builder {
	b.orderBy = stripKeyword(order, "ORDER BY")
	return b
}

// Limit sets the page size.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	b.hasLimit = true
	return b
}

// Offset sets the index of the first result.
func (b *Builder) Offset(n int) *Builder {
	b.offset = n
	b.hasOff = true
	return b
}

// IncreaseOffsetBy moves the offset forward by n, starting from zero if unset.
func (b *Builder) IncreaseOffsetBy(n int) *Builder {
	return b.Offset(b.offset + n)
}

// GetOffset returns the current offset, zero if unset.
func (b *Builder) GetOffset() int {
	return b.offset
}

// RemoveLimitAndOffset clears paging, for queries that must not page.
func (b *Builder) RemoveLimitAndOffset() *Builder {
	b.limit, b.hasLimit = 0, false
	b.offset, b.hasOff = 0, false
	return b
}

// AddValue binds value to the ":key" placeholder. Rebinding a key replaces it.
func (b *Builder) AddValue(key string, value Value) *Builder {
	for i := range b.values {
		if b.values[i].Key == key {
			b.values[i].Value = value
			return b
		}
	}
	b.values = append(b.values, ValueMapEntry{Key: key, Value: value})
	return b
}

// Query renders the PQL text. An offset without a limit is rejected.
func (b *Builder) Query() (string, error) {
	if b.hasOff && !b.hasLimit {
		return "", fmt.Errorf("%w: OFFSET requires LIMIT", domain.ErrInvalidInput)
	}

	var clauses []string
	if b.where != "" {
		clauses = append(clauses, "WHERE "+b.where)
	}
	if b.orderBy != "" {
		clauses = append(clauses, "ORDER BY "+b.orderBy)
	}
	if b.hasLimit {
		clauses = append(clauses, "LIMIT "+strconv.Itoa(b.limit))
	}
	if b.hasOff {
		clauses = append(clauses, "OFFSET "+strconv.Itoa(b.offset))
	}
	return strings.Join(clauses, " "), nil
}

// ToStatement renders the statement with a copy of the bind values.
func (b *Builder) ToStatement() (Statement, error) {
	query, err := b.Query()
	if err != nil {
		return Statement{}, err
	}
	var values []ValueMapEntry
	if len(b.values) > 0 {
		values = append([]ValueMapEntry(nil), b.values...)
	}
	return Statement{Query: query, Values: values}, nil
}

// MustStatement is ToStatement for builders known to be valid. It panics on error.
func (b *Builder) MustStatement() Statement {
	s, err := b.ToStatement()
	if err != nil {
		panic(err)
	}
	return s
}

func stripKeyword(clause, keyword string) string {
	clause = strings.TrimSpace(clause)
	if len(clause) >= len(keyword) && strings.EqualFold(clause[:len(keyword)], keyword) {
		rest := clause[len(keyword):]
		if rest == "" || rest[0] == ' ' {
			return strings.TrimSpace(rest)
		}
	}
	return clause
}
