package postgres

import (
	"strconv"
	"strings"
	"time"

	"go-talent-intake/internal/domain"

	"github.com/lib/pq"
)

// Column is a whitelisted candidates column. Predicates only accept these,
// so identifiers never come from request input.
type Column string

const (
	ColID              Column = "id"
	ColFullName        Column = "full_name"
	ColPhoneNumber     Column = "phone_number"
	ColJobCategory     Column = "job_category"
	ColExperienceRange Column = "experience_range"
	ColStatus          Column = "status"
	ColCreatedAt       Column = "created_at"
)

func (c Column) quoted() string {
	return pq.QuoteIdentifier(string(c))
}

// Predicate is one filter condition. The set of variants is closed.
type Predicate interface {
	// compile renders the condition, appending its values to args.
	// An empty string means the predicate imposes no constraint.
	compile(args *[]any) string
}

type equalsPredicate struct {
	column Column
	value  any
}

type likeSubstringPredicate struct {
	columns []Column
	value   string
}

type dateRangePredicate struct {
	column Column
	from   *time.Time
	to     *time.Time
}

// Equals matches column = value exactly.
func Equals(column Column, value any) Predicate {
	return equalsPredicate{column: column, value: value}
}

// LikeSubstring matches value as a case-insensitive substring of any of the
// columns. Wildcards inside value match literally.
func LikeSubstring(columns []Column, value string) Predicate {
	return likeSubstringPredicate{columns: columns, value: value}
}

// DateRange matches rows whose column date falls within [from, to]. Either
// bound may be nil.
func DateRange(column Column, from, to *time.Time) Predicate {
	return dateRangePredicate{column: column, from: from, to: to}
}

func placeholder(args *[]any, v any) string {
	*args = append(*args, v)
	return "$" + strconv.Itoa(len(*args))
}

func (p equalsPredicate) compile(args *[]any) string {
	return p.column.quoted() + " = " + placeholder(args, p.value)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p likeSubstringPredicate) compile(args *[]any) string {
	if len(p.columns) == 0 {
		return ""
	}
	ph := placeholder(args, "%"+likeEscaper.Replace(p.value)+"%")
	parts := make([]string, len(p.columns))
	for i, col := range p.columns {
		parts[i] = col.quoted() + " ILIKE " + ph + ` ESCAPE '\'`
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (p dateRangePredicate) compile(args *[]any) string {
	var parts []string
	if p.from != nil {
		parts = append(parts, p.column.quoted()+"::date >= "+placeholder(args, p.from.Format(time.DateOnly))+"::date")
	}
	if p.to != nil {
		parts = append(parts, p.column.quoted()+"::date <= "+placeholder(args, p.to.Format(time.DateOnly))+"::date")
	}
	return strings.Join(parts, " AND ")
}

// Where compiles preds into a WHERE clause joined with AND, numbering
// placeholders after any args already present. It returns "" when nothing
// constrains the query.
func Where(args []any, preds ...Predicate) (string, []any) {
	var conditions []string
	for _, p := range preds {
		if p == nil {
			continue
		}
		if cond := p.compile(&args); cond != "" {
			conditions = append(conditions, cond)
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// CandidatePredicates turns dashboard filter criteria into predicates. Empty
// criteria are skipped.
func CandidatePredicates(filter domain.CandidateFilter) []Predicate {
	var preds []Predicate
	if s := strings.TrimSpace(filter.Search); s != "" {
		preds = append(preds, LikeSubstring([]Column{ColFullName, ColPhoneNumber}, s))
	}
	if filter.JobCategory != "" {
		preds = append(preds, Equals(ColJobCategory, filter.JobCategory))
	}
	if filter.ExperienceRange != "" {
		preds = append(preds, Equals(ColExperienceRange, filter.ExperienceRange))
	}
	if filter.Status != "" {
		preds = append(preds, Equals(ColStatus, filter.Status))
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		preds = append(preds, DateRange(ColCreatedAt, filter.DateFrom, filter.DateTo))
	}
	return preds
}
