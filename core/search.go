package core

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// customerColumns is the allowlist of filterable fields. A clause naming any
// other field is skipped rather than rejected.
var customerColumns = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"address":    "address",
	"suspended":  "suspended",
}

// Clause is one typed predicate: a field, an operator and a value. Clauses
// compile to parameterized SQL; filter values never reach the query text.
type Clause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// ClauseGroup combines clauses with "and" (default) or "or" logic.
type ClauseGroup struct {
	Logic   string   `json:"logic"`
	Clauses []Clause `json:"filters"`
}

func (g ClauseGroup) apply(query *gorm.DB) *gorm.DB {
	var conditions []string
	var values []any

	for _, cl := range g.Clauses {
		column, ok := customerColumns[cl.Field]
		if !ok {
			continue
		}

		switch strings.ToLower(cl.Operator) {
		case "eq":
			conditions = append(conditions, column+" = ?")
			values = append(values, cl.Value)
		case "neq":
			conditions = append(conditions, column+" <> ?")
			values = append(values, cl.Value)
		case "contains":
			conditions = append(conditions, column+" LIKE ?")
			values = append(values, fmt.Sprintf("%%%v%%", cl.Value))
		case "icontains":
			conditions = append(conditions, "LOWER("+column+") LIKE ?")
			values = append(values, "%"+strings.ToLower(fmt.Sprintf("%v", cl.Value))+"%")
		default:
			continue
		}
	}

	if len(conditions) == 0 {
		return query
	}
	if strings.ToLower(g.Logic) == "or" {
		return query.Where(strings.Join(conditions, " OR "), values...)
	}
	for i, condition := range conditions {
		query = query.Where(condition, values[i])
	}
	return query
}

// matchClause builds a single-column predicate. Fuzzy is a case-insensitive
// substring test; exact is case-sensitive equality.
func matchClause(column, value string, fuzzy bool) (string, any) {
	if fuzzy {
		return "LOWER(" + column + ") LIKE ?", "%" + strings.ToLower(value) + "%"
	}
	return column + " = ?", value
}

// CustomerFilters are the optional list-endpoint filters. Empty fields impose
// no constraint; supplied fields are combined with AND.
type CustomerFilters struct {
	FirstName string
	LastName  string
	Address   string
	Fuzzy     bool
}

// Search returns the customers matching the supplied filters, or all
// customers when no filter is supplied.
func (s *CustomerStore) Search(ctx context.Context, f CustomerFilters) ([]Customer, error) {
	query := s.db.WithContext(ctx).Model(&Customer{})
	for column, value := range map[string]string{
		"first_name": f.FirstName,
		"last_name":  f.LastName,
		"address":    f.Address,
	} {
		if value == "" {
			continue
		}
		condition, arg := matchClause(column, value, f.Fuzzy)
		query = query.Where(condition, arg)
	}

	var customers []Customer
	err := query.Find(&customers).Error
	return customers, err
}

// SearchClauses runs a typed clause group and reports the match count
// alongside the rows.
func (s *CustomerStore) SearchClauses(ctx context.Context, group ClauseGroup) ([]Customer, int64, error) {
	query := group.apply(s.db.WithContext(ctx).Model(&Customer{}))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (s *CustomerStore) FindByFirstName(ctx context.Context, value string, fuzzy bool) ([]Customer, error) {
	return s.findByColumn(ctx, "first_name", value, fuzzy)
}

func (s *CustomerStore) FindByLastName(ctx context.Context, value string, fuzzy bool) ([]Customer, error) {
	return s.findByColumn(ctx, "last_name", value, fuzzy)
}

func (s *CustomerStore) FindByAddress(ctx context.Context, value string, fuzzy bool) ([]Customer, error) {
	return s.findByColumn(ctx, "address", value, fuzzy)
}

func (s *CustomerStore) findByColumn(ctx context.Context, column, value string, fuzzy bool) ([]Customer, error) {
	condition, arg := matchClause(column, value, fuzzy)
	var customers []Customer
	err := s.db.WithContext(ctx).Where(condition, arg).Find(&customers).Error
	return customers, err
}

// FindByName searches on a whitespace-tokenized full-name query:
//
//	no tokens  -> empty result set
//	one token  -> first_name OR last_name matches the token
//	two tokens -> first token against first_name AND last against last_name
//	more       -> first and last token as above; interior tokens are ignored
func (s *CustomerStore) FindByName(ctx context.Context, query string, fuzzy bool) ([]Customer, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return []Customer{}, nil
	}

	db := s.db.WithContext(ctx).Model(&Customer{})
	var customers []Customer

	if len(tokens) == 1 {
		firstCond, firstArg := matchClause("first_name", tokens[0], fuzzy)
		lastCond, lastArg := matchClause("last_name", tokens[0], fuzzy)
		err := db.Where(firstCond+" OR "+lastCond, firstArg, lastArg).Find(&customers).Error
		return customers, err
	}

	firstCond, firstArg := matchClause("first_name", tokens[0], fuzzy)
	lastCond, lastArg := matchClause("last_name", tokens[len(tokens)-1], fuzzy)
	err := db.Where(firstCond, firstArg).Where(lastCond, lastArg).Find(&customers).Error
	return customers, err
}
