// Package search относит строку поиска ровно к одному измерению запроса.
package search

import (
	"errors"
	"regexp"
	"strings"

	"laundry-service/internal/models"
)

var ErrEmptyTerm = errors.New("search term is empty")

type Dimension string

const (
	DimensionStatus Dimension = "status"
	DimensionPhone  Dimension = "phone"
	DimensionCode   Dimension = "code"
	DimensionName   Dimension = "name"
)

const OrderCodePrefix = "ORD-"

type Query struct {
	Dimension Dimension
	Value     string
	Status    models.DeliveryStatus // только для DimensionStatus
}

var phoneRe = regexp.MustCompile(`^[0-9]{10,12}$`)

// Английские синонимы статусов доставки.
var statusAliases = map[string]models.DeliveryStatus{
	"not delivered": models.DeliveryPending,
	"delivered":     models.DeliveryDelivered,
}

type rule struct {
	match func(term string) bool
	build func(term string) Query
}

// Порядок важен: статус > телефон > код > имя.
var rules = []rule{
	{match: isStatus, build: statusQuery},
	{match: phoneRe.MatchString, build: func(t string) Query { return Query{Dimension: DimensionPhone, Value: t} }},
	{match: func(t string) bool { return strings.HasPrefix(t, OrderCodePrefix) }, build: func(t string) Query { return Query{Dimension: DimensionCode, Value: t} }},
	{match: func(string) bool { return true }, build: func(t string) Query { return Query{Dimension: DimensionName, Value: t} }},
}

func Classify(term string) (Query, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Query{}, ErrEmptyTerm
	}
	for _, r := range rules {
		if r.match(term) {
			return r.build(term), nil
		}
	}
	// последнее правило совпадает всегда
	panic("search: no rule matched " + term)
}

func IsPhone(s string) bool { return phoneRe.MatchString(s) }

func isStatus(term string) bool {
	_, ok := lookupStatus(term)
	return ok
}

func statusQuery(term string) Query {
	st, _ := lookupStatus(term)
	return Query{Dimension: DimensionStatus, Value: string(st), Status: st}
}

func lookupStatus(term string) (models.DeliveryStatus, bool) {
	switch models.DeliveryStatus(term) {
	case models.DeliveryPending, models.DeliveryDelivered:
		return models.DeliveryStatus(term), true
	}
	st, ok := statusAliases[strings.ToLower(term)]
	return st, ok
}
