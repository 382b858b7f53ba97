package monitor

import (
	"net/url"
	"strconv"

	"code.cloudfoundry.org/app-perfmon/models"
)

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

type Query struct {
	Type   models.QueryType
	Period models.Period
	Limit  int
}

// ParseQuery reads type, period and limit from the query string, reporting
// every invalid parameter at once.
func ParseQuery(values url.Values) (Query, error) {
	var violations models.ValidationErrors
	q := Query{Period: models.DefaultPeriod, Limit: DefaultQueryLimit}

	if raw := values.Get("type"); raw == "" {
		violations = append(violations, models.FieldError{Field: "type", Description: "type is required"})
	} else if queryType, err := models.ParseQueryType(raw); err != nil {
		violations = append(violations, models.FieldError{Field: "type", Description: err.Error()})
	} else {
		q.Type = queryType
	}

	period, err := models.ParsePeriod(values.Get("period"))
	if err != nil {
		violations = append(violations, models.FieldError{Field: "period", Description: err.Error()})
	}
	q.Period = period

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxQueryLimit {
			violations = append(violations, models.FieldError{
				Field:       "limit",
				Description: "limit must be an integer between 1 and " + strconv.Itoa(MaxQueryLimit),
			})
		}
		q.Limit = limit
	}

	if len(violations) > 0 {
		return Query{}, violations
	}
	return q, nil
}
