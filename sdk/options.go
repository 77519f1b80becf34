package sdk

import "github.com/soumitsalman/globaldoc/store"

type Option func(filter store.JSON)

func WithStatusFilter(status string) Option {
	return func(filter store.JSON) {
		filter["status"] = status
	}
}

func WithEmailFilter(email string) Option {
	return func(filter store.JSON) {
		filter["email"] = email
	}
}

func WithMinSeverityFilter(severity int) Option {
	return func(filter store.JSON) {
		filter["severity"] = store.JSON{"$gte": severity}
	}
}
