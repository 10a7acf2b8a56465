// Package binder decodes HTTP request bodies for handler.Wrap.
//
// JSON binds a JSON body into any value. Record binds a candidate plant
// record from either a JSON object or a url-encoded form, so the same
// endpoint serves API clients and plain HTML forms.
//
//	http.HandleFunc("POST /validate", handler.Wrap(validate,
//		handler.WithBinders[handler.Context, validator.Record](binder.Record()),
//	))
//
// Both binders cap the body at DefaultMaxJSONSize, reject trailing data and
// keep JSON numbers as json.Number so values like 42.0 survive unchanged
// until plant stat coercion sees them. Errors wrap the package sentinels.
package binder
