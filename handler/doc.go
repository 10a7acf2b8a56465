// Package handler provides type-safe JSON HTTP handlers.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	func validate(ctx handler.Context, record validator.Record) handler.Response {
//		out := v.Record(record)
//		if !out.Valid {
//			return handler.JSONError(out.Err())
//		}
//		return handler.JSON(out)
//	}
//
//	r.Post("/validate", handler.Wrap(validate,
//		handler.WithBinders[handler.Context, validator.Record](binder.Record()),
//		handler.WithErrorHandler[handler.Context, validator.Record](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON wraps data in a JSONResponse envelope. JSONError renders an error:
// validator.ValidationErrors become 422 with per-field details, HTTPError
// keeps its status, binder failures become 400 or 415 and anything else is
// reported as 500 without leaking the message.
//
// # Errors
//
// Binding and rendering failures go to the ErrorHandler. NewErrorHandler logs
// them with the request id from pkg/requestid before rendering.
package handler
