// Package http implements the HTTP transport layer of the book review
// service. It provides middleware, route handlers, and response utilities
// for the REST API. Authentication, logging, tracing, and panic recovery
// are all handled at this layer before requests are forwarded to the
// service layer.
//
// Every route answers with the same JSON envelope:
//
//	{success: bool, message?: string, ...payload}
//
// with failed requests additionally carrying an "error" field.
package http
