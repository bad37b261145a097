// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, and request body limits are handled in this package before requests
// are delegated to the service layer. Every error response carries a JSON body
// of the form {"message": ...} that clients display verbatim.
package http
