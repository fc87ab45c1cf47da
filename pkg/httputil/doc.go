// Package httputil writes JSON responses for the notewall HTTP API.
//
// Errors are rendered as {"code": ..., "message": ...} with the HTTP status
// derived from the error's [errors.Code]:
//
//	INVALID_ARGUMENT, INVALID_INPUT, INVALID_CONFIG  400
//	NOT_FOUND                                         404
//	UNAVAILABLE                                       503
//	anything else                                     500
//
// [errors.Code]: github.com/matzehuels/notewall/pkg/errors.Code
package httputil
