// Package schemas defines the request and response shapes of the HTTP API.
// Binding tags are the single source of truth for what a valid request looks
// like; the rules they name are registered by package validator.
//
// Numeric fields list decimal_precision and decimal_scale before any
// comparison rule, so values too large for their column are rejected before
// they are compared.
package schemas

// IDParam is the id path parameter shared by every entity.
type IDParam struct {
	ID uint `uri:"id" binding:"required,gt=0,max=9223372036854775807"`
}

// MessageResponse is returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}
