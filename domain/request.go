package domain

import "github.com/go-playground/validator/v10"

var requestValidator = validator.New()

// Request is an escalation demand: a subject asking for some magnitude
// (e.g. a name and a day count).
type Request struct {
	Subject   string `validate:"required"`
	Magnitude int    `validate:"gte=0"`
}

// Validate rejects structurally invalid requests before they reach a chain.
func (r Request) Validate() error {
	return requestValidator.Struct(r)
}
