package serverutils

import "github.com/go-playground/validator/v10"

// Validate is the shared request validator; controllers run it on every
// decoded DTO before the service sees it.
var Validate = validator.New()
