package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Allocation errors
var (
	ErrTotalAmountNegative = errors.New("the total amount of an allocation must not be negative")
)

// Recipient errors
var (
	ErrRecipientNameEmpty            = errors.New("the name of a recipient must be set")
	ErrRecipientPercentageOutOfRange = errors.New("the percentage of a recipient must be between 0 and 100")
	ErrRecipientFixedAmountNegative  = errors.New("the fixed amount of a recipient must not be negative")
)

// Product errors
var (
	ErrProductCostNegative  = errors.New("product costs must not be negative")
	ErrProductNameNotUnique = errors.New("this product name is already in use")
)

// MatchRule errors
var (
	ErrMatchRuleMatchEmpty = errors.New("the match pattern of a match rule must be set")
)
