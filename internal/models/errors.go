package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrGroupNameNotUnique       = errors.New("the category group name must be unique")
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique for the category group")
	ErrAllocationMonthNotUnique = errors.New("you can not create multiple allocations for the same category and month")
	ErrRolloverMonthNotUnique   = errors.New("you can not create multiple rollover records for the same category and month")

	ErrTargetTypeInvalid      = errors.New("the specified target type is invalid")
	ErrTargetAmountNegative   = errors.New("target amounts must not be negative")
	ErrAllocationMonthMissing = errors.New("allocations must specify the month they are for")
)
