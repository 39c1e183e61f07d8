package model

import "errors"

var (
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
	ErrUnknownFilingStatus = errors.New("unknown filing status")
	ErrInvalidIncome       = errors.New("invalid income")
	ErrInvalidRate         = errors.New("invalid rate")
	ErrInvalidFundData     = errors.New("invalid fund data")
	ErrDegenerateRate      = errors.New("degenerate combined tax rate")
	ErrEmptyFundList       = errors.New("empty fund list")
	ErrInvalidInvestment   = errors.New("invalid investment amount")
	ErrInvalidTopN         = errors.New("top N must be positive")
)
