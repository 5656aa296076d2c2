package params

import "github.com/cyphera/cyphera-fees/pkg/fees"

// EstimateFeeParams contains parameters for estimating the fee of a spend
type EstimateFeeParams struct {
	Network       string
	Request       fees.SpendRequest
	CorrelationID string // Optional, attached to service logs
}
