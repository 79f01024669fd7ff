package dto

// SubmitClaimRequest uses pointers for required fields so a missing field
// is distinguishable from a zero value.
type SubmitClaimRequest struct {
	HelperID      *string  `json:"helperId"`
	Fee           *float64 `json:"fee"`
	Notes         string   `json:"notes"`
	ClientVersion *int64   `json:"clientVersion"`
}

type SubmitClaimResponse struct {
	ClaimID string `json:"claimId"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
