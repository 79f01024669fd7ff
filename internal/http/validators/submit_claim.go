package validators

import (
	dto "taskforperks.com/taskforperks/internal/data_models"
	apperrors "taskforperks.com/taskforperks/internal/errors"
	"taskforperks.com/taskforperks/internal/services"
)

// ValidateSubmitClaimRequest checks the request shape (presence and
// ranges the JSON types allow) and converts it to the service input.
// Semantic checks on field contents live in the service.
func ValidateSubmitClaimRequest(r *dto.SubmitClaimRequest) (services.SubmitClaimInput, error) {
	var in services.SubmitClaimInput

	if r.HelperID == nil {
		return in, apperrors.InvalidBody("helperId is required")
	}
	if r.Fee == nil {
		return in, apperrors.InvalidBody("fee is required")
	}
	if r.ClientVersion == nil {
		return in, apperrors.InvalidBody("clientVersion is required")
	}
	if *r.ClientVersion < 0 {
		return in, apperrors.InvalidBody("clientVersion must be non-negative")
	}

	in = services.SubmitClaimInput{
		HelperID:      *r.HelperID,
		Fee:           *r.Fee,
		Notes:         r.Notes,
		ClientVersion: uint(*r.ClientVersion),
	}
	return in, nil
}
