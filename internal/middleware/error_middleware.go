package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the standard error envelope.
// CustomError messages and details survive the mapping so typed violation
// payloads reach the client.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var details interface{}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Error()
		if custom.Details != nil {
			details = custom.Details
		}
	}

	respond := func(status int, code dto.ErrorCode) {
		detail := dto.NewErrorDetail(code, message)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(status, dto.APIResponse{Error: detail})
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrScheduleNotFound),
		errors.Is(err, apperrors.ErrAppealNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		respond(404, dto.ErrorCodeResourceNotFound)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(403, dto.ErrorCodeForbidden)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(401, dto.ErrorCodeInvalidCredentials)

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(401, dto.ErrorCodeExpiredToken)

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(401, dto.ErrorCodeInvalidToken)

	case errors.Is(err, apperrors.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(409, dto.ErrorCodeResourceAlreadyExists)

	case errors.Is(err, apperrors.ErrScheduleConflict):
		respond(409, dto.ErrorCodeScheduleConflict)

	case errors.Is(err, apperrors.ErrRequirementViolation):
		respond(409, dto.ErrorCodeRequirementViolation)

	case errors.Is(err, apperrors.ErrNoPendingChanges):
		respond(400, dto.ErrorCodeNoPendingChanges)

	case errors.Is(err, apperrors.ErrAppealAlreadyClosed):
		respond(409, dto.ErrorCodeAppealClosed)

	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicateGroup):
		respond(409, dto.ErrorCodeValidationFailed)

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(400, dto.ErrorCodeValidationFailed)

	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(500, dto.APIResponse{Error: detail})
	}
}
