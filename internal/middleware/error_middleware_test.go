package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "subject not found", err: apperrors.ErrSubjectNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "appeal not found", err: apperrors.ErrAppealNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "expired token", err: apperrors.ErrTokenExpired, wantStatus: 401, wantCode: dto.ErrorCodeExpiredToken},
		{name: "email exists", err: apperrors.ErrEmailAlreadyExists, wantStatus: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "schedule conflict", err: apperrors.ErrScheduleConflict, wantStatus: 409, wantCode: dto.ErrorCodeScheduleConflict},
		{name: "requirement violation", err: apperrors.ErrRequirementViolation, wantStatus: 409, wantCode: dto.ErrorCodeRequirementViolation},
		{name: "no pending changes", err: apperrors.ErrNoPendingChanges, wantStatus: 400, wantCode: dto.ErrorCodeNoPendingChanges},
		{name: "appeal already closed", err: apperrors.ErrAppealAlreadyClosed, wantStatus: 409, wantCode: dto.ErrorCodeAppealClosed},
		{name: "bad request", err: apperrors.ErrBadRequest, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "unknown error", err: errors.New("boom"), wantStatus: 500, wantCode: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("expected an error payload")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, fmt.Errorf("saving schedule: %w", apperrors.ErrScheduleConflict))

	if w.Code != 409 {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestHandleAPIErrorCustomErrorDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperrors.NewCustomError(apperrors.ErrRequirementViolation, "MAT201 requires MAT101, which is already in the schedule").
		WithDetails(map[string]interface{}{"kind": "CONCURRENT_PREREQUISITE"})
	HandleAPIError(c, err)

	if w.Code != 409 {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error == nil || resp.Error.Message != "MAT201 requires MAT101, which is already in the schedule" {
		t.Fatalf("custom message lost: %+v", resp.Error)
	}
	details, ok := resp.Error.Details.(map[string]interface{})
	if !ok || details["kind"] != "CONCURRENT_PREREQUISITE" {
		t.Errorf("details lost in mapping: %+v", resp.Error.Details)
	}
}
