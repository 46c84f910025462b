package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/transport/http/dto"
)

// Error codes of the JSON error envelope.
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInvalidPayload   = "INVALID_PAYLOAD"
	CodeInvalidSignature = "INVALID_SIGNATURE"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidPayload):
		status = http.StatusBadRequest
		code = CodeInvalidPayload
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidSignature):
		status = http.StatusUnauthorized
		code = CodeInvalidSignature
		msg = "signature mismatch"
	case errors.Is(err, entities.ErrReviewerNotFound):
		status = http.StatusNotFound
		code = CodeNotFound
		msg = "reviewer not found"
	case errors.Is(err, entities.ErrStorage):
		msg = "storage unavailable"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
