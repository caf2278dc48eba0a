package response

import "github.com/gofiber/fiber/v3"

// Error bodies share one envelope; success bodies on the data endpoints are
// flat shapes owned by their handlers, so only errors go through here.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Status: st, Message: msg})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
