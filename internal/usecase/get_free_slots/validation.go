package get_free_slots

import (
	"fmt"
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Day == "" {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Day); err != nil {
		return fmt.Errorf("%w: day must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return nil
}
