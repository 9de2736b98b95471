package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

type IngestionHandler struct {
	useCase app.SyncPeople
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewIngestionHandler(useCase app.SyncPeople) *IngestionHandler {
	return &IngestionHandler{useCase: useCase}
}

// IngestPeople runs one ingestion synchronously. Partial success is still
// a 200: the caller reads the status and exception count from the body.
func (h *IngestionHandler) IngestPeople(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context())
	if err != nil {
		var statusErr *domain.FeedStatusError
		switch {
		case errors.Is(err, domain.ErrFeedUnavailable),
			errors.Is(err, domain.ErrMalformedPage),
			errors.As(err, &statusErr):
			return c.JSON(http.StatusBadGateway, apiResponse{Error: &errorBody{
				Code:    "upstream_failure",
				Message: err.Error(),
			}})
		default:
			return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
				Code:    "internal_error",
				Message: "people ingestion failed",
			}})
		}
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
