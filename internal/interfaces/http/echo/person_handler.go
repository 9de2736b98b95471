package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
)

type PersonHandler struct {
	useCase app.GetPersonByCode
}

func NewPersonHandler(useCase app.GetPersonByCode) *PersonHandler {
	return &PersonHandler{useCase: useCase}
}

func (h *PersonHandler) GetPerson(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context(), app.GetPersonByCodeInput{
		PersonalCode: c.Param("personalCode"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidPersonalCode):
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_personal_code",
				Message: "personalCode must be alphanumeric, at most 32 characters",
			}})
		case errors.Is(err, app.ErrPersonNotFound):
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "person not found",
			}})
		default:
			return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
				Code:    "internal_error",
				Message: "failed to load person",
			}})
		}
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
