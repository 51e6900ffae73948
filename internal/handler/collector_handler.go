package handler

import (
	"encoding/json"
	"net/http"

	"foodcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// collectorのHTTP
type CollectorHandler struct {
	uc *usecase.CollectorUsecase
}

// DI
func NewCollectorHandler(uc *usecase.CollectorUsecase) *CollectorHandler {
	return &CollectorHandler{uc: uc}
}

type SaveDataRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type GetDataResponse struct {
	Data []usecase.RecordOutput `json:"data"`
}

func (h *CollectorHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/saveData", h.saveData)
	e.GET("/getData", h.getData)
}

func (h *CollectorHandler) saveData(c echo.Context) error {
	var req SaveDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if _, err := h.uc.SaveData(c.Request().Context(), usecase.SaveDataInput{
		Key:   req.Key,
		Value: req.Value,
	}); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Data saved"})
}

func (h *CollectorHandler) getData(c echo.Context) error {
	out, err := h.uc.GetData(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, GetDataResponse{Data: out})
}
