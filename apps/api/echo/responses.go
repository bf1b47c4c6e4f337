package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

type (
	dataResponse struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
	}

	listResponse struct {
		Success  bool        `json:"success"`
		Data     interface{} `json:"data"`
		Total    int         `json:"total"`
		Page     int         `json:"page"`
		PageSize int         `json:"page_size"`
	}

	messageResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

func sendData(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, dataResponse{Success: true, Data: data})
}

func sendList(ctx echo.Context, data interface{}, total int, page core.Page) error {
	return ctx.JSON(http.StatusOK, listResponse{
		Success:  true,
		Data:     data,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	})
}

func sendMessage(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusOK, messageResponse{Success: true, Message: msg})
}
