package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
)

type itemsHandler struct {
	source recordSource
	today  func() expense.Date
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *itemsHandler) list(c *gin.Context) {
	records, err := h.source.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("failed to list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list items"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *itemsHandler) create(c *gin.Context) {
	var draft expense.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if draft.SetDate.IsZero() {
		draft.SetDate = h.today()
	}
	if err := draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.source.Create(c.Request.Context(), draft)
	if err != nil {
		logger.Error("failed to create item", zap.Error(err), zap.String("payee", draft.PayeeName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}
