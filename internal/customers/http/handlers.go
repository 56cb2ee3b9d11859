package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kiokosk/CustomerProjectManagement/internal/api/http/respond"
	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
	"github.com/kiokosk/CustomerProjectManagement/internal/customers/service"
)

const msgDeleted = "Customer deleted successfully!"

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) create(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidBody(c)
		return
	}

	customer, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Deleted(c, msgDeleted)
}

// customerID parses :id. Ids that cannot exist are answered as not found.
func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, apperr.NotFound(service.MsgNotFound))
		return 0, false
	}
	return id, true
}
