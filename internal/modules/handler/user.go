package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// List godoc
//
//	@Summary	List accounts with their resolved roles
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]service.Account}
//	@Router		/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	accounts, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: accounts})
}

type SetRoleReq struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}

// SetRole promotes or demotes an account. An admin demoting themselves is
// allowed; the change takes effect on their next request.
func (h *UserHandler) SetRole(c *gin.Context) {
	var req SetRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.SetRole(c.Request.Context(), id, req.Role); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "role updated"})
}
