package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formastudio/forma-api/internal/modules/serializer"
	"github.com/formastudio/forma-api/internal/modules/service"
)

type GalleryHandler struct {
	svc service.GalleryService
}

func NewGalleryHandler(s service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: s}
}

func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// Upload accepts a multipart batch under the "files" field. Batches larger
// than the per-request cap are truncated, and per-file failures are reported
// in the response without failing the whole batch.
func (h *GalleryHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid multipart form", err))
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("no files supplied", nil))
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file", err))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file", err))
			return
		}
		files = append(files, service.UploadFile{Filename: fh.Filename, Data: data})
	}

	// Category defaulting lives in the service layer.
	out, err := h.svc.BulkUpload(c.Request.Context(), service.BulkUploadInput{
		Files:    files,
		Category: c.PostForm("category"),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type UpdateGalleryReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req UpdateGalleryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.svc.UpdateMeta(c.Request.Context(), id, service.UpdateGalleryMetaInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
