package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/services"
)

// resourceHandler serves the four CRUD routes of one kind
type resourceHandler[T any, F any] struct {
	kind    domain.Kind
	service services.ResourceService[T, F]
	srv     *server
}

func registerResource[T any, F any](g *gin.RouterGroup, path string, kind domain.Kind, svc services.ResourceService[T, F], srv *server) {
	h := &resourceHandler[T, F]{kind: kind, service: svc, srv: srv}
	g.GET(path, h.list)
	g.POST(path, h.create)
	g.PUT(path+"/:id", h.update)
	g.DELETE(path+"/:id", h.remove)
}

func (h *resourceHandler[T, F]) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), ownerFrom(c))
	if err != nil {
		h.srv.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *resourceHandler[T, F]) create(c *gin.Context) {
	var fields F
	if !h.srv.bind(c, &fields) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), ownerFrom(c), fields)
	if err != nil {
		h.srv.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *resourceHandler[T, F]) update(c *gin.Context) {
	var patch F
	if !h.srv.bind(c, &patch) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), ownerFrom(c), c.Param("id"), patch)
	if err != nil {
		h.srv.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *resourceHandler[T, F]) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), ownerFrom(c), c.Param("id")); err != nil {
		h.srv.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.kind.Label() + " deleted"})
}

// bind decodes the JSON body into dst, answering 400 when it cannot
func (s *server) bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		s.fail(c, errors.NewInvalidInputError("body", nil, err.Error()))
		return false
	}
	return true
}

// fail logs system errors and answers with the mapped status
func (s *server) fail(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		s.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("owner", ownerFrom(c).String()),
			zap.Error(err),
		)
	}
	abortWithError(c, err)
}
