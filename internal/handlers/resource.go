package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/SscSPs/vetclinic_backend/internal/dto"
	"github.com/SscSPs/vetclinic_backend/internal/middleware"
	"github.com/SscSPs/vetclinic_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 200

// viewModel is a request/response body that converts to its domain entity.
type viewModel[T any] interface {
	ToDomain() T
}

// resourceHandler serves the CRUD routes of one entity kind.
type resourceHandler[T any, K comparable, V viewModel[T]] struct {
	kind    string
	svc     portssvc.CRUDService[T, K]
	idOf    func(T) K
	parseID func(string) (K, error)
	toView  func(T) V
}

func parseIntID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}

func parseStringID(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("id is required")
	}
	return s, nil
}

func (h *resourceHandler[T, K, V]) register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("", h.update)
	rg.DELETE("/:id", h.delete)
	rg.DELETE("", h.deleteRange)
}

func (h *resourceHandler[T, K, V]) logger(c *gin.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", h.kind))
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("user_id", userID))
	}
	return logger
}

// list returns every entity, or one page of them when limit is set.
func (h *resourceHandler[T, K, V]) list(c *gin.Context) {
	logger := h.logger(c)
	limitParam := c.Query("limit")
	if limitParam == "" {
		items, err := h.svc.GetAll(c.Request.Context(), true)
		if err != nil {
			respondServiceError(c, logger, h.kind, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToList(items, h.toView))
		return
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 || limit > maxPageSize {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxPageSize))
		return
	}
	var after *K
	if token := c.Query("nextToken"); token != "" {
		raw, err := pagination.DecodeKeysetToken(token, h.kind)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid nextToken")
			return
		}
		id, err := h.parseID(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid nextToken")
			return
		}
		after = &id
	}

	items, err := h.svc.ListPage(c.Request.Context(), limit, after)
	if err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}
	page := dto.PageResponse[V]{Items: dto.ToList(items, h.toView)}
	if len(items) == limit {
		page.NextToken = pagination.EncodeKeysetToken(h.kind, fmt.Sprint(h.idOf(items[len(items)-1])))
	}
	c.JSON(http.StatusOK, page)
}

func (h *resourceHandler[T, K, V]) get(c *gin.Context) {
	logger := h.logger(c)
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}
	c.JSON(http.StatusOK, h.toView(*item))
}

func (h *resourceHandler[T, K, V]) create(c *gin.Context) {
	logger := h.logger(c)
	var vm V
	if err := c.ShouldBindJSON(&vm); err != nil {
		respondBindError(c, logger, err)
		return
	}
	entity := vm.ToDomain()
	created, err := h.svc.Insert(c.Request.Context(), &entity)
	if err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}

	id := fmt.Sprint(h.idOf(*created))
	logger.Info("Entity created", slog.String("id", id))
	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+id)
	c.JSON(http.StatusCreated, h.toView(*created))
}

// update overwrites the entity named by the id query parameter.
func (h *resourceHandler[T, K, V]) update(c *gin.Context) {
	logger := h.logger(c)
	id, err := h.parseID(c.Query("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var vm V
	if err := c.ShouldBindJSON(&vm); err != nil {
		respondBindError(c, logger, err)
		return
	}
	entity := vm.ToDomain()
	if err := h.svc.Update(c.Request.Context(), id, &entity); err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}
	c.JSON(http.StatusOK, h.toView(entity))
}

func (h *resourceHandler[T, K, V]) delete(c *gin.Context) {
	logger := h.logger(c)
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.kind + " has been deleted"})
}

// deleteRange accepts ids as ?ids=1,2,3 or repeated ?ids=1&ids=2.
func (h *resourceHandler[T, K, V]) deleteRange(c *gin.Context) {
	logger := h.logger(c)
	var ids []K
	for _, param := range c.QueryArray("ids") {
		for _, raw := range strings.Split(param, ",") {
			if raw = strings.TrimSpace(raw); raw == "" {
				continue
			}
			id, err := h.parseID(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid id %q: %s", raw, err))
				return
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		respondError(c, http.StatusBadRequest, "ids query parameter is required")
		return
	}

	if err := h.svc.DeleteRange(c.Request.Context(), ids); err != nil {
		respondServiceError(c, logger, h.kind, err)
		return
	}
	logger.Info("Entities deleted", slog.Int("count", len(ids)))
	c.JSON(http.StatusOK, gin.H{"message": h.kind + "s have been deleted"})
}
