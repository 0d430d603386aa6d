package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"cities-api/internal/models"
	"cities-api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	defaultOrder = "asc"
)

// CitiesHandler handles city search requests
type CitiesHandler struct {
	service CityService
}

// Service interface for dependency injection
type CityService interface {
	Search(context.Context, service.SearchCriteria) ([]models.City, error)
}

// NewCitiesHandler creates a new cities handler
func NewCitiesHandler(svc CityService) *CitiesHandler {
	return &CitiesHandler{service: svc}
}

// Cities handles GET /cities requests.
//
//	@Summary		Search and filter cities
//	@Description	Returns cities filtered by fuzzy name match, exact timezone and minimum population, with sorting and pagination. At least one of q, tz or min_pop is required.
//	@Tags			Cities
//	@Produce		json
//	@Param			q		query	string	false	"Fuzzy search by city name"	example(York)
//	@Param			tz		query	string	false	"Timezone exact match"	example(Europe/London)
//	@Param			min_pop	query	int		false	"Minimum population"	example(500000)
//	@Param			limit	query	int		false	"Pagination limit"	default(50)
//	@Param			offset	query	int		false	"Pagination offset"	default(0)
//	@Param			sort	query	string	false	"Sort key (name, lat, lng, tz, pop, loc)"	example(pop)
//	@Param			order	query	string	false	"Sort order"	default(asc)	example(desc)
//	@Success		200		{array}		models.City
//	@Failure		400		{object}	map[string]string
//	@Failure		429		{string}	string	"Too Many Requests"
//	@Router			/cities [get]
func (h *CitiesHandler) Cities(c *gin.Context) {
	criteria := service.SearchCriteria{
		Query:    c.Query("q"),
		Timezone: c.Query("tz"),
		SortKey:  c.Query("sort"),
		Order:    c.DefaultQuery("order", defaultOrder),
		Limit:    defaultLimit,
	}

	if v := c.Query("min_pop"); v != "" {
		minPop, err := strconv.Atoi(v)
		if err != nil || minPop < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_pop: must be a non-negative integer"})
			return
		}
		criteria.MinPop = &minPop
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		criteria.Limit = limit
	}

	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset format"})
			return
		}
		criteria.Offset = offset
	}

	cities, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFilter):
			c.JSON(http.StatusBadRequest, gin.H{"error": "please provide at least one filter: q, tz, or min_pop"})
		case errors.Is(err, service.ErrInvalidSortKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort key: must be one of name, lat, lng, tz, pop, loc"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if cities == nil {
		cities = []models.City{}
	}
	c.JSON(http.StatusOK, cities)
}
