package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avialab/aircatalog/internal/domain"
	"github.com/avialab/aircatalog/internal/service/airlines"
	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	service airlines.AirlineUseCase
}

type createAirlineRequest struct {
	Name     string `json:"name" binding:"required"`
	IATACode string `json:"iata_code" binding:"required"`
	ICAOCode string `json:"icao_code" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Active   *bool  `json:"active"`
}

type updateAirlineRequest struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Active  *bool   `json:"active"`
}

type airlineResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	IATACode  string  `json:"iata_code"`
	ICAOCode  string  `json:"icao_code"`
	Country   string  `json:"country"`
	Active    bool    `json:"active"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func NewAirlineHandler(service airlines.AirlineUseCase) *AirlineHandler {
	return &AirlineHandler{service: service}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirlineHandler) create(c *gin.Context) {
	var req createAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airline, err := h.service.Create(c.Request.Context(), airlines.CreateAirlineInput{
		Name:     req.Name,
		IATACode: req.IATACode,
		ICAOCode: req.ICAOCode,
		Country:  req.Country,
		Active:   req.Active,
	})
	if err != nil {
		if domain.IsValidation(err) || domain.IsConflict(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toAirlineResponse(*airline))
}

func (h *AirlineHandler) get(c *gin.Context) {
	airline, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if airline == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "airline not found"})
		return
	}

	c.JSON(http.StatusOK, toAirlineResponse(*airline))
}

func (h *AirlineHandler) list(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active_only"))

	result, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]airlineResponse, 0, len(result))
	for _, airline := range result {
		responses = append(responses, toAirlineResponse(airline))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *AirlineHandler) update(c *gin.Context) {
	var req updateAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airline, err := h.service.Update(c.Request.Context(), c.Param("id"), airlines.UpdateAirlineInput{
		Name:    req.Name,
		Country: req.Country,
		Active:  req.Active,
	})
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if airline == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "airline not found"})
		return
	}

	c.JSON(http.StatusOK, toAirlineResponse(*airline))
}

func (h *AirlineHandler) delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "airline not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toAirlineResponse(a domain.Airline) airlineResponse {
	return airlineResponse{
		ID:        a.ID,
		Name:      a.Name,
		IATACode:  a.IATACode,
		ICAOCode:  a.ICAOCode,
		Country:   a.Country,
		Active:    a.Active,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
