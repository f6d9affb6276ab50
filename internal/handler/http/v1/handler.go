package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trailsentry/tourist-safety-api/internal/config"
	"github.com/trailsentry/tourist-safety-api/internal/service"
)

type Handler struct {
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Check a tourist location
// @Description Classify a reported tourist position, return the nearest monitored zone with its cached safety score and record the position.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body CheckLocationRequest true "Position report"
// @Success 200 {object} LocationAssessmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input CheckLocationRequest
	log := h.logger.WithField("method", "checkLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := h.safetyService.CheckLocation(c.Request.Context(), input.UserID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	stale := assessment.ZoneScore != nil && h.safetyService.IsScoreStale(assessment.ZoneScore)
	c.JSON(http.StatusOK, AssessmentToResponse(assessment, stale))
}

// @Summary Classify a coordinate
// @Description Map a coordinate to a zone type with a base score, optionally adjusted for hour of day and weather conditions. Always succeeds; invalid coordinates classify as restricted.
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param hour query int false "Hour of day (0-23) for the time adjustment"
// @Param weather query string false "Weather condition text for the weather adjustment"
// @Success 200 {object} ClassificationResponse
// @Failure 400 {object} map[string]string "Malformed query parameters"
// @Router /location/classify [get]
func (h *Handler) classifyLocation(c *gin.Context) {
	log := h.logger.WithField("method", "classifyLocation")

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		log.WithError(err).Warn("Malformed latitude")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		log.WithError(err).Warn("Malformed longitude")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}
	hour, err := strconv.Atoi(c.DefaultQuery("hour", "-1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be an integer"})
		return
	}

	result := h.safetyService.ClassifyPoint(lat, lon, hour, c.Query("weather"))
	c.JSON(http.StatusOK, ClassificationToResponse(result))
}

// @Summary List safety zones
// @Description Get all registered safety zones.
// @Tags Zones
// @Produce json
// @Success 200 {array} ZoneResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.safetyService.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ZonesToResponses(zones))
}

// @Summary Get the safety score of a zone
// @Description Get the cached computed safety score of a zone. The score is refreshed by periodic sweeps; the response flags entries older than the staleness threshold.
// @Tags Zones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} ZoneScoreResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 503 {object} map[string]string "Score not computed yet"
// @Router /zones/{id}/score [get]
func (h *Handler) getZoneScore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getZoneScore").WithField("zone_id", id)

	score, err := h.safetyService.GetZoneScore(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrZoneNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
		case errors.Is(err, service.ErrScoreNotReady):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "zone score not computed yet"})
		default:
			log.WithError(err).Error("Failed to get zone score from service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ScoreToResponse(score, h.safetyService.IsScoreStale(score)))
}

// @Summary Trigger a score recompute sweep
// @Description Request an out-of-schedule recompute of all zone scores. Concurrent requests are coalesced. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Success 202 {object} map[string]string "Sweep scheduled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /zones/recompute [post]
func (h *Handler) recomputeScores(c *gin.Context) {
	h.safetyService.TriggerRecompute()
	c.JSON(http.StatusAccepted, gin.H{"status": "recompute scheduled"})
}

// @Summary Create an incident alert
// @Description Register a new incident alert feeding the incident signal of nearby zones. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAlertModel(input)
	if err := h.safetyService.CreateAlert(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, AlertToResponse(model))
}

// @Summary List alerts
// @Description Get a paginated list of incident alerts, newest first.
// @Tags Alerts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AlertResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	alerts, err := h.safetyService.ListAlerts(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AlertsToResponses(alerts))
}

// @Summary Get visitor statistics
// @Description Get the count of distinct tourists seen within the configured time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.safetyService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{TouristCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
