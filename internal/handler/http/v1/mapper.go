package v1

import (
	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// ClassificationToResponse converts a classification value to its DTO.
func ClassificationToResponse(c models.ZoneClassification) ClassificationResponse {
	return ClassificationResponse{
		ZoneType: string(c.ZoneType),
		Score:    c.Score,
		Reason:   c.Reason,
	}
}

// ZoneToResponse converts a zone model to its DTO.
func ZoneToResponse(z *models.SafetyZone) *ZoneResponse {
	return &ZoneResponse{
		ID:        z.ID,
		Name:      z.Name,
		State:     z.State,
		ZoneType:  string(z.ZoneType),
		Latitude:  z.Latitude,
		Longitude: z.Longitude,
		RiskLevel: z.RiskLevel,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}
}

// ZonesToResponses converts a slice of zones to DTOs.
func ZonesToResponses(zones []*models.SafetyZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = ZoneToResponse(z)
	}
	return responses
}

// ScoreToResponse converts a computed score to its DTO.
func ScoreToResponse(s *models.ComputedSafetyScore, stale bool) *ZoneScoreResponse {
	return &ZoneScoreResponse{
		ZoneID:     s.ZoneID,
		Score:      s.Score,
		Confidence: s.Confidence,
		Category:   string(s.Category),
		Factors: ScoreFactorsResponse{
			Incidents:       s.Factors.Incidents,
			News:            s.Factors.News,
			PoliceProximity: s.Factors.PoliceProximity,
			Density:         s.Factors.Density,
			Terrain:         s.Factors.Terrain,
			TimeOfDay:       s.Factors.TimeOfDay,
		},
		LastUpdated: s.LastUpdated,
		Stale:       stale,
	}
}

// AssessmentToResponse converts a location assessment to its DTO.
func AssessmentToResponse(a *models.LocationAssessment, scoreStale bool) *LocationAssessmentResponse {
	resp := &LocationAssessmentResponse{
		Classification: ClassificationToResponse(a.Classification),
	}
	if a.NearestZone != nil {
		resp.NearestZone = ZoneToResponse(a.NearestZone)
		resp.NearestZoneDistanceKm = a.NearestZoneKm
	}
	if a.ZoneScore != nil {
		resp.ZoneScore = ScoreToResponse(a.ZoneScore, scoreStale)
	}
	return resp
}

// DTOToAlertModel converts an alert creation request to the domain model.
func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Title:       dto.Title,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Priority:    models.AlertPriority(dto.Priority),
	}
}

// AlertToResponse converts an alert model to its DTO.
func AlertToResponse(a *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		Priority:    string(a.Priority),
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// AlertsToResponses converts a slice of alerts to DTOs.
func AlertsToResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertToResponse(a)
	}
	return responses
}
