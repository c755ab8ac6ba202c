package handler

import (
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripdesk/backend/internal/domain"
	"github.com/tripdesk/backend/internal/service"
)

// TripRequest is the body for POST /trips and PUT /trips/{index}: a complete
// trip aggregate. Dates are strict "2006-01-02" values; openapi_types.Date
// rejects anything else at unmarshal time.
type TripRequest struct {
	Name               string                   `json:"name"`
	ParticipantCount   *int                     `json:"participantCount,omitempty"`
	StartDate          *openapi_types.Date      `json:"startDate"`
	EndDate            *openapi_types.Date      `json:"endDate"`
	IsPublic           bool                     `json:"isPublic"`
	StopsByDay         map[string][]domain.Stop `json:"stopsByDay,omitempty"`
	SelectedHotelByDay map[string]string        `json:"selectedHotelByDay,omitempty"`
	PublicMeta         *domain.PublicMeta       `json:"publicMeta,omitempty"`
}

// toDomain converts the request into a Trip. Only presence is checked here;
// business rules stay in the service layer.
func (r TripRequest) toDomain() (domain.Trip, error) {
	t := domain.Trip{
		Name:               r.Name,
		ParticipantCount:   r.ParticipantCount,
		IsPublic:           r.IsPublic,
		StopsByDay:         r.StopsByDay,
		SelectedHotelByDay: r.SelectedHotelByDay,
		PublicMeta:         r.PublicMeta,
	}
	if r.StartDate != nil {
		t.StartDate = r.StartDate.Time.Format(domain.DayKeyFormat)
	}
	if r.EndDate != nil {
		t.EndDate = r.EndDate.Time.Format(domain.DayKeyFormat)
	}
	return t, nil
}

// BasicInfoRequest is the body for PUT /drafts/{id}/basic-info.
type BasicInfoRequest struct {
	Name             string              `json:"name"`
	StartDate        *openapi_types.Date `json:"startDate"`
	EndDate          *openapi_types.Date `json:"endDate"`
	ParticipantCount *int                `json:"participantCount,omitempty"`
	IsPublic         bool                `json:"isPublic"`
}

func (r BasicInfoRequest) toDomain() service.BasicInfo {
	info := service.BasicInfo{
		Name:             r.Name,
		ParticipantCount: r.ParticipantCount,
		IsPublic:         r.IsPublic,
	}
	if r.StartDate != nil {
		info.StartDate = r.StartDate.Time.Format(domain.DayKeyFormat)
	}
	if r.EndDate != nil {
		info.EndDate = r.EndDate.Time.Format(domain.DayKeyFormat)
	}
	return info
}

// StopRequest is the body for POST /drafts/{id}/days/{day}/stops. Times are
// never accepted here — they are computed by the chain scheduler and edited
// afterwards via StopTimesRequest.
type StopRequest struct {
	Kind            string `json:"kind"`
	PlaceID         string `json:"placeId,omitempty"`
	Name            string `json:"name"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

func (r StopRequest) toDomain() (domain.Stop, error) {
	if r.Name == "" {
		return domain.Stop{}, errors.New("name is required")
	}
	return domain.Stop{
		Kind:            domain.StopKind(r.Kind),
		PlaceID:         r.PlaceID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// StopTimesRequest is the body for PATCH .../stops/{stopID}.
// Absent fields leave the corresponding time untouched.
type StopTimesRequest struct {
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ReorderRequest is the body for POST .../stops/reorder.
type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// HotelSelectionRequest is the body for PUT .../hotel.
type HotelSelectionRequest struct {
	HotelID string `json:"hotelId"`
}

// DraftResponse is the snapshot returned by every draft endpoint.
type DraftResponse struct {
	ID   string      `json:"id"`
	Step string      `json:"step"`
	Trip domain.Trip `json:"trip"`
}

func draftToResponse(v service.DraftView) DraftResponse {
	return DraftResponse{ID: v.ID.String(), Step: v.Step.String(), Trip: v.Trip}
}

// ShareResponse carries a share token and the ready-to-use link.
type ShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}
