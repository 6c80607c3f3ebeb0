package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/service"

	"github.com/google/uuid"
)

// HydrationHandler handles hydration-related HTTP requests
type HydrationHandler struct {
	hydrationService service.HydrationService
}

// NewHydrationHandler creates a new hydration handler
func NewHydrationHandler(hydrationService service.HydrationService) *HydrationHandler {
	return &HydrationHandler{
		hydrationService: hydrationService,
	}
}

type profileResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Age       int32  `json:"age"`
	DailyGoal int32  `json:"daily_goal"`
	CreatedAt string `json:"created_at"`
}

type containerTypeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Volume int32  `json:"volume"`
}

type eventResponse struct {
	ID              int64  `json:"id"`
	ContainerTypeID string `json:"container_type_id"`
	Volume          int32  `json:"volume"`
	Timestamp       string `json:"timestamp"`
	Date            string `json:"date"`
}

func mapProfile(p *entity.Profile) *profileResponse {
	if p == nil {
		return nil
	}
	return &profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		DailyGoal: p.DailyGoal,
		CreatedAt: p.CreatedAt.Format(time.RFC3339Nano),
	}
}

func mapContainerTypes(containerTypes []*entity.ContainerType) []containerTypeResponse {
	out := make([]containerTypeResponse, 0, len(containerTypes))
	for _, ct := range containerTypes {
		out = append(out, containerTypeResponse{
			ID:     ct.ID.String(),
			Name:   ct.Name,
			Volume: ct.Volume,
		})
	}
	return out
}

func mapEvents(events []*entity.HydrationEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:              e.ID,
			ContainerTypeID: e.ContainerTypeID,
			Volume:          e.Volume,
			Timestamp:       e.Timestamp.Format(time.RFC3339Nano),
			Date:            e.Date,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// CompleteOnboarding handles initial profile and container setup
// @Summary Complete onboarding
// @Description Create the user profile and initial container types in one transaction. Omitting containers installs the default presets.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body object{name=string,age=int,daily_goal=int,containers=[]object{name=string,volume=int}} true "Onboarding request"
// @Success 201 {object} object{profile=object,containers=[]object}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/onboarding/complete [post]
func (h *HydrationHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name       string `json:"name"`
		Age        int32  `json:"age"`
		DailyGoal  int32  `json:"daily_goal"`
		Containers []struct {
			Name   string `json:"name"`
			Volume int32  `json:"volume"`
		} `json:"containers"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Age <= 0 {
		http.Error(w, "age must be positive", http.StatusBadRequest)
		return
	}
	if req.DailyGoal <= 0 {
		http.Error(w, "daily_goal must be positive", http.StatusBadRequest)
		return
	}

	containers := make([]service.ContainerInput, 0, len(req.Containers))
	for _, c := range req.Containers {
		if c.Name == "" || c.Volume <= 0 {
			http.Error(w, "every container needs a name and a positive volume", http.StatusBadRequest)
			return
		}
		containers = append(containers, service.ContainerInput{Name: c.Name, Volume: c.Volume})
	}

	profile, containerTypes, err := h.hydrationService.CompleteOnboarding(r.Context(), req.Name, req.Age, req.DailyGoal, containers, time.Now())
	if err != nil {
		http.Error(w, "Failed to complete onboarding", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"profile":    mapProfile(profile),
		"containers": mapContainerTypes(containerTypes),
	})
}

// GetProfile returns the current profile
// @Summary Get profile
// @Description Retrieve the current user profile
// @Tags profile
// @Produce json
// @Success 200 {object} object{id=int,name=string,age=int,daily_goal=int,created_at=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/profile [get]
func (h *HydrationHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profile, err := h.hydrationService.GetProfile(r.Context())
	if err != nil {
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, mapProfile(profile))
}

// UpdateProfile rewrites the current profile
// @Summary Update profile
// @Description Update the current profile in place
// @Tags profile
// @Accept json
// @Produce json
// @Param request body object{name=string,age=int,daily_goal=int} true "Update profile request"
// @Success 200 {object} object{id=int,name=string,age=int,daily_goal=int,created_at=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/profile/update [post]
func (h *HydrationHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name      string `json:"name"`
		Age       int32  `json:"age"`
		DailyGoal int32  `json:"daily_goal"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Age <= 0 || req.DailyGoal <= 0 {
		http.Error(w, "name, positive age and positive daily_goal are required", http.StatusBadRequest)
		return
	}

	profile, err := h.hydrationService.UpdateProfile(r.Context(), req.Name, req.Age, req.DailyGoal)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mapProfile(profile))
}

// CreateContainerType adds a new container type
// @Summary Create container type
// @Description Create a named volume preset
// @Tags containers
// @Accept json
// @Produce json
// @Param request body object{name=string,volume=int} true "Create container request"
// @Success 201 {object} object{id=string,name=string,volume=int}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/containers/create [post]
func (h *HydrationHandler) CreateContainerType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name   string `json:"name"`
		Volume int32  `json:"volume"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Volume <= 0 {
		http.Error(w, "volume must be positive", http.StatusBadRequest)
		return
	}

	containerType, err := h.hydrationService.CreateContainerType(r.Context(), req.Name, req.Volume)
	if err != nil {
		http.Error(w, "Failed to create container type", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, containerTypeResponse{
		ID:     containerType.ID.String(),
		Name:   containerType.Name,
		Volume: containerType.Volume,
	})
}

// ListContainerTypes lists all container types
// @Summary List container types
// @Tags containers
// @Produce json
// @Success 200 {object} object{containers=[]object{id=string,name=string,volume=int}}
// @Router /api/v1/containers/list [get]
func (h *HydrationHandler) ListContainerTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	containerTypes, err := h.hydrationService.ListContainerTypes(r.Context())
	if err != nil {
		http.Error(w, "Failed to list container types", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"containers": mapContainerTypes(containerTypes),
	})
}

// DeleteContainerType removes a container type
// @Summary Delete container type
// @Description Delete a container type. Historical events keep their copied volume.
// @Tags containers
// @Produce json
// @Param id query string true "Container type ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/containers/delete [post]
func (h *HydrationHandler) DeleteContainerType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Container type ID is required", http.StatusBadRequest)
		return
	}

	containerTypeID, err := uuid.Parse(id)
	if err != nil {
		http.Error(w, "Invalid container type ID", http.StatusBadRequest)
		return
	}

	if err := h.hydrationService.DeleteContainerType(r.Context(), containerTypeID); err != nil {
		http.Error(w, "Failed to delete container type", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "container type deleted"})
}

// LogIntake appends a hydration event
// @Summary Log water intake
// @Description Append one hydration event. Omitting volume copies it from the container type.
// @Tags intake
// @Accept json
// @Produce json
// @Param request body object{container_type_id=string,volume=int} true "Log intake request"
// @Success 201 {object} object{event=object,new_total=int,goal_reached=bool}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/intake/log [post]
func (h *HydrationHandler) LogIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ContainerTypeID string `json:"container_type_id"`
		Volume          int32  `json:"volume"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ContainerTypeID == "" {
		http.Error(w, "container_type_id is required", http.StatusBadRequest)
		return
	}
	if req.Volume < 0 {
		http.Error(w, "volume must be positive", http.StatusBadRequest)
		return
	}

	result, err := h.hydrationService.LogIntake(r.Context(), req.ContainerTypeID, req.Volume, time.Now())
	if err != nil {
		http.Error(w, "Failed to log intake", http.StatusInternalServerError)
		return
	}

	resp := map[string]any{
		"new_total":    result.NewTotal,
		"goal_reached": result.GoalReached,
	}
	if result.Event != nil {
		resp["event"] = mapEvents([]*entity.HydrationEvent{result.Event})[0]
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GetToday returns today's events and progress
// @Summary Today's intake
// @Description Today's events (newest first), current amount and clamped progress percentage
// @Tags intake
// @Produce json
// @Success 200 {object} object{events=[]object,current_amount=int,progress_percentage=number}
// @Router /api/v1/intake/today [get]
func (h *HydrationHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()

	events, err := h.hydrationService.EventsToday(r.Context(), now)
	if err != nil {
		http.Error(w, "Failed to load events", http.StatusInternalServerError)
		return
	}

	amount, err := h.hydrationService.CurrentAmount(r.Context(), now)
	if err != nil {
		http.Error(w, "Failed to load current amount", http.StatusInternalServerError)
		return
	}

	progress, err := h.hydrationService.ProgressPercentage(r.Context(), now)
	if err != nil {
		http.Error(w, "Failed to compute progress", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"events":              mapEvents(events),
		"current_amount":      amount,
		"progress_percentage": progress,
	})
}

// GetWeeklySeries returns the current week's totals
// @Summary Weekly series
// @Description Exactly 7 daily totals, Monday first, zero-filled
// @Tags stats
// @Produce json
// @Success 200 {object} object{week_start=string,series=[]int}
// @Router /api/v1/stats/weekly [get]
func (h *HydrationHandler) GetWeeklySeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	series, err := h.hydrationService.WeeklySeries(r.Context(), time.Now())
	if err != nil {
		http.Error(w, "Failed to compute weekly series", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"series": series})
}

// GetSummary returns the aggregated dashboard metrics
// @Summary Stats summary
// @Description Current amount, clamped progress, consecutive-day streak and lifetime achieved count
// @Tags stats
// @Produce json
// @Success 200 {object} object{current_amount=int,daily_goal=int,progress_percentage=number,consecutive_streak=int,lifetime_achieved=int}
// @Router /api/v1/stats/summary [get]
func (h *HydrationHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.hydrationService.GetSummary(r.Context(), time.Now())
	if err != nil {
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"current_amount":      summary.CurrentAmount,
		"daily_goal":          summary.DailyGoal,
		"progress_percentage": summary.ProgressPercentage,
		"consecutive_streak":  summary.ConsecutiveStreak,
		"lifetime_achieved":   summary.LifetimeAchieved,
	})
}
