package services

import (
	"fmt"
	"strings"
)

// RoomMeasurements carries the primary area's dimensions in metres, as the
// estimation API expects them.
type RoomMeasurements struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EstimateRequest is the payload sent to the external estimation service.
type EstimateRequest struct {
	ClientInfo         ClientInfo        `json:"client_info"`
	RoomMeasurements   RoomMeasurements  `json:"room_measurements"`
	Components         map[string]bool   `json:"components"`
	DetailedComponents MergedSelection   `json:"detailed_components"`
	TaskOptions        map[string]string `json:"task_options"`
	Notes              string            `json:"notes"`
}

// SelectPrimaryArea returns the area whose measurements represent the whole
// project in the outbound request: the first valid area in store order. The
// rule is deliberately a named function so the policy stays visible and
// swappable rather than an incidental index access.
func SelectPrimaryArea(areas []*Area) (*Area, bool) {
	for _, a := range areas {
		if a.Valid() {
			return a, true
		}
	}
	return nil, false
}

// BuildQuoteRequest assembles the estimation request from the client info,
// the area store, and an optional secondary selection. It fails fast, before
// any network call, on missing client details, zero valid areas, or an empty
// component selection.
func BuildQuoteRequest(client ClientInfo, store *AreaStore, extra map[string]*ComponentSelection) (*EstimateRequest, error) {
	fields := map[string]string{}
	if strings.TrimSpace(client.Name) == "" {
		fields["name"] = "Client name is required"
	}
	if strings.TrimSpace(client.Email) == "" {
		fields["email"] = "Client email is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	merged, err := MergeComponents(store.Areas(), extra)
	if err != nil {
		return nil, err
	}

	primary, ok := SelectPrimaryArea(store.Areas())
	if !ok {
		return nil, ErrNoValidAreas
	}

	req := &EstimateRequest{
		ClientInfo: client,
		RoomMeasurements: RoomMeasurements{
			Length: parseDimension(primary.Measurements.Length) / 1000,
			Width:  parseDimension(primary.Measurements.Width) / 1000,
			Height: parseDimension(primary.Measurements.Height) / 1000,
		},
		Components:         merged.Flatten(),
		DetailedComponents: merged,
		TaskOptions:        primary.TaskOptions,
		Notes:              buildRequestNotes(store),
	}
	return req, nil
}

// buildRequestNotes summarises the whole project for the estimator: area
// count, names, and aggregate floor/wall areas, plus any per-area notes.
func buildRequestNotes(store *AreaStore) string {
	valid := store.ValidAreas()
	names := make([]string, 0, len(valid))
	for _, a := range valid {
		names = append(names, a.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project covers %d area(s): %s.", len(valid), strings.Join(names, ", "))
	fmt.Fprintf(&b, " Total floor area %.2f m2, total wall area %.2f m2.",
		TotalFloorArea(valid), TotalWallArea(valid))
	for _, a := range valid {
		if strings.TrimSpace(a.Notes) != "" {
			fmt.Fprintf(&b, " %s: %s.", a.Name, strings.TrimSpace(a.Notes))
		}
	}
	return b.String()
}
