package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
	"atlas-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// parseFilter builds a ProjectFilter from query parameters:
//
//	region_id, sdg, city, funded_by, q, limit
//	lat, lon, radius_km          (near)
//	north, south, east, west     (bounds)
//	status (repeatable), include_non_approved   (admin only)
//
// Every malformed parameter is reported in one ValidationError.
func parseFilter(c *gin.Context, admin bool) (repository.ProjectFilter, error) {
	verr := &apperrors.ValidationError{}
	filter := repository.ProjectFilter{
		City:     c.Query("city"),
		FundedBy: c.Query("funded_by"),
		FreeText: c.Query("q"),
	}

	filter.RegionID = optionalInt(c, verr, "region_id")
	filter.SDG = optionalInt(c, verr, "sdg")
	if limit := optionalInt(c, verr, "limit"); limit != nil {
		filter.Limit = *limit
	}

	lat, lon := optionalFloat(c, verr, "lat"), optionalFloat(c, verr, "lon")
	radius := optionalFloat(c, verr, "radius_km")
	switch {
	case lat != nil && lon != nil:
		filter.Near = &repository.NearFilter{Lat: *lat, Lon: *lon}
		if radius != nil {
			filter.Near.RadiusKm = *radius
		}
		if *lat < -90 || *lat > 90 {
			verr.Add("lat", "lat must be between -90 and 90")
		}
		if *lon < -180 || *lon > 180 {
			verr.Add("lon", "lon must be between -180 and 180")
		}
	case lat != nil || lon != nil:
		verr.Add("lat", "lat and lon must be given together")
	}

	north, south := optionalFloat(c, verr, "north"), optionalFloat(c, verr, "south")
	east, west := optionalFloat(c, verr, "east"), optionalFloat(c, verr, "west")
	switch {
	case north != nil && south != nil && east != nil && west != nil:
		if *south > *north {
			verr.Add("south", "south must not be greater than north")
		}
		filter.Bounds = &repository.BoundsFilter{North: *north, South: *south, East: *east, West: *west}
	case north != nil || south != nil || east != nil || west != nil:
		verr.Add("north", "north, south, east and west must be given together")
	}

	if admin {
		filter.IncludeNonApproved = c.Query("include_non_approved") != "false"
		for _, raw := range c.QueryArray("status") {
			for _, part := range strings.Split(raw, ",") {
				status := models.WorkflowStatus(strings.TrimSpace(part))
				if status == "" {
					continue
				}
				if !status.IsValid() {
					verr.Add("status", fmt.Sprintf("unknown status %q", status))
					continue
				}
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}

	return filter, verr.OrNil()
}

func optionalInt(c *gin.Context, verr *apperrors.ValidationError, key string) *int {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(key, key+" must be an integer")
		return nil
	}
	return &v
}

func optionalFloat(c *gin.Context, verr *apperrors.ValidationError, key string) *float64 {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		verr.Add(key, key+" must be a number")
		return nil
	}
	return &v
}
