package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"atlas-backend/internal/database/models"
	"atlas-backend/internal/repository"
)

var exportHeader = []string{
	"reference_code", "name", "organization_name", "city", "country", "region",
	"latitude", "longitude", "sdgs", "implementation_status", "funding_needed",
	"funding_spent", "workflow_status", "submission_date", "published_date",
}

// ExportService writes project listings as CSV
type ExportService struct {
	repo repository.ProjectRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(repo repository.ProjectRepositoryInterface) *ExportService {
	return &ExportService{repo: repo}
}

// ExportCSV writes a header and one row per project matching filter
func (s *ExportService) ExportCSV(ctx context.Context, filter repository.ProjectFilter, w io.Writer) error {
	projects, err := s.repo.Query(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range projects {
		if err := cw.Write(exportRow(&projects[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(p *models.Project) []string {
	region := ""
	if p.Region != nil {
		region = p.Region.Name
	}
	sdgs := make([]string, 0, len(p.SDGs))
	for _, id := range p.SDGIDs() {
		sdgs = append(sdgs, strconv.Itoa(id))
	}
	return []string{
		p.ReferenceCode,
		p.Name,
		p.OrganizationName,
		p.City,
		p.Country,
		region,
		formatOptionalFloat(p.Latitude),
		formatOptionalFloat(p.Longitude),
		strings.Join(sdgs, ";"),
		string(p.ImplementationStatus),
		strconv.FormatFloat(p.FundingNeeded, 'f', 2, 64),
		formatOptionalMoney(p.FundingSpent),
		string(p.WorkflowStatus),
		p.SubmissionDate.UTC().Format(time.RFC3339),
		formatOptionalTime(p.PublishedDate),
	}
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptionalMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
