package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entitlement"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/specification"
	"smart-tools-be/internal/repository/unitofwork"
	"smart-tools-be/internal/usage"

	"smart-tools-be/pkg/events"
	pktNats "smart-tools-be/pkg/nats"

	"github.com/google/uuid"
)

type IProjectService interface {
	ListProjects(ctx context.Context, userId uuid.UUID) (*dto.ProjectListResponse, error)
	GetProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error
	ClearAllData(ctx context.Context, userId uuid.UUID) error
	ExportProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, format string) (*dto.ExportResult, error)
}

type projectService struct {
	uowFactory     unitofwork.RepositoryFactory
	meter          *usage.Meter
	eventPublisher *pktNats.Publisher
}

func NewProjectService(
	uowFactory unitofwork.RepositoryFactory,
	meter *usage.Meter,
	eventPublisher *pktNats.Publisher,
) IProjectService {
	return &projectService{
		uowFactory:     uowFactory,
		meter:          meter,
		eventPublisher: eventPublisher,
	}
}

func (s *projectService) ListProjects(ctx context.Context, userId uuid.UUID) (*dto.ProjectListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	plan := catalog.Resolve(resolveTier(ctx, uow, userId))

	items := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectResponse(p))
	}

	total := int64(len(projects))
	return &dto.ProjectListResponse{
		Projects: items,
		Total:    total,
		Capacity: dto.UsageLimit{
			Used:   int(total),
			Limit:  plan.MaxSavedProjects,
			CanUse: plan.MaxSavedProjects == entity.LimitUnlimited || int(total) < plan.MaxSavedProjects,
		},
	}, nil
}

func (s *projectService) GetProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) DeleteProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return err
	}
	return uow.ProjectRepository().Delete(ctx, project.Id)
}

// ClearAllData removes every saved project and zeroes today's usage counter.
// Subscription and account rows are untouched.
func (s *projectService) ClearAllData(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ProjectRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	s.meter.ResetToday(userId)

	if s.eventPublisher != nil {
		evt := events.New(events.TypeDataCleared, map[string]interface{}{
			"user_id": userId.String(),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", events.TypeDataCleared, err)
		}
	}
	return nil
}

// ExportProject gates the requested format against the user's plan before
// rendering. txt and json are rendered server side; pdf, word and excel come
// back as a JSON descriptor consumed by the client-side document renderer.
func (s *projectService) ExportProject(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, format string) (*dto.ExportResult, error) {
	exportFormat := entity.ExportFormat(strings.ToLower(format))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tier := resolveTier(ctx, uow, userId)

	if !entitlement.CanExport(tier, exportFormat) {
		lock := entitlement.ExportLockInfo(exportFormat, tier)
		return &dto.ExportResult{
			Allowed: false,
			Format:  string(exportFormat),
			Lock:    &lock,
		}, nil
	}

	project, err := s.findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	content, contentType, ext, err := renderExport(project, exportFormat)
	if err != nil {
		return nil, err
	}

	return &dto.ExportResult{
		Allowed:     true,
		Format:      string(exportFormat),
		FileName:    fmt.Sprintf("%s-%s.%s", project.ToolSlug, project.Id.String()[:8], ext),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func (s *projectService) findOwnedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.SavedProject, error) {
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.New("project not found")
	}
	return project, nil
}

func toProjectResponse(p *entity.SavedProject) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:        p.Id,
		ToolSlug:  p.ToolSlug,
		Title:     p.Title,
		Input:     p.InputSnapshot,
		Output:    p.OutputSnapshot,
		CreatedAt: p.CreatedAt,
	}
}

func renderExport(project *entity.SavedProject, format entity.ExportFormat) (content []byte, contentType, ext string, err error) {
	switch format {
	case entity.ExportFormatTxt:
		return renderPlainText(project), "text/plain; charset=utf-8", "txt", nil
	case entity.ExportFormatJSON:
		raw, jerr := json.MarshalIndent(map[string]interface{}{
			"tool":       project.ToolSlug,
			"title":      project.Title,
			"input":      project.InputSnapshot,
			"output":     project.OutputSnapshot,
			"created_at": project.CreatedAt.Format(time.RFC3339),
		}, "", "  ")
		if jerr != nil {
			return nil, "", "", jerr
		}
		return raw, "application/json", "json", nil
	case entity.ExportFormatPdf, entity.ExportFormatWord, entity.ExportFormatExcel:
		// Document descriptor; the SPA renders the binary client side.
		raw, jerr := json.Marshal(map[string]interface{}{
			"renderer": string(format),
			"tool":     project.ToolSlug,
			"title":    project.Title,
			"output":   project.OutputSnapshot,
		})
		if jerr != nil {
			return nil, "", "", jerr
		}
		return raw, "application/json", string(format) + ".json", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported export format %q", format)
	}
}

func renderPlainText(project *entity.SavedProject) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", project.Title)
	fmt.Fprintf(&b, "Tool: %s\n", project.ToolSlug)
	fmt.Fprintf(&b, "Created: %s\n\n", project.CreatedAt.Format(time.RFC3339))
	writeSection(&b, "Input", project.InputSnapshot)
	writeSection(&b, "Output", project.OutputSnapshot)
	return []byte(b.String())
}

func writeSection(b *strings.Builder, name string, data map[string]interface{}) {
	if len(data) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", name)
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "  %s: %v\n", k, data[k])
	}
	b.WriteString("\n")
}
