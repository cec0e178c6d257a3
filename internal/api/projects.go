package api

import (
	"context"
	"fmt"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// ProjectFilter narrows GetProjects. Nil fields are not sent.
type ProjectFilter struct {
	Limit         *int
	Offset        *int
	Category      *string
	Status        *models.ProjectStatus
	FundingStatus *models.FundingStatus
	Location      *string
}

func (f ProjectFilter) query() *Query {
	return NewQuery().
		Add("limit", f.Limit).
		Add("offset", f.Offset).
		Add("category", f.Category).
		Add("status", f.Status).
		Add("funding_status", f.FundingStatus).
		Add("location", f.Location)
}

type ProjectAPI struct {
	c *Client
}

// CreateProject creates a project owned by the current session actor.
func (a *ProjectAPI) CreateProject(ctx context.Context, p models.ProjectCreate) (models.Project, error) {
	actor, err := a.c.session.ActorID(ctx)
	if err != nil {
		return models.Project{}, err
	}
	q := NewQuery().Add("created_by", actor)
	return post[models.Project](ctx, a.c, "/api/projects"+q.Encode(), p)
}

func (a *ProjectAPI) GetProjects(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	return get[[]models.Project](ctx, a.c, "/api/projects"+f.query().Encode())
}

func (a *ProjectAPI) GetProject(ctx context.Context, id int64) (models.Project, error) {
	return get[models.Project](ctx, a.c, fmt.Sprintf("/api/projects/%d", id))
}

func (a *ProjectAPI) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
	return put[models.Project](ctx, a.c, fmt.Sprintf("/api/projects/%d", id), upd)
}

func (a *ProjectAPI) DeleteProject(ctx context.Context, id int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/projects/%d", id))
}

// RemoveTeamMember drops a user from a project team. Members are added
// through Notifications.SendTeamInvite.
func (a *ProjectAPI) RemoveTeamMember(ctx context.Context, projectID, userID int64) (models.Message, error) {
	return del[models.Message](ctx, a.c, fmt.Sprintf("/api/projects/%d/team-members/%d", projectID, userID))
}

func (a *ProjectAPI) GetProjectsByOrganizer(ctx context.Context, organizerID int64, organizerType models.OrganizerType) ([]models.Project, error) {
	q := NewQuery().Add("organizer_id", organizerID).Add("organizer_type", organizerType)
	return get[[]models.Project](ctx, a.c, "/api/projects/organizer"+q.Encode())
}

// CreateInvestment offers an investment on inv.ProjectID.
func (a *ProjectAPI) CreateInvestment(ctx context.Context, inv models.ProjectInvestmentCreate) (models.Created, error) {
	return post[models.Created](ctx, a.c, fmt.Sprintf("/api/projects/%d/invest", inv.ProjectID), inv)
}

func (a *ProjectAPI) GetProjectInvestments(ctx context.Context, projectID int64) ([]models.ProjectInvestment, error) {
	return get[[]models.ProjectInvestment](ctx, a.c, fmt.Sprintf("/api/projects/%d/investments", projectID))
}

func (a *ProjectAPI) UpdateInvestmentStatus(ctx context.Context, projectID, investmentID int64, upd models.ProjectInvestmentUpdate) (models.Message, error) {
	return put[models.Message](ctx, a.c, fmt.Sprintf("/api/projects/%d/investments/%d", projectID, investmentID), upd)
}

// GetMyInvestments lists the offers made by the authenticated investor.
func (a *ProjectAPI) GetMyInvestments(ctx context.Context) ([]models.ProjectInvestment, error) {
	return get[[]models.ProjectInvestment](ctx, a.c, "/api/investments/my")
}
