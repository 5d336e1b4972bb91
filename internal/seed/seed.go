// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// Options controls the size of the generated data set.
type Options struct {
	Users             int
	ProjectsPerUser   int
	CommentsPerProj   int
	EventsPerProject  int
	AuxiliaryEntities bool
}

// DefaultOptions is a data set big enough to make every listing page
// non-trivial without slowing local startup down.
func DefaultOptions() Options {
	return Options{
		Users:             10,
		ProjectsPerUser:   3,
		CommentsPerProj:   4,
		EventsPerProject:  6,
		AuxiliaryEntities: true,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var seedLanguages = []string{"Go", "TypeScript", "Python", "Rust", "Java", "Kotlin", "C++", "Ruby"}

// CreateUser persists a user with a plausible profile.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:           gofakeit.Email(),
		Username:        fmt.Sprintf("%s%d", gofakeit.Username(), f.rnd.Intn(10000)),
		Password:        gofakeit.Password(true, true, true, false, false, 12),
		FirstName:       gofakeit.FirstName(),
		LastName:        gofakeit.LastName(),
		ProfileImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		IsActive:        true,
		IsEmailVerified: f.rnd.Intn(2) == 0,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProject persists a project owned by the given user.
func (f *Factory) CreateProject(owner *models.User, overrides ...func(*models.Project)) (*models.Project, error) {
	langCount := 1 + f.rnd.Intn(3)
	languages := make([]string, 0, langCount)
	for _, i := range f.rnd.Perm(len(seedLanguages))[:langCount] {
		languages = append(languages, seedLanguages[i])
	}

	project := &models.Project{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Languages:   languages,
		IsPublic:    f.rnd.Intn(4) != 0, // mostly public
		IsActive:    true,
		ViewCount:   int64(f.rnd.Intn(500)),
		LikeCount:   int64(f.rnd.Intn(50)),
		UserID:      owner.ID,
	}
	for _, override := range overrides {
		override(project)
	}
	if err := f.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// CreateComment persists a comment by the given user on the given project.
func (f *Factory) CreateComment(project *models.Project, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(8 + f.rnd.Intn(10)),
		ProjectID: project.ID,
		UserID:    author.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateAnalyticsEvent persists one event row for the given project.
func (f *Factory) CreateAnalyticsEvent(project *models.Project) (*models.Analytics, error) {
	types := []string{models.EventTypeView, models.EventTypeView, models.EventTypeView,
		models.EventTypeLike, models.EventTypeComment, models.EventTypeShare}

	event := &models.Analytics{
		ProjectID: project.ID,
		EventType: types[f.rnd.Intn(len(types))],
		IPAddress: gofakeit.IPv4Address(),
		UserAgent: gofakeit.UserAgent(),
	}
	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// CreateAuxiliaryEntities fills the supporting tables so the schema is fully
// populated in demo environments.
func (f *Factory) CreateAuxiliaryEntities(users []*models.User, projects []*models.Project) error {
	org := &models.Organization{
		Name:        fmt.Sprintf("%s %d", gofakeit.Company(), f.rnd.Intn(10000)),
		Description: gofakeit.Sentence(10),
	}
	if err := f.db.Create(org).Error; err != nil {
		return err
	}

	team := &models.Team{
		Name:           fmt.Sprintf("%s Team", gofakeit.HackerNoun()),
		Description:    gofakeit.Sentence(8),
		OrganizationID: &org.ID,
	}
	if err := f.db.Create(team).Error; err != nil {
		return err
	}

	for _, name := range []string{"backend", "frontend", "ml", "tooling"} {
		tag := &models.Tag{Name: fmt.Sprintf("%s-%d", name, f.rnd.Intn(10000))}
		if err := f.db.Create(tag).Error; err != nil {
			return err
		}
	}

	for _, user := range users {
		idea := &models.Idea{
			Title:       gofakeit.Sentence(5),
			Description: gofakeit.Paragraph(1, 2, 6, "\n"),
			UserID:      user.ID,
		}
		if err := f.db.Create(idea).Error; err != nil {
			return err
		}

		notification := &models.Notification{
			UserID:  user.ID,
			Message: gofakeit.Sentence(9),
			IsRead:  f.rnd.Intn(2) == 0,
		}
		if err := f.db.Create(notification).Error; err != nil {
			return err
		}
	}

	for _, project := range projects {
		attachment := &models.Attachment{
			ProjectID: project.ID,
			FileName:  fmt.Sprintf("%s.zip", gofakeit.Word()),
			FileURL:   gofakeit.URL(),
		}
		if err := f.db.Create(attachment).Error; err != nil {
			return err
		}
	}

	return nil
}

// Run populates the database with a connected data set: users owning
// projects, cross-user comments, and analytics traffic.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil
	}

	var projects []*models.Project
	for _, owner := range users {
		for i := 0; i < opts.ProjectsPerUser; i++ {
			project, err := f.CreateProject(owner)
			if err != nil {
				return fmt.Errorf("seed project: %w", err)
			}
			projects = append(projects, project)
		}
	}

	for _, project := range projects {
		for i := 0; i < opts.CommentsPerProj; i++ {
			author := users[f.rnd.Intn(len(users))]
			if _, err := f.CreateComment(project, author); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
		for i := 0; i < opts.EventsPerProject; i++ {
			if _, err := f.CreateAnalyticsEvent(project); err != nil {
				return fmt.Errorf("seed analytics: %w", err)
			}
		}
	}

	if opts.AuxiliaryEntities {
		if err := f.CreateAuxiliaryEntities(users, projects); err != nil {
			return fmt.Errorf("seed auxiliary entities: %w", err)
		}
	}

	return nil
}
