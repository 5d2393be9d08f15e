package repositories

import (
	"testing"
	"time"

	"lookup-console/internal/database"
	"lookup-console/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) newLog(consoleID, action, outcome string) *models.AuditLog {
	return &models.AuditLog{
		ConsoleID: consoleID,
		Operator:  gofakeit.FirstName(),
		Action:    action,
		Outcome:   outcome,
		IPAddress: gofakeit.IPv4Address(),
		UserAgent: gofakeit.UserAgent(),
	}
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	log := s.newLog("console-1", models.AuditActionLogin, models.AuditOutcomeSuccess)
	log.SetMetadata("fields", []string{"name"})

	err := s.repo.Create(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)

	stored, err := s.repo.GetByID(log.ID)
	s.Require().NoError(err)
	s.Equal("console-1", stored.ConsoleID)
	s.Equal([]interface{}{"name"}, stored.GetMetadata("fields", nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAuditLogNotFound)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_List_Filters() {
	old := s.newLog("c", models.AuditActionExport, models.AuditOutcomeSuccess)
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.Require().NoError(s.repo.Create(old))

	recent := s.newLog("c", models.AuditActionExport, models.AuditOutcomeFailed)
	recent.Operator = "Juan"
	s.Require().NoError(s.repo.Create(recent))

	s.Require().NoError(s.repo.Create(s.newLog("c", models.AuditActionHistory, models.AuditOutcomeSuccess)))

	logs, total, err := s.repo.List(models.AuditFilter{Action: models.AuditActionExport})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Equal(recent.ID, logs[0].ID, "newest first")

	_, total, err = s.repo.List(models.AuditFilter{Action: models.AuditActionExport, Since: time.Now().Add(-time.Hour)})
	s.NoError(err)
	s.Equal(int64(1), total)

	logs, _, err = s.repo.List(models.AuditFilter{Operator: "Juan"})
	s.NoError(err)
	s.Len(logs, 1)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_DeleteOlderThan() {
	old := s.newLog("c", models.AuditActionSearch, models.AuditOutcomeSuccess)
	old.CreatedAt = time.Now().Add(-100 * 24 * time.Hour)
	s.Require().NoError(s.repo.Create(old))
	s.Require().NoError(s.repo.Create(s.newLog("c", models.AuditActionSearch, models.AuditOutcomeSuccess)))

	deleted, err := s.repo.DeleteOlderThan(90 * 24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, total, err := s.repo.List(models.AuditFilter{})
	s.NoError(err)
	s.Equal(int64(1), total)
}
