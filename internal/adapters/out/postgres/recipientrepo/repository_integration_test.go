package recipientrepo_test

import (
	"context"
	"testing"

	"fastfeet/internal/adapters/out/postgres/pgtest"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type RecipientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *recipientrepo.GormRecipientRepository
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&recipientrepo.RecipientDTO{}))
	suite.repository = recipientrepo.NewGormRecipientRepository(db)
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "recipients"))
}

func (suite *RecipientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsLocation() {
	ctx := context.Background()
	location, err := kernel.NewLocation(-23.5505, -46.6333)
	suite.Require().NoError(err)
	r, err := recipient.NewRecipient(kernel.NewUUID(), "Ana", "Rua Augusta, 100", location)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	got, err := suite.repository.Get(ctx, r.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(r))
	suite.Equal("Ana", got.Name())
	suite.Equal("Rua Augusta, 100", got.Address())
	suite.InDelta(-23.5505, got.Location().Latitude(), 1e-9)
	suite.InDelta(-46.6333, got.Location().Longitude(), 1e-9)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRecipientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientRepositoryIntegrationTestSuite))
}
