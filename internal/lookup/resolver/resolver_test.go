package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/ports"
	"lookout/internal/lookup/ports/mocks"
	"lookout/pkg/platform/sentinel"
)

type ResolverSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	directory *mocks.MockDirectory
	probe     *mocks.MockTerminationProbe
	resolver  *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directory = mocks.NewMockDirectory(s.ctrl)
	s.probe = mocks.NewMockTerminationProbe(s.ctrl)

	var err error
	s.resolver, err = New(s.directory, s.probe)
	s.Require().NoError(err)
}

func (s *ResolverSuite) TestNew() {
	s.Run("nil directory returns error", func() {
		_, err := New(nil, s.probe)
		s.ErrorContains(err, "directory is required")
	})
	s.Run("nil probe returns error", func() {
		_, err := New(s.directory, nil)
		s.ErrorContains(err, "termination probe is required")
	})
}

func (s *ResolverSuite) TestSearchExactMatch() {
	s.directory.EXPECT().Search(gomock.Any(), "Builderman").Return([]ports.Candidate{
		{ID: 9, Name: "Builderman2"},
		{ID: 156, Name: "builderman", DisplayName: "Builderman"},
		{ID: 157, Name: "BUILDERMAN"},
	}, nil)

	id, err := s.resolver.Resolve(context.Background(), "Builderman")
	s.Require().NoError(err)
	s.Equal(int64(156), id.ID)
	s.Equal(models.ResolvedBySearch, id.ResolutionMethod)
	s.False(id.IsBanned)
}

func (s *ResolverSuite) TestFallsBackToLookup() {
	s.directory.EXPECT().Search(gomock.Any(), "someone").Return([]ports.Candidate{
		{ID: 1, Name: "someone_else"},
	}, nil)
	s.directory.EXPECT().LookupUsername(gomock.Any(), "someone").Return([]ports.Candidate{
		{ID: 42, Name: "someone", DisplayName: "Someone"},
	}, nil)

	id, err := s.resolver.Resolve(context.Background(), "someone")
	s.Require().NoError(err)
	s.Equal(int64(42), id.ID)
	s.Equal(models.ResolvedByLookup, id.ResolutionMethod)
}

func (s *ResolverSuite) TestSearchErrorIsAbsorbed() {
	s.directory.EXPECT().Search(gomock.Any(), "someone").Return(nil, errors.New("connection reset"))
	s.directory.EXPECT().LookupUsername(gomock.Any(), "someone").Return([]ports.Candidate{
		{ID: 42, Name: "someone"},
	}, nil)

	id, err := s.resolver.Resolve(context.Background(), "someone")
	s.Require().NoError(err)
	s.Equal(models.ResolvedByLookup, id.ResolutionMethod)
}

func (s *ResolverSuite) TestTerminatedSentinel() {
	s.directory.EXPECT().Search(gomock.Any(), "gone_user").Return(nil, nil)
	s.directory.EXPECT().LookupUsername(gomock.Any(), "gone_user").Return(nil, errors.New("timeout"))
	s.probe.EXPECT().ProbeUsername(gomock.Any(), "gone_user").Return(true, nil)

	id, err := s.resolver.Resolve(context.Background(), "gone_user")
	s.Require().NoError(err)
	s.Equal(int64(0), id.ID)
	s.True(id.IsBanned)
	s.Equal(models.ResolvedByTerminatedPage, id.ResolutionMethod)
	s.True(id.IsTerminatedSentinel())
}

func (s *ResolverSuite) TestNotFound() {
	s.directory.EXPECT().Search(gomock.Any(), "nobody").Return(nil, nil)
	s.directory.EXPECT().LookupUsername(gomock.Any(), "nobody").Return(nil, nil)
	s.probe.EXPECT().ProbeUsername(gomock.Any(), "nobody").Return(false, nil)

	_, err := s.resolver.Resolve(context.Background(), "nobody")
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ResolverSuite) TestProbeFailureIsResolutionError() {
	cause := errors.New("upstream 503")
	s.directory.EXPECT().Search(gomock.Any(), "nobody").Return(nil, nil)
	s.directory.EXPECT().LookupUsername(gomock.Any(), "nobody").Return(nil, nil)
	s.probe.EXPECT().ProbeUsername(gomock.Any(), "nobody").Return(false, cause)

	_, err := s.resolver.Resolve(context.Background(), "nobody")
	var resErr *ResolutionError
	s.Require().ErrorAs(err, &resErr)
	s.ErrorIs(err, cause)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *ResolverSuite) TestIdempotent() {
	s.directory.EXPECT().Search(gomock.Any(), "someone").Return([]ports.Candidate{
		{ID: 42, Name: "Someone", DisplayName: "S"},
	}, nil).Times(2)

	first, err := s.resolver.Resolve(context.Background(), "someone")
	s.Require().NoError(err)
	second, err := s.resolver.Resolve(context.Background(), "someone")
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ResolverSuite) TestEachStepHasDeadline() {
	s.directory.EXPECT().Search(gomock.Any(), "x").DoAndReturn(
		func(ctx context.Context, _ string) ([]ports.Candidate, error) {
			_, ok := ctx.Deadline()
			s.True(ok)
			return []ports.Candidate{{ID: 1, Name: "x"}}, nil
		})

	_, err := s.resolver.Resolve(context.Background(), "x")
	s.NoError(err)
}
