package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"canopy-bot/internal/domain/entity"
	"canopy-bot/internal/infrastructure/storage"
)

type fakeEnhancer struct {
	outcome *entity.EnhanceOutcome
	err     error
}

func (f *fakeEnhancer) Enhance(ctx context.Context, imageData []byte) (*entity.EnhanceOutcome, error) {
	return f.outcome, f.err
}

func (f *fakeEnhancer) RenderMasked(result *entity.CoverResult) ([]byte, error) {
	return []byte("jpeg"), nil
}

func TestEnhancementService_AcceptFieldPhoto(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	userSvc := NewUserService(repo)
	svc := NewEnhancementService(userSvc, nil)
	ctx := context.Background()

	user, err := svc.AcceptFieldPhoto(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingFieldPhoto, user.State)
}

func TestEnhancementService_NoEnhancer(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewEnhancementService(NewUserService(repo), nil)

	_, err := svc.ProcessFieldPhoto(context.Background(), []byte("photo"))
	require.Error(t, err)
}

func TestEnhancementService_ProcessAccepted(t *testing.T) {
	outcome := &entity.EnhanceOutcome{
		Accepted: true,
		Result:   &entity.CoverResult{Ratio: 0.25},
	}
	repo := storage.NewMemoryUserRepository()
	svc := NewEnhancementService(NewUserService(repo), &fakeEnhancer{outcome: outcome})

	output, err := svc.ProcessFieldPhoto(context.Background(), []byte("photo"))
	require.NoError(t, err)
	require.True(t, output.Outcome.Accepted)
	require.Equal(t, []byte("jpeg"), output.MaskedJPEG)
}

func TestEnhancementService_ProcessRejected(t *testing.T) {
	outcome := &entity.EnhanceOutcome{
		Accepted: false,
		Reason:   entity.ReasonBlurry,
	}
	repo := storage.NewMemoryUserRepository()
	svc := NewEnhancementService(NewUserService(repo), &fakeEnhancer{outcome: outcome})

	output, err := svc.ProcessFieldPhoto(context.Background(), []byte("photo"))
	require.NoError(t, err)
	require.False(t, output.Outcome.Accepted)
	require.Empty(t, output.MaskedJPEG)
}
