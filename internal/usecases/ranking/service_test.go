package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dish-ranking-api/infrastructure/database"
	"github.com/vfg2006/dish-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dish-ranking-api/internal/domain"
	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestDishRankingService_SearchDishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDishSearchRepository(ctrl)
	service := NewDishRankingService(mockRepo)

	validQuery := domain.DishSearchQuery{Name: "biryani", MinPrice: "100", MaxPrice: "300"}

	tests := []struct {
		name     string
		query    domain.DishSearchQuery
		setup    func()
		validate func(t *testing.T, result []domain.RankedDish, err error)
	}{
		{
			name:  "Validação falha antes de acessar o banco",
			query: domain.DishSearchQuery{Name: "", MinPrice: "100", MaxPrice: "300"},
			setup: func() {
				mockRepo.EXPECT().FindDishMatches(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result []domain.RankedDish, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ErrMissingName))
			},
		},
		{
			name:  "Busca com resultado ranqueado",
			query: validQuery,
			setup: func() {
				mockRepo.EXPECT().
					FindDishMatches(gomock.Any(), domain.DishSearchFilters{
						NamePattern: "biryani",
						MinPrice:    decimal.RequireFromString("100"),
						MaxPrice:    decimal.RequireFromString("300"),
					}).
					Return([]domain.DishMatch{
						{RestaurantID: "B", RestaurantName: "Restaurant B", City: "Delhi", DishName: "Chicken Biryani", DishPrice: decimal.NewFromInt(220), OrderCount: 85},
						{RestaurantID: "A", RestaurantName: "Restaurant A", City: "Hyderabad", DishName: "Chicken Biryani", DishPrice: decimal.NewFromInt(220), OrderCount: 96},
					}, nil)
			},
			validate: func(t *testing.T, result []domain.RankedDish, err error) {
				require.NoError(t, err)
				require.Len(t, result, 2)
				assert.Equal(t, "A", result[0].RestaurantID)
				assert.Equal(t, "Hyderabad", result[0].City)
				assert.Equal(t, "B", result[1].RestaurantID)
			},
		},
		{
			name:  "Nenhum prato encontrado não é erro",
			query: validQuery,
			setup: func() {
				mockRepo.EXPECT().FindDishMatches(gomock.Any(), gomock.Any()).Return([]domain.DishMatch{}, nil)
			},
			validate: func(t *testing.T, result []domain.RankedDish, err error) {
				require.NoError(t, err)
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
		{
			name:  "Falha na consulta vira StoreFailure sem expor a causa",
			query: validQuery,
			setup: func() {
				mockRepo.EXPECT().
					FindDishMatches(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("pq: password authentication failed for user \"postgres\""))
			},
			validate: func(t *testing.T, result []domain.RankedDish, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ErrStoreFailure))

				var searchErr *SearchError
				require.True(t, errors.As(err, &searchErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, searchErr.Code)
				assert.False(t, searchErr.IsClientError())
				assert.NotContains(t, searchErr.Message, "password")
				assert.Contains(t, searchErr.Cause().Error(), "password")
			},
		},
		{
			name:  "Timeout de aquisição vira StoreUnavailable",
			query: validQuery,
			setup: func() {
				mockRepo.EXPECT().
					FindDishMatches(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: context deadline exceeded", database.ErrUnavailable))
			},
			validate: func(t *testing.T, result []domain.RankedDish, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ErrStoreUnavailable))

				var searchErr *SearchError
				require.True(t, errors.As(err, &searchErr))
				assert.Equal(t, apiErrors.ErrCommunication, searchErr.Code)
				assert.Equal(t, "StoreUnavailable", searchErr.Kind())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.SearchDishes(context.Background(), tt.query)

			tt.validate(t, result, err)
		})
	}
}

type pingableRepository struct {
	*mocks.MockDishSearchRepository
	*mocks.MockPinger
}

func TestDishRankingService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Backend sem Ping é considerado pronto", func(t *testing.T) {
		service := NewDishRankingService(mocks.NewMockDishSearchRepository(ctrl))

		assert.NoError(t, service.Ping(context.Background()))
	})

	t.Run("Ping com sucesso", func(t *testing.T) {
		repo := pingableRepository{mocks.NewMockDishSearchRepository(ctrl), mocks.NewMockPinger(ctrl)}
		repo.MockPinger.EXPECT().Ping(gomock.Any()).Return(nil)

		service := NewDishRankingService(repo)

		assert.NoError(t, service.Ping(context.Background()))
	})

	t.Run("Ping com falha vira StoreUnavailable", func(t *testing.T) {
		repo := pingableRepository{mocks.NewMockDishSearchRepository(ctrl), mocks.NewMockPinger(ctrl)}
		repo.MockPinger.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		service := NewDishRankingService(repo)

		err := service.Ping(context.Background())
		assert.True(t, errors.Is(err, ErrStoreUnavailable))
	})
}
