package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/core/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockBudgetRepository
	mockEntityRepo *MockEntityRepository
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.service = services.NewBudgetService(suite.mockRepo, services.WithBudgetEntityReader(suite.mockEntityRepo))
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_WithItems() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:        "FY24 Refresh",
		FiscalYear:  2024,
		TotalAmount: decimal.NewFromInt(500000),
		EntityID:    int64Ptr(1),
		Items: []dto.CreateBudgetItemRequest{
			{Description: "Equipment: New POS Equipment", Amount: decimal.NewFromInt(400000)},
			{Description: "Labor", Category: strPtr("  Installation "), Amount: decimal.NewFromInt(100000), EntityID: int64Ptr(2)},
		},
	}

	suite.mockEntityRepo.On("GetEntity", ctx, int64(1)).Return(&domain.Entity{EntityID: 1}, nil).Once()
	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Name == "FY24 Refresh" && len(b.Items) == 2 &&
			b.Items[0].BudgetItemID != "" && *b.Items[0].EntityID == 1 && b.Items[0].Category == nil &&
			*b.Items[1].EntityID == 2 && *b.Items[1].Category == "Installation"
	})).Return(int64(12), nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, 1)

	suite.Require().NoError(err)
	suite.Equal(int64(12), budget.BudgetID)
	for _, item := range budget.Items {
		suite.Equal(int64(12), item.BudgetID)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Validation() {
	ctx := context.Background()
	start := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]dto.CreateBudgetRequest{
		"negative total": {Name: "x", FiscalYear: 2024, TotalAmount: decimal.NewFromInt(-1)},
		"short year":     {Name: "x", FiscalYear: 24, TotalAmount: decimal.Zero},
		"dates reversed": {Name: "x", FiscalYear: 2024, TotalAmount: decimal.Zero, StartDate: &start, EndDate: &end},
		"negative item": {Name: "x", FiscalYear: 2024, TotalAmount: decimal.Zero, Items: []dto.CreateBudgetItemRequest{
			{Description: "a", Amount: decimal.NewFromInt(-5)},
		}},
	}
	for name, req := range cases {
		_, err := suite.service.CreateBudget(ctx, req, 1)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListBudgets_EmptyIsNotNil() {
	ctx := context.Background()
	year := 2023
	filter := domain.BudgetFilter{FiscalYear: &year}
	suite.mockRepo.On("ListBudgets", ctx, filter).Return(nil, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(budgets)
	suite.Empty(budgets)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_RevalidatesMergedFields() {
	ctx := context.Background()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Budget{BudgetID: 3, FiscalYear: 2024, TotalAmount: decimal.NewFromInt(10), StartDate: &start}
	suite.mockRepo.On("FindBudgetByID", ctx, int64(3)).Return(existing, nil).Once()

	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, err := suite.service.UpdateBudget(ctx, 3, dto.UpdateBudgetRequest{EndDate: &end}, 1)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_Success() {
	ctx := context.Background()
	existing := &domain.Budget{BudgetID: 3, Name: "Old", FiscalYear: 2024, TotalAmount: decimal.NewFromInt(10)}
	total := decimal.NewFromInt(2500)
	suite.mockRepo.On("FindBudgetByID", ctx, int64(3)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Name == "New" && b.TotalAmount.Equal(total) && b.LastUpdatedBy == 6
	})).Return(nil).Once()

	budget, err := suite.service.UpdateBudget(ctx, 3, dto.UpdateBudgetRequest{Name: strPtr("New"), TotalAmount: &total}, 6)

	suite.Require().NoError(err)
	suite.Equal("New", budget.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteBudget", ctx, int64(8)).Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteBudget(ctx, 8), apperrors.ErrNotFound)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

type BudgetItemServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockBudgetItemRepository
	mockBudgetRepo *MockBudgetRepository
	mockEntityRepo *MockEntityRepository
	service        portssvc.BudgetItemSvcFacade
}

func (suite *BudgetItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetItemRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.service = services.NewBudgetItemService(suite.mockRepo, suite.mockBudgetRepo, suite.mockEntityRepo)
}

func (suite *BudgetItemServiceTestSuite) TestCreateBudgetItem_DefaultsEntityToBudget() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, int64(4)).Return(&domain.Budget{BudgetID: 4, EntityID: int64Ptr(9)}, nil).Once()
	suite.mockRepo.On("SaveBudgetItem", ctx, mock.MatchedBy(func(it domain.BudgetItem) bool {
		return it.BudgetID == 4 && it.EntityID != nil && *it.EntityID == 9 && it.BudgetItemID != ""
	})).Return(nil).Once()

	item, err := suite.service.CreateBudgetItem(ctx, dto.CreateBudgetItemRequest{
		Description: "Software: licences",
		Amount:      decimal.NewFromInt(100),
		BudgetID:    4,
	}, 1)

	suite.Require().NoError(err)
	suite.Equal(int64(9), *item.EntityID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockEntityRepo.AssertNotCalled(suite.T(), "GetEntity", mock.Anything, mock.Anything)
}

func (suite *BudgetItemServiceTestSuite) TestCreateBudgetItem_UnknownBudget() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, int64(4)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBudgetItem(ctx, dto.CreateBudgetItemRequest{Amount: decimal.NewFromInt(1), BudgetID: 4}, 1)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetItemServiceTestSuite) TestCreateBudgetItem_RequiresBudget() {
	_, err := suite.service.CreateBudgetItem(context.Background(), dto.CreateBudgetItemRequest{Amount: decimal.NewFromInt(1)}, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetItemServiceTestSuite) TestUpdateBudgetItem_ClearsBlankCategory() {
	ctx := context.Background()
	existing := &domain.BudgetItem{BudgetItemID: "i1", Description: "Equipment: kiosk", Category: strPtr("Hardware"), Amount: decimal.NewFromInt(5)}
	suite.mockRepo.On("FindBudgetItemByID", ctx, "i1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBudgetItem", ctx, mock.MatchedBy(func(it domain.BudgetItem) bool {
		return it.Category == nil
	})).Return(nil).Once()

	item, err := suite.service.UpdateBudgetItem(ctx, "i1", dto.UpdateBudgetItemRequest{Category: strPtr("  ")}, 2)

	suite.Require().NoError(err)
	suite.Nil(item.Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetItemServiceTestSuite) TestUpdateBudgetItem_NegativeAmount() {
	ctx := context.Background()
	suite.mockRepo.On("FindBudgetItemByID", ctx, "i1").Return(&domain.BudgetItem{BudgetItemID: "i1"}, nil).Once()
	negative := decimal.NewFromInt(-1)

	_, err := suite.service.UpdateBudgetItem(ctx, "i1", dto.UpdateBudgetItemRequest{Amount: &negative}, 2)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestBudgetItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetItemServiceTestSuite))
}
