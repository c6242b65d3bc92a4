package repository

import (
	"context"
	"testing"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
	catan     models.Product
	risk      models.Product
}

func (s *OrderRepoTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.orderRepo = NewOrderRepo(s.db)

	category := models.Category{Name: "Estrategia", Slug: "estrategia"}
	require.NoError(s.T(), s.db.Create(&category).Error)

	s.catan = models.Product{
		CategoryID: category.ID, Name: "Catan", Slug: "catan",
		Price: decimal.RequireFromString("180.00"), Stock: 25, Available: true,
	}
	s.risk = models.Product{
		CategoryID: category.ID, Name: "Risk", Slug: "risk",
		Price: decimal.RequireFromString("150.00"), Stock: 20, Available: true,
	}
	require.NoError(s.T(), s.db.Create(&s.catan).Error)
	require.NoError(s.T(), s.db.Create(&s.risk).Error)
}

func (s *OrderRepoTestSuite) countRows() (orders, items int64) {
	require.NoError(s.T(), s.db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(s.T(), s.db.Model(&models.OrderItem{}).Count(&items).Error)
	return orders, items
}

func (s *OrderRepoTestSuite) TestCreateOrder() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Address:       "Av. Siempre Viva 742",
		Total:         decimal.RequireFromString("510.00"),
		PaymentMethod: "tarjeta",
		Items: []models.OrderItem{
			{ProductID: s.catan.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("180.00")},
			{ProductID: s.risk.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("150.00")},
		},
	}

	require.NoError(s.T(), s.orderRepo.Create(context.Background(), &order))
	require.NotZero(s.T(), order.ID)
	require.False(s.T(), order.CreatedAt.IsZero())
	require.True(s.T(), order.Items[0].Subtotal.Equal(decimal.RequireFromString("360.00")))
	require.True(s.T(), order.Items[1].Subtotal.Equal(decimal.RequireFromString("150.00")))

	saved, err := s.orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), saved.Items, 2)
	require.True(s.T(), saved.Total.Equal(decimal.RequireFromString("510.00")))
}

func (s *OrderRepoTestSuite) TestCreateOrderAtomicRollback() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Total:         decimal.RequireFromString("540.00"),
		PaymentMethod: "efectivo",
		Items: []models.OrderItem{
			{ProductID: s.catan.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
			{ProductID: 99999, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
			{ProductID: s.risk.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("150.00")},
		},
	}

	err := s.orderRepo.Create(context.Background(), &order)
	require.ErrorIs(s.T(), err, ErrProductNotFound)

	// nothing may survive the rollback
	orders, items := s.countRows()
	require.Zero(s.T(), orders)
	require.Zero(s.T(), items)
}

func (s *OrderRepoTestSuite) TestCreateOrderWithoutItems() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Total:         decimal.Zero,
		PaymentMethod: "efectivo",
	}
	require.ErrorIs(s.T(), s.orderRepo.Create(context.Background(), &order), ErrEmptyOrder)
}

func (s *OrderRepoTestSuite) TestGetAllNewestFirst() {
	for _, email := range []string{"primero@example.com", "segundo@example.com"} {
		order := models.Order{
			Email:         email,
			CustomerName:  "Cliente",
			Total:         decimal.RequireFromString("180.00"),
			PaymentMethod: "efectivo",
			Items: []models.OrderItem{
				{ProductID: s.catan.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
			},
		}
		require.NoError(s.T(), s.orderRepo.Create(context.Background(), &order))
	}

	orders, err := s.orderRepo.GetAll(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 2)
	require.Equal(s.T(), "segundo@example.com", orders[0].Email)
	require.Equal(s.T(), "primero@example.com", orders[1].Email)
}

func (s *OrderRepoTestSuite) TestUpdateReplacesItems() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Total:         decimal.RequireFromString("180.00"),
		PaymentMethod: "efectivo",
		Items: []models.OrderItem{
			{ProductID: s.catan.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
		},
	}
	require.NoError(s.T(), s.orderRepo.Create(context.Background(), &order))

	order.Total = decimal.RequireFromString("300.00")
	newItems := []models.OrderItem{
		{ProductID: s.risk.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("150.00")},
	}
	require.NoError(s.T(), s.orderRepo.Update(context.Background(), &order, newItems))

	saved, err := s.orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), saved.Items, 1)
	require.Equal(s.T(), s.risk.ID, saved.Items[0].ProductID)
	require.True(s.T(), saved.Items[0].Subtotal.Equal(decimal.RequireFromString("300.00")))
}

func (s *OrderRepoTestSuite) TestUpdateRejectsUnknownProduct() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Total:         decimal.RequireFromString("180.00"),
		PaymentMethod: "efectivo",
		Items: []models.OrderItem{
			{ProductID: s.catan.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
		},
	}
	require.NoError(s.T(), s.orderRepo.Create(context.Background(), &order))

	badItems := []models.OrderItem{
		{ProductID: 99999, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
	}
	err := s.orderRepo.Update(context.Background(), &order, badItems)
	require.ErrorIs(s.T(), err, ErrProductNotFound)

	// the replacement rolled back, the original item set survives
	saved, err := s.orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), saved.Items, 1)
	require.Equal(s.T(), s.catan.ID, saved.Items[0].ProductID)

	_, items := s.countRows()
	require.EqualValues(s.T(), 1, items)
}

func (s *OrderRepoTestSuite) TestDeleteCascadesItems() {
	order := models.Order{
		Email:         "ana@example.com",
		CustomerName:  "Ana Torres",
		Total:         decimal.RequireFromString("180.00"),
		PaymentMethod: "efectivo",
		Items: []models.OrderItem{
			{ProductID: s.catan.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
		},
	}
	require.NoError(s.T(), s.orderRepo.Create(context.Background(), &order))

	require.NoError(s.T(), s.orderRepo.Delete(context.Background(), &order))

	orders, items := s.countRows()
	require.Zero(s.T(), orders)
	require.Zero(s.T(), items)

	_, err := s.orderRepo.GetByID(context.Background(), order.ID)
	require.ErrorIs(s.T(), err, ErrOrderNotFound)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
