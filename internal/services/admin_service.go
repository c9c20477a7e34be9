package services

import (
	"context"
	_ "embed"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/shopzone/storefront/internal/catalog"
	"github.com/shopzone/storefront/internal/domain"
)

// ErrAdminUnavailable indicates the admin service is missing dependencies.
var ErrAdminUnavailable = errors.New("admin service: unavailable")

// Fixed dashboard figures. Only the product count reflects live data; the
// rest is demo dressing.
const (
	fabricatedTotalOrders = 127
	fabricatedTotalUsers  = 1234
	fabricatedRevenue     = 234567

	adminProductRows = 10
)

//go:embed data/admin_orders.yaml
var adminOrdersYAML []byte

type adminOrdersFile struct {
	Orders []struct {
		ID       string `yaml:"id"`
		Customer string `yaml:"customer"`
		Date     string `yaml:"date"`
		Amount   int64  `yaml:"amount"`
		Status   string `yaml:"status"`
	} `yaml:"orders"`
}

// AdminServiceDeps wires the catalog store for the live product count.
type AdminServiceDeps struct {
	Catalog *catalog.Store
	Logger  func(context.Context, string, map[string]any)
}

type adminService struct {
	catalog *catalog.Store
	orders  []AdminOrder
	logger  func(context.Context, string, map[string]any)
}

// NewAdminService constructs an AdminService. The recent order rows are
// decoded once from the embedded fixture and reused for every request.
func NewAdminService(deps AdminServiceDeps) (AdminService, error) {
	if deps.Catalog == nil {
		return nil, ErrAdminUnavailable
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	var file adminOrdersFile
	if err := yaml.Unmarshal(adminOrdersYAML, &file); err != nil {
		return nil, err
	}
	orders := make([]AdminOrder, 0, len(file.Orders))
	for _, o := range file.Orders {
		orders = append(orders, AdminOrder{
			ID:       o.ID,
			Customer: o.Customer,
			Date:     o.Date,
			Amount:   o.Amount,
			Status:   o.Status,
		})
	}

	return &adminService{
		catalog: deps.Catalog,
		orders:  orders,
		logger:  logger,
	}, nil
}

// Dashboard returns the metric strip.
func (s *adminService) Dashboard(ctx context.Context) (DashboardStats, error) {
	if s == nil || s.catalog == nil {
		return DashboardStats{}, ErrAdminUnavailable
	}
	stats := DashboardStats{
		TotalProducts: len(s.catalog.Products()),
		TotalOrders:   fabricatedTotalOrders,
		TotalUsers:    fabricatedTotalUsers,
		Revenue:       fabricatedRevenue,
	}
	s.logger(ctx, "admin.dashboard", map[string]any{"products": stats.TotalProducts})
	return stats, nil
}

// RecentOrders returns the fabricated order rows.
func (s *adminService) RecentOrders(ctx context.Context) ([]AdminOrder, error) {
	if s == nil {
		return nil, ErrAdminUnavailable
	}
	return append([]AdminOrder(nil), s.orders...), nil
}

// Products returns the first rows of the catalog for the products tab.
func (s *adminService) Products(ctx context.Context) ([]domain.Product, error) {
	if s == nil || s.catalog == nil {
		return nil, ErrAdminUnavailable
	}
	products := s.catalog.Products()
	if len(products) > adminProductRows {
		products = products[:adminProductRows]
	}
	return products, nil
}
