// 种子数据：管理员账号 + 演示分类/商品/订单。
// 线上仓库里这些是裸的测试路由，这里收敛成一次性 CLI。
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barakatfresh/internal/core/config"
	"barakatfresh/internal/core/database"
	"barakatfresh/internal/core/logger"
	"barakatfresh/internal/domain"
	"barakatfresh/internal/repo"
	"barakatfresh/pkg/utils"
)

func main() {
	var (
		adminEmail = flag.String("admin-email", "admin@barakatfresh.ae", "admin account email")
		adminPass  = flag.String("admin-password", "", "admin account password (required)")
		demo       = flag.Bool("demo", false, "also seed demo users, catalog and orders")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if *adminPass == "" {
		log.Fatal("missing -admin-password")
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Product{}, &domain.Order{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	existing, err := users.FindByEmail(*adminEmail)
	if err != nil {
		log.Fatal("lookup admin", zap.Error(err))
	}
	if existing == nil {
		admin := &domain.User{
			ID:           utils.NewID(),
			Name:         "Administrator",
			Email:        *adminEmail,
			PasswordHash: utils.HashPassword(*adminPass),
			Role:         domain.RoleAdmin,
			Status:       domain.UserActive,
		}
		if err := users.Create(admin); err != nil {
			log.Fatal("create admin", zap.Error(err))
		}
		log.Info("admin created", zap.String("email", *adminEmail))
	} else {
		log.Info("admin already exists, skipping", zap.String("email", *adminEmail))
	}

	if *demo {
		seedDemo(db, log)
	}
}

func seedDemo(db *gorm.DB, log *zap.Logger) {
	demoUsers := []domain.User{
		{ID: utils.NewID(), Name: "Ahmed Al-Rashid", Email: "ahmed.rashid@example.com", PasswordHash: utils.HashPassword("demo-pass-1"), Role: domain.RoleUser, Status: domain.UserActive},
		{ID: utils.NewID(), Name: "Fatima Hassan", Email: "fatima.hassan@example.com", PasswordHash: utils.HashPassword("demo-pass-2"), Role: domain.RoleUser, Status: domain.UserActive},
		{ID: utils.NewID(), Name: "Mohammed Ali", Email: "mohammed.ali@example.com", PasswordHash: utils.HashPassword("demo-pass-3"), Role: domain.RoleUser, Status: domain.UserActive},
	}
	for i := range demoUsers {
		if err := db.Create(&demoUsers[i]).Error; err != nil {
			if repo.IsDupKey(err) {
				continue
			}
			log.Fatal("seed user", zap.Error(err))
		}
	}

	fruits := domain.Category{
		ID:   utils.NewID(),
		Name: "Fruits",
		Subcategories: domain.Subcategories{
			{Name: "Mango"}, {Name: "Apple"}, {Name: "Banana"},
		},
		IsActive: true,
	}
	dairy := domain.Category{
		ID:   utils.NewID(),
		Name: "Dairy",
		Subcategories: domain.Subcategories{
			{Name: "Milk"}, {Name: "Cheese"},
		},
		IsActive: true,
	}
	for _, c := range []domain.Category{fruits, dairy} {
		if err := db.Create(&c).Error; err != nil && !repo.IsDupKey(err) {
			log.Fatal("seed category", zap.Error(err))
		}
	}

	products := []domain.Product{
		{ID: utils.NewID(), Name: "Fresh Apples", Quantity: 50, Price: 15.99, Description: "Crisp red apples", CategoryID: fruits.ID, Subcategory: "Apple", Images: domain.ImageList{"data:image/png;base64,AAAA"}},
		{ID: utils.NewID(), Name: "Mango Round", Quantity: 30, Price: 10, Description: "Sweet seasonal mangoes", CategoryID: fruits.ID, Subcategory: "Mango", Images: domain.ImageList{"data:image/png;base64,AAAA"}},
		{ID: utils.NewID(), Name: "Fresh Milk", Quantity: 100, Price: 12.99, Description: "Full-fat fresh milk 1L", CategoryID: dairy.ID, Subcategory: "Milk", Images: domain.ImageList{"data:image/png;base64,AAAA"}},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal("seed product", zap.Error(err))
		}
	}

	// userId 留空：只有种子数据允许无主订单
	orders := []domain.Order{
		{
			ID: utils.NewID(),
			Items: domain.OrderItems{
				{Name: "Fresh Apples", Quantity: 2, Price: 15.99},
				{Name: "Organic Bananas", Quantity: 3, Price: 8.5},
			},
			Total:         40.48,
			UserInfo:      domain.DeliveryInfo{Name: "Ahmed Al-Rashid", Address: "123 Sheikh Zayed Road, Dubai", Phone: "+971501234567"},
			PaymentMethod: domain.PaymentCOD,
			Status:        domain.StatusPending,
		},
		{
			ID: utils.NewID(),
			Items: domain.OrderItems{
				{Name: "Premium Dates", Quantity: 1, Price: 45.0},
				{Name: "Fresh Milk", Quantity: 2, Price: 12.99},
			},
			Total:         70.98,
			UserInfo:      domain.DeliveryInfo{Name: "Fatima Hassan", Address: "456 Al Wasl Road, Dubai", Phone: "+971509876543"},
			PaymentMethod: domain.PaymentCard,
			Status:        domain.StatusConfirmed,
		},
		{
			ID: utils.NewID(),
			Items: domain.OrderItems{
				{Name: "Chicken Breast", Quantity: 1, Price: 28.5},
				{Name: "Rice Basmati", Quantity: 2, Price: 18.99},
			},
			Total:         66.48,
			UserInfo:      domain.DeliveryInfo{Name: "Mohammed Ali", Address: "789 Jumeirah Beach Road, Dubai", Phone: "+971551234567"},
			PaymentMethod: domain.PaymentCOD,
			Status:        domain.StatusProcessing,
		},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			log.Fatal("seed order", zap.Error(err))
		}
	}
	log.Info("demo data seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("products", len(products)),
		zap.Int("orders", len(orders)),
	)
}
