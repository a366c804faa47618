package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
	"github.com/jhoicas/boardgames-store/internal/infrastructure/postgres"
	"github.com/jhoicas/boardgames-store/pkg/config"
	"github.com/jhoicas/boardgames-store/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Datos de arranque para desarrollo: roles, categorías, dos usuarios de prueba,
// un catálogo pequeño con inventario y una reseña. Idempotente: correrlo dos
// veces no duplica filas.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Roles
	roles := []*entity.Role{
		{ID: uuid.NewString(), Name: entity.RoleAdmin, Description: "Acceso total"},
		{ID: uuid.NewString(), Name: entity.RoleCustomer, Description: "Cliente de la tienda"},
	}
	for _, r := range roles {
		if err := roleRepo.Upsert(r); err != nil {
			log.Fatal().Err(err).Str("role", r.Name).Msg("sembrar rol")
		}
	}
	log.Info().Int("count", len(roles)).Msg("roles sembrados")

	// Categorías
	categories := []*entity.Category{
		{ID: uuid.NewString(), Name: "Strategy", Description: "Juegos de estrategia profunda"},
		{ID: uuid.NewString(), Name: "Family", Description: "Para toda la familia"},
		{ID: uuid.NewString(), Name: "Party", Description: "Grupos grandes y risas"},
		{ID: uuid.NewString(), Name: "Card Games", Description: "Juegos de cartas"},
		{ID: uuid.NewString(), Name: "Cooperative", Description: "Todos contra el juego"},
	}
	for _, c := range categories {
		if err := categoryRepo.Upsert(c); err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("sembrar categoría")
		}
	}
	log.Info().Int("count", len(categories)).Msg("categorías sembradas")

	// Usuarios de prueba
	seedUser(log, userRepo, roleRepo, "admin@example.com", "admin123", "Admin", "User", entity.RoleAdmin)
	seedUser(log, userRepo, roleRepo, "customer@example.com", "customer123", "Carlos", "Mendoza", entity.RoleCustomer)

	// Productos + inventario (atómico por producto)
	strategy := mustCategory(log, categoryRepo, "Strategy")
	family := mustCategory(log, categoryRepo, "Family")
	coop := mustCategory(log, categoryRepo, "Cooperative")

	products := []struct {
		product  entity.Product
		quantity int
	}{
		{
			product: entity.Product{
				CategoryID:  strategy.ID,
				Name:        "Catan",
				Description: "Coloniza la isla, comercia recursos y construye rutas",
				Price:       decimal.NewFromFloat(49.99),
				MinPlayers:  3, MaxPlayers: 4,
				PlayTimeMin: 60, PlayTimeMax: 120,
				AgeRating: 10,
				Weight:    decimal.NewFromFloat(1.2),
				Publisher: "Kosmos",
			},
			quantity: 25,
		},
		{
			product: entity.Product{
				CategoryID:  family.ID,
				Name:        "Monopoly",
				Description: "El clásico de compra-venta de propiedades",
				Price:       decimal.NewFromFloat(29.99),
				MinPlayers:  2, MaxPlayers: 8,
				PlayTimeMin: 60, PlayTimeMax: 180,
				AgeRating: 8,
				Weight:    decimal.NewFromFloat(1.0),
				Publisher: "Hasbro",
			},
			quantity: 40,
		},
		{
			product: entity.Product{
				CategoryID:  coop.ID,
				Name:        "Pandemic",
				Description: "Cooperen para detener cuatro enfermedades globales",
				Price:       decimal.NewFromFloat(44.99),
				MinPlayers:  2, MaxPlayers: 4,
				PlayTimeMin: 45, PlayTimeMax: 60,
				AgeRating: 8,
				Weight:    decimal.NewFromFloat(0.9),
				Publisher: "Z-Man Games",
			},
			quantity: 0, // agotado a propósito, para ver el estado en la landing
		},
		{
			product: entity.Product{
				CategoryID:  strategy.ID,
				Name:        "Ticket to Ride",
				Description: "Construye rutas de tren a través del continente",
				Price:       decimal.NewFromFloat(54.99),
				MinPlayers:  2, MaxPlayers: 5,
				PlayTimeMin: 30, PlayTimeMax: 60,
				AgeRating: 8,
				Weight:    decimal.NewFromFloat(1.1),
				Publisher: "Days of Wonder",
			},
			quantity: 18,
		},
	}

	for _, p := range products {
		existing, err := productRepo.GetByNameAndPublisher(p.product.Name, p.product.Publisher)
		if err != nil {
			log.Fatal().Err(err).Str("product", p.product.Name).Msg("consultar producto")
		}
		if existing != nil {
			continue
		}
		now := time.Now()
		p.product.ID = uuid.NewString()
		p.product.Slug = slug.Make(p.product.Name)
		p.product.CreatedAt = now
		p.product.UpdatedAt = now
		quantity := p.quantity
		err = txRunner.Run(ctx, func(products repository.ProductRepository, inventories repository.InventoryRepository) error {
			if err := products.Create(&p.product); err != nil {
				return err
			}
			return inventories.Create(&entity.Inventory{
				ID:                uuid.NewString(),
				ProductID:         p.product.ID,
				Quantity:          quantity,
				LowStockThreshold: 5,
				UpdatedAt:         now,
			})
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", p.product.Name).Msg("sembrar producto")
		}
		log.Info().Str("product", p.product.Name).Str("slug", p.product.Slug).Msg("producto sembrado")
	}

	// Una reseña de ejemplo (Upsert: única por producto+usuario)
	customer, err := userRepo.GetByEmail("customer@example.com")
	if err != nil || customer == nil {
		log.Fatal().Err(err).Msg("usuario customer para reseña")
	}
	catan, err := productRepo.GetBySlug("catan")
	if err != nil || catan == nil {
		log.Fatal().Err(err).Msg("producto catan para reseña")
	}
	review := &entity.Review{
		ID:        uuid.NewString(),
		ProductID: catan.ID,
		UserID:    customer.ID,
		Rating:    5,
		Comment:   "El mejor juego para empezar en el hobby",
		CreatedAt: time.Now(),
	}
	if err := reviewRepo.Upsert(review); err != nil {
		log.Fatal().Err(err).Msg("sembrar reseña")
	}

	log.Info().Msg("seed completado")
}

func seedUser(log *logger.Logger, users repository.UserRepository, roles repository.RoleRepository, email, password, firstName, lastName, roleName string) {
	existing, err := users.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("consultar usuario")
	}
	if existing != nil {
		return
	}
	role, err := roles.GetByName(roleName)
	if err != nil || role == nil {
		log.Fatal().Err(err).Str("role", roleName).Msg("rol para usuario")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(user); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("sembrar usuario")
	}
	log.Info().Str("email", email).Str("role", roleName).Msg("usuario sembrado")
}

func mustCategory(log *logger.Logger, categories repository.CategoryRepository, name string) *entity.Category {
	c, err := categories.GetByName(name)
	if err != nil || c == nil {
		log.Fatal().Err(err).Str("category", name).Msg("categoría requerida")
	}
	return c
}
