package http_test

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/boardgames-store/internal/application/auth"
	"github.com/jhoicas/boardgames-store/internal/application/catalog"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	apphttp "github.com/jhoicas/boardgames-store/internal/interfaces/http"
	"github.com/jhoicas/boardgames-store/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de handlers
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[string]*entity.User // por email
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	u := cloneUser(user)
	r.users[u.Email] = u
	return nil
}

// cloneUser copia los campos string del usuario. Los strings que entrega
// BodyParser apuntan al buffer reutilizado de fasthttp; al retenerlos entre
// requests hay que copiarlos.
func cloneUser(user *entity.User) *entity.User {
	u := *user
	u.Email = strings.Clone(user.Email)
	u.FirstName = strings.Clone(user.FirstName)
	u.LastName = strings.Clone(user.LastName)
	u.Phone = strings.Clone(user.Phone)
	u.Address = strings.Clone(user.Address)
	return &u
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email], nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := cloneUser(user)
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.GetByEmail(email)
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role // por nombre
}

func newFakeRoleRepo() *fakeRoleRepo {
	r := &fakeRoleRepo{roles: make(map[string]*entity.Role)}
	for _, name := range []string{entity.RoleAdmin, entity.RoleCustomer} {
		r.roles[name] = &entity.Role{ID: uuid.NewString(), Name: name}
	}
	return r
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.roles[name], nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *fakeRoleRepo) Upsert(role *entity.Role) error {
	r.roles[role.Name] = role
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByNameAndPublisher(name, publisher string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name && p.Publisher == publisher {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Upsert(category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

type fakeInventoryRepo struct {
	byProduct map[string]*entity.Inventory
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{byProduct: make(map[string]*entity.Inventory)}
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	r.byProduct[inv.ProductID] = inv
	return nil
}

func (r *fakeInventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	return r.byProduct[productID], nil
}

func (r *fakeInventoryRepo) ListByProducts(productIDs []string) (map[string]*entity.Inventory, error) {
	out := make(map[string]*entity.Inventory)
	for _, id := range productIDs {
		if inv, ok := r.byProduct[id]; ok {
			out[id] = inv
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con el router real
// ──────────────────────────────────────────────────────────────────────────────

const testSessionSecret = "test-secret-key-for-unit-tests"

var testSessionCfg = config.SessionConfig{
	Secret:     testSessionSecret,
	ExpMinutes: 60,
	Issuer:     "boardgames-store-test",
	CookieName: "session",
}

type testDeps struct {
	app       *fiber.App
	users     *fakeUserRepo
	roles     *fakeRoleRepo
	products  *fakeProductRepo
	inventory *fakeInventoryRepo
}

// buildStoreApp levanta la app completa (vistas, middlewares y router reales)
// sobre repos en memoria.
func buildStoreApp() *testDeps {
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()
	products := &fakeProductRepo{}
	categories := &fakeCategoryRepo{}
	inventory := newFakeInventoryRepo()

	authUC := auth.NewAuthUseCase(users, roles, auth.SessionConfig{
		Secret:     testSessionCfg.Secret,
		ExpMinutes: testSessionCfg.ExpMinutes,
		Issuer:     testSessionCfg.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(products, categories, inventory)

	app := fiber.New(fiber.Config{
		Views:       apphttp.NewViewEngine(),
		ViewsLayout: apphttp.ViewsLayout,
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		Session:       testSessionCfg,
		DefaultLocale: "en",
	})
	return &testDeps{app: app, users: users, roles: roles, products: products, inventory: inventory}
}
