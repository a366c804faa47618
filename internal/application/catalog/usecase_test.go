package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgames-store/internal/application/catalog"
	"github.com/jhoicas/boardgames-store/internal/application/dto"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
)

type memProductRepo struct {
	products []*entity.Product
	listArgs [][2]int
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByNameAndPublisher(name, publisher string) (*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.listArgs = append(r.listArgs, [2]int{limit, offset})
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}

func (r *memProductRepo) Update(p *entity.Product) error { return nil }

type memCategoryRepo struct {
	categories []*entity.Category
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) { return nil, nil }
func (r *memCategoryRepo) List() ([]*entity.Category, error)               { return r.categories, nil }
func (r *memCategoryRepo) Upsert(c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

type memInventoryRepo struct {
	byProduct map[string]*entity.Inventory
}

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	r.byProduct[inv.ProductID] = inv
	return nil
}

func (r *memInventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	return r.byProduct[productID], nil
}

func (r *memInventoryRepo) ListByProducts(ids []string) (map[string]*entity.Inventory, error) {
	out := make(map[string]*entity.Inventory)
	for _, id := range ids {
		if inv, ok := r.byProduct[id]; ok {
			out[id] = inv
		}
	}
	return out, nil
}

func seededUseCase() (*catalog.CatalogUseCase, *memProductRepo) {
	products := &memProductRepo{}
	categories := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Strategy"},
	}}
	inventory := &memInventoryRepo{byProduct: map[string]*entity.Inventory{
		"p-1": {ID: "i-1", ProductID: "p-1", Quantity: 10},
		"p-2": {ID: "i-2", ProductID: "p-2", Quantity: 0},
	}}
	products.products = []*entity.Product{
		{ID: "p-1", CategoryID: "cat-1", Name: "Catan", Slug: "catan",
			Price: decimal.NewFromFloat(49.99), Publisher: "Kosmos"},
		{ID: "p-2", CategoryID: "cat-1", Name: "Pandemic", Slug: "pandemic",
			Price: decimal.NewFromFloat(44.99), Publisher: "Z-Man Games"},
	}
	return catalog.NewCatalogUseCase(products, categories, inventory), products
}

func TestFeatured_MapeaCategoriaYExistencia(t *testing.T) {
	uc, _ := seededUseCase()

	out, err := uc.Featured(8)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Catan", out[0].Name)
	assert.Equal(t, "Strategy", out[0].Category)
	assert.True(t, out[0].InStock)

	// Cantidad cero: el producto aparece pero sin existencia
	assert.Equal(t, "Pandemic", out[1].Name)
	assert.False(t, out[1].InStock)
}

func TestFeatured_LimiteNoPositivo_UsaElDefault(t *testing.T) {
	uc, products := seededUseCase()

	_, err := uc.Featured(0)
	require.NoError(t, err)
	require.NotEmpty(t, products.listArgs)
	assert.Equal(t, [2]int{8, 0}, products.listArgs[0])
}

func TestList_AplicaDefaultsDePagina(t *testing.T) {
	uc, products := seededUseCase()

	_, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, products.listArgs)
	assert.Positive(t, products.listArgs[0][0], "el límite por defecto debe ser positivo")
}

func TestGetBySlug_Existente(t *testing.T) {
	uc, _ := seededUseCase()

	out, err := uc.GetBySlug("catan")
	require.NoError(t, err)
	assert.Equal(t, "Catan", out.Name)
	assert.True(t, out.InStock)
}

func TestGetBySlug_Inexistente_ErrNotFound(t *testing.T) {
	uc, _ := seededUseCase()

	_, err := uc.GetBySlug("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBySlug_SinFilaDeInventario_NoHayExistencia(t *testing.T) {
	uc, products := seededUseCase()
	products.products = append(products.products, &entity.Product{
		ID: "p-3", CategoryID: "cat-1", Name: "Azul", Slug: "azul",
		Price: decimal.NewFromFloat(39.99),
	})

	out, err := uc.GetBySlug("azul")
	require.NoError(t, err)
	assert.False(t, out.InStock)
}
