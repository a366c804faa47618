package catalog

import (
	"github.com/jhoicas/boardgames-store/internal/application/dto"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo para la landing y la API pública.
type CatalogUseCase struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, inventoryRepo repository.InventoryRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, categoryRepo: categoryRepo, inventoryRepo: inventoryRepo}
}

// Categories lista las categorías del catálogo.
func (uc *CatalogUseCase) Categories() ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

// Featured devuelve los productos destacados (los más recientes) con su
// categoría y disponibilidad, para la landing.
func (uc *CatalogUseCase) Featured(limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 8
	}
	return uc.list(limit, 0)
}

// List lista productos paginados.
func (uc *CatalogUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	return uc.list(page.Limit, page.Offset)
}

// GetBySlug devuelve un producto por su slug público.
// Retorna domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetBySlug(slug string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.inventoryRepo.GetByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(p, inv)
	return &out, nil
}

func (uc *CatalogUseCase) list(limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	stock, err := uc.inventoryRepo.ListByProducts(ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, uc.toResponse(p, stock[p.ID]))
	}
	return out, nil
}

func (uc *CatalogUseCase) toResponse(p *entity.Product, inv *entity.Inventory) dto.ProductResponse {
	categoryName := ""
	if c, err := uc.categoryRepo.GetByID(p.CategoryID); err == nil && c != nil {
		categoryName = c.Name
	}
	inStock := false
	if inv != nil {
		inStock = inv.InStock()
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Category:    categoryName,
		MinPlayers:  p.MinPlayers,
		MaxPlayers:  p.MaxPlayers,
		PlayTimeMin: p.PlayTimeMin,
		PlayTimeMax: p.PlayTimeMax,
		AgeRating:   p.AgeRating,
		Publisher:   p.Publisher,
		InStock:     inStock,
	}
}
