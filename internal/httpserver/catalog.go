package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/seed"
	"storefront/internal/service/catalog"
)

type catalogService interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Query(ctx context.Context, category string, q catalog.Query) ([]domain.Product, error)
	Seed(ctx context.Context, products []domain.Product) (int, error)
}

// productsHandler serves both the full collection and the category-scoped
// route. Search, price range and sort run server-side in one pass.
func productsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseCatalogQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		products, err := svc.Query(c.Request.Context(), c.Param("category"), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func seedProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inserted, err := svc.Seed(c.Request.Context(), seed.Products())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "products seeded successfully",
			"inserted": inserted,
		})
	}
}

func parseCatalogQuery(c *gin.Context) (catalog.Query, error) {
	q := catalog.Query{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	min, err := parsePriceParam(c.Query("min_price"))
	if err != nil {
		return catalog.Query{}, err
	}
	max, err := parsePriceParam(c.Query("max_price"))
	if err != nil {
		return catalog.Query{}, err
	}
	q.MinPrice = min
	q.MaxPrice = max
	return q, nil
}

func parsePriceParam(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &v, nil
}
