package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// ProductWriter is the slice of the product store the importer needs.
type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (bool, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected header: name,price,originalPrice,category,image,description,rating,reviews,inStock
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may omit trailing optional columns
	return &CSVImporter{reader: csvr, productRepo: repo}
}

// Run parses rows and upserts products. It returns the number of rows
// written, including updates to existing products.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required column: name")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return domain.Product{}, errors.New("row missing product name")
	}

	price, err := parsePrice(field("price"), name)
	if err != nil {
		return domain.Product{}, err
	}
	originalPrice, err := parsePrice(field("originalPrice"), name)
	if err != nil {
		return domain.Product{}, err
	}

	rating := 4.5
	if raw := field("rating"); raw != "" {
		rating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid rating for %q: %s", name, raw)
		}
	}

	reviews := 0
	if raw := field("reviews"); raw != "" {
		reviews, err = strconv.Atoi(raw)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid reviews for %q: %s", name, raw)
		}
	}

	inStock := true
	if raw := field("inStock"); raw != "" {
		inStock, err = strconv.ParseBool(raw)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid inStock for %q: %s", name, raw)
		}
	}

	return domain.Product{
		Name:          name,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      field("category"),
		Image:         field("image"),
		Description:   field("description"),
		Rating:        rating,
		Reviews:       reviews,
		InStock:       inStock,
	}, nil
}

func parsePrice(raw, name string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("row %q missing price", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid price for %q: %s", name, raw)
	}
	return v, nil
}
