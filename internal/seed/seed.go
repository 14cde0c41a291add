package seed

import "storefront/internal/domain"

// Products returns the initial clothing catalog. Seeding upserts by name,
// so applying it repeatedly leaves the store unchanged.
func Products() []domain.Product {
	return []domain.Product{
		{
			Name:          "Men's Casual T-Shirt",
			Price:         599,
			OriginalPrice: 999,
			Category:      "men",
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Description:   "Comfortable cotton t-shirt for casual wear",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Women's Summer Dress",
			Price:         1299,
			OriginalPrice: 1999,
			Category:      "women",
			Image:         "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400",
			Description:   "Elegant summer dress perfect for any occasion",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Men's Formal Shirt",
			Price:         899,
			OriginalPrice: 1499,
			Category:      "men",
			Image:         "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400",
			Description:   "Professional formal shirt for office wear",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Women's Jeans",
			Price:         799,
			OriginalPrice: 1299,
			Category:      "women",
			Image:         "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Description:   "Stylish and comfortable jeans for everyday wear",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Kids' Hoodie",
			Price:         499,
			OriginalPrice: 799,
			Category:      "kids",
			Image:         "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
			Description:   "Warm and cozy hoodie for kids",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Men's Denim Jacket",
			Price:         1499,
			OriginalPrice: 2499,
			Category:      "men",
			Image:         "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=400",
			Description:   "Classic denim jacket for a stylish look",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Women's Blouse",
			Price:         699,
			OriginalPrice: 1199,
			Category:      "women",
			Image:         "https://images.unsplash.com/photo-1564257631407-3deb25e9c8e0?w=400",
			Description:   "Elegant blouse for professional and casual wear",
			Rating:        4.5,
			InStock:       true,
		},
		{
			Name:          "Kids' T-Shirt",
			Price:         299,
			OriginalPrice: 499,
			Category:      "kids",
			Image:         "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400",
			Description:   "Comfortable and colorful t-shirt for kids",
			Rating:        4.5,
			InStock:       true,
		},
	}
}
