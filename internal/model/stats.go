package model

// Stats aggregates the whole inventory.
type Stats struct {
	TotalProducts int
	Categories    map[string]int
	InStock       int
	OutOfStock    int
	AveragePrice  float64
}

// ComputeStats walks products once. An empty inventory reports an average price of 0.
func ComputeStats(products []Product) Stats {
	stats := Stats{
		TotalProducts: len(products),
		Categories:    map[string]int{},
	}

	var sum float64
	for _, p := range products {
		stats.Categories[p.Category]++
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		sum += p.Price
	}

	if len(products) > 0 {
		stats.AveragePrice = sum / float64(len(products))
	}
	return stats
}
