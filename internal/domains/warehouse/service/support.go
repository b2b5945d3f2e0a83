package service

import "fulfilment-backend/internal/domains/warehouse/model"

func countAtLocation(warehouses []model.Warehouse, identifier string) int {
	n := 0
	for _, w := range warehouses {
		if w.Location == identifier {
			n++
		}
	}
	return n
}

func capacityAtLocation(warehouses []model.Warehouse, identifier string) int {
	total := 0
	for _, w := range warehouses {
		if w.Location == identifier {
			total += w.Capacity
		}
	}
	return total
}
