package helper

import "pizzeria_manager/model"

const (
	foodWeight    = 0.7
	serviceWeight = 0.3
)

// ReviewScore is the single-number weighting of one review.
func ReviewScore(foodScore, serviceScore int) float64 {
	return foodWeight*float64(foodScore) + serviceWeight*float64(serviceScore)
}

// ApplyReview folds one review into the running aggregates using the
// incremental-mean form avg += (x-avg)/(n+1), which is O(1) and does
// not accumulate a growing sum, so it stays stable for large n.
func ApplyReview(p *model.Pizzeria, foodScore, serviceScore int) {
	n := float64(p.ReviewCount)
	p.FoodAvg = p.FoodAvg + (float64(foodScore)-p.FoodAvg)/(n+1)
	p.ServiceAvg = p.ServiceAvg + (float64(serviceScore)-p.ServiceAvg)/(n+1)
	p.Overall = foodWeight*p.FoodAvg + serviceWeight*p.ServiceAvg
	p.ReviewCount++
}
