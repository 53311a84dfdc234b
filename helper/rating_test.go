package helper

import (
	"math"
	"testing"

	"pizzeria_manager/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReviewScore(t *testing.T) {
	if got := ReviewScore(5, 3); !almostEqual(got, 4.4) {
		t.Errorf("ReviewScore(5,3) = %v, want 4.4", got)
	}
	if got := ReviewScore(3, 5); !almostEqual(got, 3.6) {
		t.Errorf("ReviewScore(3,5) = %v, want 3.6", got)
	}
}

func TestApplyReviewTwoReviews(t *testing.T) {
	p := model.Pizzeria{}
	ApplyReview(&p, 5, 3)
	ApplyReview(&p, 3, 5)

	if p.ReviewCount != 2 {
		t.Errorf("ReviewCount = %d, want 2", p.ReviewCount)
	}
	if !almostEqual(p.FoodAvg, 4.0) {
		t.Errorf("FoodAvg = %v, want 4.0", p.FoodAvg)
	}
	if !almostEqual(p.ServiceAvg, 4.0) {
		t.Errorf("ServiceAvg = %v, want 4.0", p.ServiceAvg)
	}
	if !almostEqual(p.Overall, 4.0) {
		t.Errorf("Overall = %v, want 4.0", p.Overall)
	}
}

func TestApplyReviewMatchesFullRecompute(t *testing.T) {
	reviews := []struct{ food, service int }{
		{5, 5}, {4, 3}, {2, 5}, {3, 3}, {5, 1}, {1, 4}, {4, 4},
	}

	p := model.Pizzeria{}
	foodSum, serviceSum := 0, 0
	for _, r := range reviews {
		ApplyReview(&p, r.food, r.service)
		foodSum += r.food
		serviceSum += r.service
	}

	n := float64(len(reviews))
	wantFood := float64(foodSum) / n
	wantService := float64(serviceSum) / n
	if !almostEqual(p.FoodAvg, wantFood) {
		t.Errorf("FoodAvg = %v, want %v", p.FoodAvg, wantFood)
	}
	if !almostEqual(p.ServiceAvg, wantService) {
		t.Errorf("ServiceAvg = %v, want %v", p.ServiceAvg, wantService)
	}
	if !almostEqual(p.Overall, 0.7*wantFood+0.3*wantService) {
		t.Errorf("Overall = %v, want %v", p.Overall, 0.7*wantFood+0.3*wantService)
	}
}

func TestApplyReviewStableForLargeCounts(t *testing.T) {
	p := model.Pizzeria{}
	for i := 0; i < 100000; i++ {
		ApplyReview(&p, 4, 4)
	}
	if math.Abs(p.FoodAvg-4.0) > 1e-6 || math.Abs(p.Overall-4.0) > 1e-6 {
		t.Errorf("averages drifted: food %v, overall %v", p.FoodAvg, p.Overall)
	}
}
