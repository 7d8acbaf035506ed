package dto

import (
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/recommend"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

func ToUserResp(u *domain.User) UserResp {
	return UserResp{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Country:     u.Country,
		City:        u.City,
		Age:         u.Age,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToBehaviorEventResp(e domain.BehaviorEvent) BehaviorEventResp {
	return BehaviorEventResp{
		ID:         e.ID,
		UserID:     e.UserID,
		EventType:  e.EventType,
		Properties: e.Properties,
		OccurredAt: e.OccurredAt,
	}
}

func ToBehaviorEventResps(events []domain.BehaviorEvent) []BehaviorEventResp {
	out := make([]BehaviorEventResp, 0, len(events))
	for _, e := range events {
		out = append(out, ToBehaviorEventResp(e))
	}
	return out
}

func ToSummaryResp(res recommend.Result) SummaryResp {
	counts := make([]EventTypeCountResp, 0, len(res.Summary.Counts))
	for _, c := range res.Summary.Counts {
		counts = append(counts, EventTypeCountResp{EventType: c.EventType, Count: c.Count})
	}
	recs := make([]RecommendationResp, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		recs = append(recs, RecommendationResp{ProductID: rec.ProductID, Score: rec.Score, Reason: rec.Reason})
	}
	return SummaryResp{
		UserID:          res.Summary.UserID,
		BehaviorSummary: counts,
		Recommendations: recs,
	}
}
