package services

import (
	"sort"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

type PromotionSegments struct {
	Past   []models.Promotion `json:"past"`
	Active []models.Promotion `json:"active"`
	Future []models.Promotion `json:"future"`
}

func promotionDates(p models.Promotion) (start, end time.Time) {
	return dateOf(time.Time(p.StartDate)), dateOf(time.Time(p.EndDate))
}

// IsActive reports whether today lies within the promotion, both ends included.
func IsActive(p models.Promotion, today time.Time) bool {
	today = dateOf(today)
	start, end := promotionDates(p)
	return !start.After(today) && !end.Before(today)
}

// SegmentPromotions splits promotions into past (ended before today, latest end
// first), active (running today, latest start first) and future (starting after
// today, earliest start first). Every promotion lands in exactly one segment.
func SegmentPromotions(all []models.Promotion, today time.Time) PromotionSegments {
	today = dateOf(today)
	segments := PromotionSegments{
		Past:   []models.Promotion{},
		Active: []models.Promotion{},
		Future: []models.Promotion{},
	}
	for _, p := range all {
		start, end := promotionDates(p)
		switch {
		case end.Before(today):
			segments.Past = append(segments.Past, p)
		case start.After(today):
			segments.Future = append(segments.Future, p)
		default:
			segments.Active = append(segments.Active, p)
		}
	}

	sort.SliceStable(segments.Past, func(i, j int) bool {
		return time.Time(segments.Past[i].EndDate).After(time.Time(segments.Past[j].EndDate))
	})
	sort.SliceStable(segments.Active, func(i, j int) bool {
		return time.Time(segments.Active[i].StartDate).After(time.Time(segments.Active[j].StartDate))
	})
	sort.SliceStable(segments.Future, func(i, j int) bool {
		return time.Time(segments.Future[i].StartDate).Before(time.Time(segments.Future[j].StartDate))
	})
	return segments
}

// Promotions segments every promotion against the request's date.
func (s *Shop) Promotions(req Request) (PromotionSegments, error) {
	all, err := s.store.Promotions(req.Context)
	if err != nil {
		return PromotionSegments{}, errors.Trace(err)
	}
	return SegmentPromotions(all, req.Today()), nil
}
