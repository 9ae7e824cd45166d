package services

import (
	"sort"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// MediaByTag holds a bundle's media split by tag, each group in capture order.
type MediaByTag struct {
	Equipment []models.Media `json:"equipment"`
	Sign      []models.Media `json:"sign"`
	Issue     []models.Media `json:"issue"`
	Overview  []models.Media `json:"overview"`
	Audio     []models.Media `json:"audio"`
}

// GroupMediaByTag sorts media by capture time (id as tiebreaker, ids sort by
// creation) and groups them by tag. The review UI uses this to prefill which
// photo likely shows what; anything smarter than tag + order stays server-side.
func GroupMediaByTag(items []models.Media) MediaByTag {
	sorted := make([]models.Media, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	out := MediaByTag{
		Equipment: []models.Media{},
		Sign:      []models.Media{},
		Issue:     []models.Media{},
		Overview:  []models.Media{},
		Audio:     []models.Media{},
	}
	for _, m := range sorted {
		switch m.Tag {
		case models.TagEquipment:
			out.Equipment = append(out.Equipment, m)
		case models.TagSign:
			out.Sign = append(out.Sign, m)
		case models.TagIssue:
			out.Issue = append(out.Issue, m)
		case models.TagOverview:
			out.Overview = append(out.Overview, m)
		case models.TagAudio:
			out.Audio = append(out.Audio, m)
		}
	}
	return out
}
