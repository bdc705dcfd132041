package records

import (
	"github.com/heartmarshall/ranch-records/internal/domain"
)

// ArchivedScope narrows a listing by archived state after tier filtering.
type ArchivedScope string

const (
	ArchivedInclude ArchivedScope = "include"
	ArchivedExclude ArchivedScope = "exclude"
	ArchivedOnly    ArchivedScope = "only"
)

func (s ArchivedScope) IsValid() bool {
	switch s {
	case ArchivedInclude, ArchivedExclude, ArchivedOnly:
		return true
	}
	return false
}

// CategoryAll disables the category filter.
const CategoryAll = "all"

// FilterOptions holds the caller-selected narrowing of a listing.
type FilterOptions struct {
	Category string
	Search   string
	Archived ArchivedScope
}

// Policy decides what the user tier sees on a particular view.
type Policy struct {
	UserSeesArchived bool
}

// Filter returns the records visible at tier, narrowed by category and
// search term. The input order is preserved.
func Filter(records []domain.Record, tier domain.AccessLevel, opts FilterOptions, policy Policy) []domain.Record {
	needle := domain.NormalizeText(opts.Search)
	category := domain.RecordType(opts.Category)
	filterCategory := opts.Category != "" && opts.Category != CategoryAll

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if filterCategory && r.Type != category {
			continue
		}
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		if !visibleAt(r, tier, policy) {
			continue
		}
		switch opts.Archived {
		case ArchivedExclude:
			if r.Archived {
				continue
			}
		case ArchivedOnly:
			if !r.Archived {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r domain.Record, needle string) bool {
	return domain.ContainsFold(r.Title, needle) ||
		domain.ContainsFold(r.Description, needle) ||
		domain.ContainsFold(string(r.Type), needle)
}

func visibleAt(r domain.Record, tier domain.AccessLevel, policy Policy) bool {
	switch tier {
	case domain.AccessLevelAdmin:
		return true
	case domain.AccessLevelUser:
		if r.Archived && !policy.UserSeesArchived {
			return false
		}
		return tier.CanView(r.Visibility)
	default:
		return !r.Archived && r.Visibility == domain.VisibilityPublic
	}
}
