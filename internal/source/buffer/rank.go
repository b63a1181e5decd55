package buffer

import (
	"sort"

	"github.com/psacc/buflist/internal/model"
	"github.com/psacc/buflist/internal/source"
)

// Rank turns a snapshot into display items: unlisted buffers are dropped,
// the rest are sorted by last use and labeled. Equal keys keep snapshot order.
func Rank(snap model.Snapshot, order source.Order) []model.ResultItem {
	listed := make([]model.BufferRecord, 0, len(snap.Buffers))
	for _, b := range snap.Buffers {
		if b.Listed {
			listed = append(listed, b)
		}
	}

	sortRecords(listed, snap.CurrentID, order)

	items := make([]model.ResultItem, len(listed))
	for i, rec := range listed {
		items[i] = newItem(rec, snap)
	}
	return items
}

// sortRecords orders by LastUsed ascending, or descending with the current
// buffer always last.
func sortRecords(recs []model.BufferRecord, currentID int, order source.Order) {
	if order == source.OrderDesc {
		sort.SliceStable(recs, func(i, j int) bool {
			a, b := recs[i], recs[j]
			if a.ID == currentID || b.ID == currentID {
				return a.ID != currentID && b.ID == currentID
			}
			return a.LastUsed > b.LastUsed
		})
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].LastUsed < recs[j].LastUsed
	})
}

func newItem(rec model.BufferRecord, snap model.Snapshot) model.ResultItem {
	class := Classify(rec)
	isCurrent := rec.ID == snap.CurrentID
	isAlternate := rec.ID == snap.AlternateID

	return model.ResultItem{
		Label:       formatLabel(rec.ID, isCurrent, isAlternate, rec.Modified, displayBody(rec, class, snap.WorkingDirectory)),
		BufferID:    rec.ID,
		Path:        rec.Name,
		IsCurrent:   isCurrent,
		IsAlternate: isAlternate,
		IsModified:  rec.Modified,
		IsTerminal:  class == model.ClassTerminal,
		BufferKind:  rec.Kind,
		LastUsed:    rec.LastUsed,
	}
}
