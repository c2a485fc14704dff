package stats

// TransformObject normalizes the object shaped source.
//
// Each entry yields a base record and, when the provider sent a percentile,
// a percentage variant record. Under a wildcard filter the result is sorted
// by field.
func (n *Normalizer) TransformObject(src ObjectSource, filter Filter) []Record {
	list := newRecordList()

	for _, entry := range src {
		item := entry.Item
		id := n.Canonical(item.Label)
		value := n.CleanNumber(item.Value)
		if n.IsBlacklisted(id) || (filter.IsWildcard() && value.IsZero()) {
			continue
		}
		if IsPercentVariant(id) {
			continue
		}

		if filter.Allows(id) && !list.isAdded(id) {
			list.insert(0, Record{
				Field:   id,
				Label:   item.Label,
				Value:   value,
				Display: FormatDisplay(n.CleanNumber(item.displaySource()), false),
			})
		}

		variant := PercentVariant(id)
		if !item.hasPercentile() || list.isAdded(variant) || !filter.Allows(variant) {
			continue
		}

		pos := 0
		if filter.Requested(variant) {
			if i := list.index(id); i >= 0 {
				pos = i + 1
			}
		}
		list.insert(pos, Record{
			Field:   variant,
			Label:   item.Label + " %",
			Value:   Number(*item.Percentile),
			Display: formatPercentile(*item.Percentile),
		})
	}

	OrderingFor(ShapeObject, filter).Apply(list.records)
	return list.records
}
