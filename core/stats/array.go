package stats

const winsField = "wins"

// TransformArray normalizes the array shaped source.
//
// Items are processed in order. Repeated fields are merged by summing and the
// merged record is re-inserted. New records go to the front, except that while
// no "wins_" record exists they are placed right after the "wins" record.
func (n *Normalizer) TransformArray(items []ArrayItem, filter Filter) []Record {
	list := newRecordList()

	for _, item := range items {
		id := n.Canonical(item.Key)
		if id == "" {
			continue
		}
		value := n.CleanNumber(item.Value)
		if n.IsBlacklisted(id) || (filter.IsWildcard() && value.IsZero()) {
			continue
		}

		anchor := 0
		if !list.isAdded(PercentVariant(winsField)) {
			if i := list.index(winsField); i >= 0 {
				anchor = i + 1
			}
		}

		if i := list.index(id); i >= 0 {
			prev := list.take(i)
			value = mergeValues(prev.Value, value)
		}

		if list.isAdded(id) || !filter.Allows(id) {
			continue
		}

		list.insert(anchor, Record{
			Field:   id,
			Label:   n.CleanLabel(item.Key),
			Value:   value,
			Display: FormatDisplay(value, IsPercentVariant(id)),
		})
	}

	OrderingFor(ShapeArray, filter).Apply(list.records)
	return list.records
}
