package yamlvalue

// Equal reports deep structural equality of two value trees. Scalars
// compare by exact value and kind (an int is never equal to a real),
// arrays by length and pairwise element equality, maps by key set and
// pairwise value equality. Key order is not significant.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.Bool() == b.Bool()
	case KindInt:
		return a.Int() == b.Int()
	case KindReal:
		return a.Real() == b.Real()
	case KindString:
		return a.Str() == b.Str()
	case KindArray:
		if len(a.Items()) != len(b.Items()) {
			return false
		}

		for i, item := range a.Items() {
			if !Equal(item, b.Items()[i]) {
				return false
			}
		}

		return true
	case KindMap:
		if a.Len() != b.Len() {
			return false
		}

		for _, key := range a.Keys() {
			other, ok := b.Get(key)
			if !ok {
				return false
			}

			child, _ := a.Get(key)
			if !Equal(child, other) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
